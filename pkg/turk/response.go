package turk

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Node is one element of a decoded response: a name, an optional text value,
// and ordered children. The decoder performs no schema validation; it is a
// purely structural conversion of the XML body.
type Node struct {
	Name     string
	Value    string
	Children []*Node
}

// DecodeResponse parses an XML response body into a Node tree and returns
// the document element.
func DecodeResponse(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)
	root := &Node{}
	stack := []*Node{root}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Name: t.Name.Local}
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, n)
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if s := strings.TrimSpace(string(t)); s != "" {
				stack[len(stack)-1].Value += s
			}
		}
	}

	if len(root.Children) == 0 {
		return nil, errors.New("decode response: empty document")
	}
	return root.Children[0], nil
}

// Get walks the tree by element name, taking the first matching child at
// each step. It returns nil when any step is missing, and is safe to call on
// a nil node.
func (n *Node) Get(path ...string) *Node {
	cur := n
	for _, name := range path {
		if cur == nil {
			return nil
		}
		var next *Node
		for _, ch := range cur.Children {
			if ch.Name == name {
				next = ch
				break
			}
		}
		cur = next
	}
	return cur
}

// Text returns the value of the node at path, or "" when absent.
func (n *Node) Text(path ...string) string {
	if m := n.Get(path...); m != nil {
		return m.Value
	}
	return ""
}

// All returns every direct child with the given name, in document order.
// Repeated elements such as HIT or Assignment lists surface here.
func (n *Node) All(name string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, ch := range n.Children {
		if ch.Name == name {
			out = append(out, ch)
		}
	}
	return out
}
