package turk

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// operationSpec declares the wire shape of one API operation: its name, the
// required and optional scalar parameters, the structured fragments to
// append, and the top-level key expected in a successful response.
type operationSpec struct {
	name      string
	required  []string
	optional  []string
	fragments []fragmentFunc
	resultKey string
}

// mergeParams layers caller-supplied params over the defaults. Neither input
// is modified.
func mergeParams(defaults, params Params) Params {
	eff := make(Params, len(defaults)+len(params))
	for k, v := range defaults {
		eff[k] = v
	}
	for k, v := range params {
		eff[k] = v
	}
	return eff
}

// scalar renders a bag value as a query-string scalar.
func scalar(v interface{}) string {
	switch v := v.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// buildQuery assembles the full signed query string for one call: the common
// fields in fixed order, then required keys, then present optional keys,
// then the structured fragments. Required-key validation happens after the
// defaults/caller merge and before anything touches the network.
func (c *Client) buildQuery(spec operationSpec, params Params) (string, error) {
	eff := mergeParams(c.defaults, params)

	ts := Timestamp()
	fields := []field{
		{"Service", ServiceName},
		{"AWSAccessKeyId", c.creds.AccessKeyID},
		{"Version", APIVersion},
		{"Operation", spec.name},
		{"Signature", Sign(c.creds.SecretKey, ServiceName, spec.name, ts)},
		{"Timestamp", ts},
	}

	for _, k := range spec.required {
		v, ok := eff[k]
		if !ok {
			return "", &MissingParameterError{Key: k}
		}
		fields = append(fields, field{k, scalar(v)})
	}
	for _, k := range spec.optional {
		if v, ok := eff[k]; ok {
			fields = append(fields, field{k, scalar(v)})
		}
	}
	for _, fn := range spec.fragments {
		fs, err := fn(eff)
		if err != nil {
			return "", err
		}
		fields = append(fields, fs...)
	}

	return encodeFields(fields), nil
}

// encodeFields escapes and joins fields, preserving their order.
// url.Values.Encode would sort keys alphabetically.
func encodeFields(fs []field) string {
	var b strings.Builder
	for i, f := range fs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(f.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(f.value))
	}
	return b.String()
}
