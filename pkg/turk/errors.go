package turk

import (
	"fmt"
	"net/http"
)

// NotAuthorizedCode is the error code the service returns when the
// credentials are rejected. Authorization failures short-circuit before any
// operation-specific result is produced, so they are detected on the
// OperationRequest node rather than under the expected result key.
const NotAuthorizedCode = "AWS.NotAuthorized"

// MissingParameterError is returned by the request builder or a structured
// encoder when a required parameter is absent. It is raised before any
// network call.
type MissingParameterError struct {
	Key string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing required parameter %q", e.Key)
}

// NotAuthorizedError means the service rejected the credentials. Errors
// holds the raw Errors node from the response for caller inspection.
type NotAuthorizedError struct {
	Errors *Node
}

func (e *NotAuthorizedError) Error() string {
	if msg := e.Errors.Text("Error", "Message"); msg != "" {
		return "not authorized: " + msg
	}
	return "not authorized"
}

// InvalidRequestError means the service rejected the request itself: a
// malformed parameter, a business-rule violation such as insufficient
// balance, and so on. Errors holds the raw Errors node. Retrying the
// identical request reproduces the same failure.
type InvalidRequestError struct {
	Errors *Node
}

func (e *InvalidRequestError) Error() string {
	code := e.Errors.Text("Error", "Code")
	msg := e.Errors.Text("Error", "Message")
	switch {
	case code != "" && msg != "":
		return fmt.Sprintf("invalid request: %s: %s", code, msg)
	case code != "":
		return "invalid request: " + code
	default:
		return "invalid request"
	}
}

// UnclassifiedError means the outcome matched no known success or error
// pattern: a body whose shape is unrecognized, a non-200 status with no
// decodable error body, or a transport failure before any response arrived.
// Err holds the underlying decode or transport error when there is one; a
// zero StatusCode means no response was received at all.
type UnclassifiedError struct {
	StatusCode int
	Err        error
}

func (e *UnclassifiedError) Error() string {
	if e.StatusCode == 0 && e.Err != nil {
		return "request failed: " + e.Err.Error()
	}
	return fmt.Sprintf("unclassified response (status %d)", e.StatusCode)
}

func (e *UnclassifiedError) Unwrap() error { return e.Err }

// classify decides success or failure for one decoded response.
//
// Success requires both a 200 status and IsValid == "True" under the
// expected result key. Failures are classified in priority order: the
// not-authorized sentinel on OperationRequest first, then a structured error
// list under the result key, then unclassified.
func classify(status int, tree *Node, resultKey string) (*Node, error) {
	if tree == nil {
		return nil, &UnclassifiedError{StatusCode: status}
	}

	result := tree.Get(resultKey)
	if status == http.StatusOK && result != nil && result.Text("Request", "IsValid") == "True" {
		return tree, nil
	}

	if errs := tree.Get("OperationRequest", "Errors"); errs != nil &&
		errs.Text("Error", "Code") == NotAuthorizedCode {
		return nil, &NotAuthorizedError{Errors: errs}
	}

	if result != nil {
		if errs := result.Get("Request", "Errors"); errs != nil && errs.Get("Error") != nil {
			return nil, &InvalidRequestError{Errors: errs}
		}
	}

	return nil, &UnclassifiedError{StatusCode: status}
}
