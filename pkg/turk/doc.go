// Package turk provides a client for the legacy Mechanical Turk Requester API.
//
// The Requester API is a query-string REST API: every operation is a single
// HTTP GET whose parameters, including the request signature, travel in the
// query string, and whose response is an XML envelope. This client implements
// request assembly, the legacy signing scheme, and response classification
// for all the requester operations.
//
// # Authentication
//
// Every request is signed with the legacy scheme: an HMAC-SHA1 over the
// concatenation of the service name, the operation name, and a fresh UTC
// timestamp, base64-encoded and sent as the Signature parameter alongside
// the AWSAccessKeyId.
//
// # Basic Usage
//
//	client := turk.NewClient(&turk.ClientConfig{
//	    Credentials: turk.Credentials{
//	        AccessKeyID: "your-access-key",
//	        SecretKey:   "your-secret-key",
//	    },
//	})
//
//	// Check the account balance
//	tree, err := client.GetAccountBalance(ctx, nil)
//
//	// Create a HIT
//	tree, err := client.CreateHIT(ctx, turk.Params{
//	    "Title":                       "Answer a survey",
//	    "Description":                 "A short survey about widgets",
//	    "AssignmentDurationInSeconds": 600,
//	    "LifetimeInSeconds":           86400,
//	    "Question":                    questionXML,
//	    "Reward":                      turk.Reward{Amount: "0.25", CurrencyCode: "USD"},
//	})
//
// Use Sandbox to get a client pointed at the sandbox endpoint:
//
//	sandbox := client.Sandbox()
//
// # Error Handling
//
// Failures are returned as typed errors:
//
//	tree, err := client.CreateHIT(ctx, params)
//	var invalid *turk.InvalidRequestError
//	if errors.As(err, &invalid) {
//	    // Inspect invalid.Errors for the service's error records
//	}
//
// A *MissingParameterError is returned before any network call when a
// required parameter is absent. *NotAuthorizedError means the credentials
// were rejected. *UnclassifiedError means the response matched no known
// success or error shape.
package turk
