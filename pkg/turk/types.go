package turk

import "time"

// Protocol constants fixed by the legacy query API. Not configurable per call.
const (
	ServiceName             = "AWSMechanicalTurkRequester"
	APIVersion              = "2014-08-15"
	NotificationServiceName = "AWSMechanicalTurkRequesterNotification"
	NotifyOperation         = "Notify"
)

// Endpoint URLs for each mode.
const (
	ProductionURL = "https://mechanicalturk.amazonaws.com/"
	SandboxURL    = "https://mechanicalturk.sandbox.amazonaws.com/"
)

// Mode selects the endpoint and the default-parameter overlay.
type Mode string

const (
	ModeProduction Mode = "production"
	ModeSandbox    Mode = "sandbox"
)

// Credentials holds the requester's access key pair. Immutable for the
// lifetime of a client; never logged.
type Credentials struct {
	AccessKeyID string
	SecretKey   string
}

// Params is the parameter bag for one call. Scalar values are rendered with
// their natural string form; structured values (Reward, Keywords,
// QualificationRequirement lists, Notification lists, HITLayoutParameter
// lists) are serialized by the per-type encoders.
type Params map[string]interface{}

// Comparator values accepted in qualification requirements.
const (
	ComparatorLessThan             = "LessThan"
	ComparatorLessThanOrEqualTo    = "LessThanOrEqualTo"
	ComparatorGreaterThan          = "GreaterThan"
	ComparatorGreaterThanOrEqualTo = "GreaterThanOrEqualTo"
	ComparatorEqualTo              = "EqualTo"
	ComparatorNotEqualTo           = "NotEqualTo"
	ComparatorExists               = "Exists"
	ComparatorDoesNotExist         = "DoesNotExist"
	ComparatorIn                   = "In"
	ComparatorNotIn                = "NotIn"
)

// Notification transports.
const (
	TransportREST  = "REST"
	TransportEmail = "Email"
	TransportSQS   = "SQS"
)

// Notification event types.
const (
	EventAssignmentAccepted  = "AssignmentAccepted"
	EventAssignmentAbandoned = "AssignmentAbandoned"
	EventAssignmentReturned  = "AssignmentReturned"
	EventAssignmentSubmitted = "AssignmentSubmitted"
	EventHITReviewable       = "HITReviewable"
	EventHITExpired          = "HITExpired"
	EventPing                = "Ping"
)

// Reward is the price paid per assignment. The wire format carries a single
// reward per request, always at index 1.
type Reward struct {
	Amount         string
	CurrencyCode   string
	FormattedPrice string
}

// Locale identifies a worker location in a qualification requirement.
// Country is required; Subdivision is optional.
type Locale struct {
	Country     string
	Subdivision string
}

// QualificationRequirement restricts which workers may accept a HIT.
// QualificationTypeID and Comparator are required; the rest are optional.
type QualificationRequirement struct {
	QualificationTypeID string
	Comparator          string
	IntegerValue        *int
	LocaleValues        []Locale
	RequiredToPreview   *bool
}

// HITLayoutParameter substitutes a value into a HIT layout template.
type HITLayoutParameter struct {
	Name  string
	Value string
}

// Notification specifies where and how HIT events are delivered.
// Destination, Transport and Version are required, plus at least one event
// type.
type Notification struct {
	Destination string
	Transport   string
	Version     string
	EventTypes  []string
}

// Int returns a pointer to v, for optional integer fields.
func Int(v int) *int { return &v }

// Bool returns a pointer to v, for optional boolean fields.
func Bool(v bool) *bool { return &v }

// ClientConfig holds the configuration for a requester client.
type ClientConfig struct {
	Credentials Credentials
	Mode        Mode

	// Endpoint overrides, mainly for tests. When empty the fixed service
	// URLs are used.
	ProductionURL string
	SandboxURL    string

	// Default parameters merged into every request. Sandbox defaults are
	// layered over the production defaults when the client is in sandbox
	// mode; production defaults alone apply in production mode.
	ProductionDefaults Params
	SandboxDefaults    Params

	Timeout time.Duration
}

// DefaultConfig returns a default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		Mode:    ModeProduction,
		Timeout: 30 * time.Second,
	}
}
