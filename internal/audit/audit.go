// Package audit provides a Postgres-backed log of API calls and received
// notifications. Logging is best effort: a nil service is a no-op, and
// callers treat failures as advisory.
package audit

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/alexbotov/turk/pkg/turk"
)

// Event types.
const (
	EventAPICall      = "api_call"
	EventNotification = "notification"
)

// Outcome kinds recorded for API calls.
const (
	OutcomeSuccess          = "success"
	OutcomeMissingParameter = "missing_parameter"
	OutcomeNotAuthorized    = "not_authorized"
	OutcomeInvalidRequest   = "invalid_request"
	OutcomeUnclassified     = "unclassified"
	OutcomeTransport        = "transport_error"
)

// Schema creates the audit table.
const Schema = `
CREATE TABLE IF NOT EXISTS turk_audit_events (
    id          UUID PRIMARY KEY,
    type        TEXT NOT NULL,
    operation   TEXT NOT NULL,
    mode        TEXT NOT NULL,
    outcome     TEXT NOT NULL,
    error_code  TEXT NOT NULL DEFAULT '',
    detail      TEXT NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL
)`

// Service provides audit logging functionality.
type Service struct {
	db *sql.DB
}

// New creates a new audit service.
func New(db *sql.DB) *Service {
	return &Service{db: db}
}

// EnsureSchema creates the audit table when it does not exist.
func (s *Service) EnsureSchema(ctx context.Context) error {
	if s == nil || s.db == nil {
		return nil
	}
	_, err := s.db.ExecContext(ctx, Schema)
	return err
}

// LogCall records the outcome of one API call.
func (s *Service) LogCall(ctx context.Context, operation string, mode turk.Mode, callErr error) error {
	if s == nil || s.db == nil {
		return nil
	}

	outcome, code := Outcome(callErr)
	detail := ""
	if callErr != nil {
		detail = callErr.Error()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO turk_audit_events (id, type, operation, mode, outcome, error_code, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, uuid.New().String(), EventAPICall, operation, string(mode), outcome, code, detail,
		time.Now().UTC())
	return err
}

// LogNotification records one received notification event.
func (s *Service) LogNotification(ctx context.Context, eventType, hitID, assignmentID string) error {
	if s == nil || s.db == nil {
		return nil
	}

	detail := hitID
	if assignmentID != "" {
		detail += " " + assignmentID
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO turk_audit_events (id, type, operation, mode, outcome, error_code, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, uuid.New().String(), EventNotification, eventType, "", OutcomeSuccess, "", detail,
		time.Now().UTC())
	return err
}

// Outcome maps a call result to an outcome kind and, where the failure
// carries structured detail, the service's error code.
func Outcome(err error) (kind, code string) {
	if err == nil {
		return OutcomeSuccess, ""
	}

	var miss *turk.MissingParameterError
	if errors.As(err, &miss) {
		return OutcomeMissingParameter, miss.Key
	}
	var na *turk.NotAuthorizedError
	if errors.As(err, &na) {
		return OutcomeNotAuthorized, turk.NotAuthorizedCode
	}
	var invalid *turk.InvalidRequestError
	if errors.As(err, &invalid) {
		return OutcomeInvalidRequest, invalid.Errors.Text("Error", "Code")
	}
	var un *turk.UnclassifiedError
	if errors.As(err, &un) {
		// No response at all means the transport failed, not the service.
		if un.StatusCode == 0 && un.Err != nil {
			return OutcomeTransport, ""
		}
		return OutcomeUnclassified, ""
	}
	return OutcomeTransport, ""
}
