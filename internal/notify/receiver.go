package notify

import (
	"crypto/hmac"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/alexbotov/turk/internal/audit"
	"github.com/alexbotov/turk/pkg/turk"
)

// Event is one notification event from a REST-transport delivery.
type Event struct {
	EventType    string `json:"event_type"`
	EventTime    string `json:"event_time,omitempty"`
	HITTypeID    string `json:"hit_type_id,omitempty"`
	HITID        string `json:"hit_id,omitempty"`
	AssignmentID string `json:"assignment_id,omitempty"`
}

// Receiver handles inbound notification deliveries. The service signs each
// delivery with the same legacy scheme used for requests, under the
// notification service name, so deliveries are verified against the
// requester's secret key before anything is accepted.
type Receiver struct {
	secretKey string
	maxSkew   time.Duration
	hub       *Hub
	audit     *audit.Service
	logger    *zap.Logger
	now       func() time.Time
}

// NewReceiver creates a receiver. The audit service may be nil.
func NewReceiver(secretKey string, maxSkew time.Duration, hub *Hub, aud *audit.Service, logger *zap.Logger) *Receiver {
	if maxSkew <= 0 {
		maxSkew = 15 * time.Minute
	}
	return &Receiver{
		secretKey: secretKey,
		maxSkew:   maxSkew,
		hub:       hub,
		audit:     aud,
		logger:    logger,
		now:       time.Now,
	}
}

// Router creates and configures the HTTP router.
func (rc *Receiver) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", rc.handleHealth).Methods("GET")
	r.HandleFunc("/notify", rc.handleNotify).Methods("GET", "POST")
	r.HandleFunc("/ws", rc.hub.HandleWS).Methods("GET")
	return r
}

func (rc *Receiver) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleNotify accepts one delivery. The transport is query-string shaped
// whether it arrives as GET or POST.
func (rc *Receiver) handleNotify(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	q := r.Form

	if err := rc.verify(q); err != nil {
		rc.logger.Warn("Rejected notification", zap.Error(err))
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	events := parseEvents(q)
	for _, ev := range events {
		rc.logger.Info("Notification event",
			zap.String("event_type", ev.EventType),
			zap.String("hit_id", ev.HITID),
			zap.String("assignment_id", ev.AssignmentID))
		if err := rc.audit.LogNotification(r.Context(), ev.EventType, ev.HITID, ev.AssignmentID); err != nil {
			rc.logger.Warn("Audit write failed", zap.Error(err))
		}
		if msg, err := json.Marshal(ev); err == nil {
			rc.hub.Broadcast(msg)
		}
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "OK")
}

// verify checks the legacy signature and the timestamp freshness of one
// delivery.
func (rc *Receiver) verify(q url.Values) error {
	sig := q.Get("Signature")
	if sig == "" {
		return fmt.Errorf("missing signature")
	}
	ts := q.Get("Timestamp")
	if ts == "" {
		return fmt.Errorf("missing timestamp")
	}
	operation := q.Get("Operation")
	if operation == "" {
		operation = turk.NotifyOperation
	}

	want := turk.Sign(rc.secretKey, turk.NotificationServiceName, operation, ts)
	if !hmac.Equal([]byte(sig), []byte(want)) {
		return fmt.Errorf("signature mismatch")
	}

	t, err := time.Parse("2006-01-02T15:04:05Z", ts)
	if err != nil {
		return fmt.Errorf("bad timestamp %q: %w", ts, err)
	}
	if skew := rc.now().UTC().Sub(t); skew > rc.maxSkew || skew < -rc.maxSkew {
		return fmt.Errorf("timestamp outside allowed skew: %s", skew)
	}

	return nil
}

// parseEvents extracts the 1-indexed Event.N.* groups from a delivery.
func parseEvents(q url.Values) []Event {
	var events []Event
	for i := 1; ; i++ {
		prefix := fmt.Sprintf("Event.%d.", i)
		eventType := q.Get(prefix + "EventType")
		if eventType == "" {
			break
		}
		events = append(events, Event{
			EventType:    eventType,
			EventTime:    q.Get(prefix + "EventTime"),
			HITTypeID:    q.Get(prefix + "HITTypeId"),
			HITID:        q.Get(prefix + "HITId"),
			AssignmentID: q.Get(prefix + "AssignmentId"),
		})
	}
	return events
}
