package event

import (
	"encoding/json"
	"time"
)

// Type identifies the event type string.
type Type string

// Event captures the canonical event envelope.
//
// Aggregates only read Type and PayloadJSON while folding. Identity, sequence and
// timing fields are stamped by the dispatch boundary and the store.
type Event struct {
	ID            string
	AggregateType string
	AggregateID   string
	Seq           uint64
	Type          Type
	Timestamp     time.Time
	CorrelationID string
	CausationID   string
	PayloadJSON   []byte
}

// New builds an unstamped event carrying the JSON encoding of payload.
//
// Payloads are plain structs owned by the emitting package, so encoding cannot
// fail for them; a nil payload is stored as an empty object.
func New(eventType Type, payload any) Event {
	payloadJSON := []byte("{}")
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err == nil {
			payloadJSON = encoded
		}
	}
	return Event{Type: eventType, PayloadJSON: payloadJSON}
}

// Decode unmarshals the event payload into target.
func (e Event) Decode(target any) error {
	if len(e.PayloadJSON) == 0 {
		return nil
	}
	return json.Unmarshal(e.PayloadJSON, target)
}
