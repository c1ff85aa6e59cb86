package event

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrTypeRequired indicates a missing event type.
	ErrTypeRequired = errors.New("event type is required")
	// ErrTypeUnknown indicates an unregistered event type.
	ErrTypeUnknown = errors.New("event type is not registered")
	// ErrAggregateTypeRequired indicates a missing aggregate type.
	ErrAggregateTypeRequired = errors.New("aggregate type is required")
	// ErrAggregateIDRequired indicates a missing aggregate id.
	ErrAggregateIDRequired = errors.New("aggregate id is required")
	// ErrAggregateMismatch indicates an event emitted for an aggregate type that does not own it.
	ErrAggregateMismatch = errors.New("event type is not owned by aggregate type")
	// ErrPayloadInvalid indicates malformed payload JSON.
	ErrPayloadInvalid = errors.New("payload json must be valid")
)

// Intent declares what a recorded fact means for aggregate structure.
type Intent string

const (
	// IntentChange marks a fact that changes aggregate structure.
	IntentChange Intent = "change"
	// IntentRejection marks a fact recording why a command changed nothing.
	IntentRejection Intent = "rejection"
)

// Definition registers metadata for an event type.
type Definition struct {
	Type            Type
	Aggregate       string
	Intent          Intent
	ValidatePayload func(json.RawMessage) error
}

// Registry stores event definitions and validates events before append.
type Registry struct {
	definitions map[Type]Definition
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{definitions: make(map[Type]Definition)}
}

// Register adds a new event type definition to the registry.
func (r *Registry) Register(def Definition) error {
	if r == nil {
		return errors.New("registry is required")
	}
	def.Type = Type(strings.TrimSpace(string(def.Type)))
	if def.Type == "" {
		return ErrTypeRequired
	}
	def.Aggregate = strings.TrimSpace(def.Aggregate)
	if def.Aggregate == "" {
		return ErrAggregateTypeRequired
	}
	switch def.Intent {
	case "":
		def.Intent = IntentChange
	case IntentChange, IntentRejection:
	default:
		return fmt.Errorf("intent must be change or rejection")
	}
	if r.definitions == nil {
		r.definitions = make(map[Type]Definition)
	}
	if _, exists := r.definitions[def.Type]; exists {
		return fmt.Errorf("event type already registered: %s", def.Type)
	}
	r.definitions[def.Type] = def
	return nil
}

// Definition returns the event definition for a given type.
func (r *Registry) Definition(eventType Type) (Definition, bool) {
	if r == nil {
		return Definition{}, false
	}
	def, ok := r.definitions[eventType]
	return def, ok
}

// IsRejection reports whether the event type records a domain rejection.
func (r *Registry) IsRejection(eventType Type) bool {
	def, ok := r.Definition(eventType)
	return ok && def.Intent == IntentRejection
}

// ValidateForAppend validates and normalizes an event before persistence.
func (r *Registry) ValidateForAppend(evt Event) (Event, error) {
	if r == nil {
		return Event{}, errors.New("registry is required")
	}
	evt.Type = Type(strings.TrimSpace(string(evt.Type)))
	if evt.Type == "" {
		return Event{}, ErrTypeRequired
	}
	def, ok := r.definitions[evt.Type]
	if !ok {
		return Event{}, fmt.Errorf("%w: %s", ErrTypeUnknown, evt.Type)
	}
	evt.AggregateType = strings.TrimSpace(evt.AggregateType)
	if evt.AggregateType == "" {
		return Event{}, ErrAggregateTypeRequired
	}
	if evt.AggregateType != def.Aggregate {
		return Event{}, fmt.Errorf("%w: %s emitted by %s", ErrAggregateMismatch, evt.Type, evt.AggregateType)
	}
	evt.AggregateID = strings.TrimSpace(evt.AggregateID)
	if evt.AggregateID == "" {
		return Event{}, ErrAggregateIDRequired
	}
	if len(evt.PayloadJSON) == 0 {
		evt.PayloadJSON = []byte("{}")
	}
	if !json.Valid(evt.PayloadJSON) {
		return Event{}, ErrPayloadInvalid
	}
	if def.ValidatePayload != nil {
		if err := def.ValidatePayload(json.RawMessage(evt.PayloadJSON)); err != nil {
			return Event{}, fmt.Errorf("%w: %w", ErrPayloadInvalid, err)
		}
	}
	return evt, nil
}

// ListDefinitions returns a stable, sorted snapshot of registered definitions.
func (r *Registry) ListDefinitions() []Definition {
	if r == nil || len(r.definitions) == 0 {
		return nil
	}
	definitions := make([]Definition, 0, len(r.definitions))
	for _, definition := range r.definitions {
		definitions = append(definitions, definition)
	}
	sort.Slice(definitions, func(i, j int) bool {
		return string(definitions[i].Type) < string(definitions[j].Type)
	})
	return definitions
}
