package aggregate

import "github.com/louisbranch/caseprogression/internal/services/progression/domain/event"

// Aggregate folds events into per-instance state.
//
// Apply must be total: event types the aggregate does not know are ignored so
// replay tolerates facts introduced after the aggregate was built.
type Aggregate interface {
	Apply(evt event.Event)
}

// Replay folds history into target in log order.
func Replay(target Aggregate, history []event.Event) {
	if target == nil {
		return
	}
	for _, evt := range history {
		target.Apply(evt)
	}
}

// Recorder collects the events a command method emits.
type Recorder struct {
	target Aggregate
	events []event.Event
}

// NewRecorder returns a recorder that self-applies every emitted event to target.
func NewRecorder(target Aggregate) *Recorder {
	return &Recorder{target: target}
}

// Emit builds an event, folds it into the target and records it.
func (r *Recorder) Emit(eventType event.Type, payload any) event.Event {
	evt := event.New(eventType, payload)
	if r.target != nil {
		r.target.Apply(evt)
	}
	r.events = append(r.events, evt)
	return evt
}

// Events returns the emitted events in order.
func (r *Recorder) Events() []event.Event {
	if len(r.events) == 0 {
		return nil
	}
	return append([]event.Event(nil), r.events...)
}
