package command

import "github.com/louisbranch/caseprogression/internal/services/progression/domain/event"

// Decision represents the pure outcome of handling a command.
//
// Domain rejections are carried as events like any other fact; an empty decision
// means the command was an idempotent no-op.
type Decision struct {
	Events []event.Event
}

// Accept returns a decision that emits the provided events.
func Accept(events ...event.Event) Decision {
	return Decision{Events: append([]event.Event(nil), events...)}
}

// Empty reports whether the decision emits nothing.
func (d Decision) Empty() bool {
	return len(d.Events) == 0
}
