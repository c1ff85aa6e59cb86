package notification

import (
	"fmt"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/aggregate"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

// AggregateType names the notification aggregate in envelopes and the store.
const AggregateType = "notification"

const scopeField = "notification_id"

// Command and event types of the notification aggregate.
const (
	CommandTypeRequest    command.Type = "notification.request"
	CommandTypeMarkSent   command.Type = "notification.mark_sent"
	CommandTypeMarkFailed command.Type = "notification.mark_failed"

	EventTypeRequested event.Type = "notification.requested"
	EventTypeSent      event.Type = "notification.sent"
	EventTypeFailed    event.Type = "notification.failed"
)

// Binding exposes the notification aggregate to the dispatch engine.
func Binding() aggregate.Binding {
	return aggregate.Typed[*Notification]{NewFn: New, DecideFn: Decide, ScopeField: scopeField}
}

// Decide routes a validated command to a notification command method.
func Decide(n *Notification, cmd command.Command) (command.Decision, error) {
	cmd, err := command.Scope(cmd, scopeField)
	if err != nil {
		return command.Decision{}, err
	}
	switch cmd.Type {
	case CommandTypeRequest:
		return command.Dispatch(cmd, n.Request)
	case CommandTypeMarkSent:
		return command.Dispatch(cmd, n.outcome(EventTypeSent))
	case CommandTypeMarkFailed:
		return command.Dispatch(cmd, n.outcome(EventTypeFailed))
	default:
		return command.Decision{}, fmt.Errorf("%w: %s", command.ErrTypeUnknown, cmd.Type)
	}
}

// Request records the notification request once.
func (n *Notification) Request(in RequestPayload) []event.Event {
	if n.status != StatusNone {
		return nil
	}
	rec := aggregate.NewRecorder(n)
	rec.Emit(EventTypeRequested, in)
	return rec.Events()
}

// outcome records a terminal delivery outcome. Outcomes after the first, or for
// a notification never requested, emit nothing.
func (n *Notification) outcome(eventType event.Type) func(OutcomePayload) []event.Event {
	return func(in OutcomePayload) []event.Event {
		if n.status != StatusRequested {
			return nil
		}
		rec := aggregate.NewRecorder(n)
		rec.Emit(eventType, in)
		return rec.Events()
	}
}
