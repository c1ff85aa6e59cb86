package fee

import (
	"fmt"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/aggregate"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

// AggregateType names the fee aggregate in envelopes and the store.
const AggregateType = "fee"

const scopeField = "case_id"

// Command and event types of the fee aggregate.
const (
	CommandTypeRecord       command.Type = "fee.record"
	CommandTypeUpdateStatus command.Type = "fee.update_status"

	EventTypeRecorded        event.Type = "fee.recorded"
	EventTypeAlreadyRecorded event.Type = "fee.already_recorded"
	EventTypeStatusUpdated   event.Type = "fee.status_updated"
	EventTypeUpdateRejected  event.Type = "fee.update_rejected"
)

// Binding exposes the fee aggregate to the dispatch engine.
func Binding() aggregate.Binding {
	return aggregate.Typed[*Fees]{NewFn: New, DecideFn: Decide, ScopeField: scopeField}
}

// Decide routes a validated command to a fee command method.
func Decide(f *Fees, cmd command.Command) (command.Decision, error) {
	cmd, err := command.Scope(cmd, scopeField)
	if err != nil {
		return command.Decision{}, err
	}
	switch cmd.Type {
	case CommandTypeRecord:
		return command.Dispatch(cmd, f.Record)
	case CommandTypeUpdateStatus:
		return command.Dispatch(cmd, f.UpdateStatus)
	default:
		return command.Decision{}, fmt.Errorf("%w: %s", command.ErrTypeUnknown, cmd.Type)
	}
}

// Record records a new fee; fee ids are never reused.
func (f *Fees) Record(in RecordPayload) []event.Event {
	rec := aggregate.NewRecorder(f)
	if _, exists := f.statuses[in.FeeID]; exists {
		rec.Emit(EventTypeAlreadyRecorded, RejectedPayload{CaseID: in.CaseID, FeeID: in.FeeID, Description: "Fee already recorded"})
		return rec.Events()
	}
	rec.Emit(EventTypeRecorded, in)
	return rec.Events()
}

// UpdateStatus changes the status of a recorded fee.
func (f *Fees) UpdateStatus(in StatusPayload) []event.Event {
	current, exists := f.statuses[in.FeeID]
	if exists && current == in.Status {
		return nil
	}
	rec := aggregate.NewRecorder(f)
	if !exists {
		rec.Emit(EventTypeUpdateRejected, RejectedPayload{CaseID: in.CaseID, FeeID: in.FeeID, Description: "Fee not found"})
		return rec.Events()
	}
	rec.Emit(EventTypeStatusUpdated, in)
	return rec.Events()
}
