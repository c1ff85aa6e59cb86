package hearing

import (
	"fmt"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/aggregate"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

// AggregateType names the hearing aggregate in envelopes and the store.
const AggregateType = "hearing"

const scopeField = "hearing_id"

// Command and event types of the hearing aggregate.
const (
	CommandTypeInitiate            command.Type = "hearing.initiate"
	CommandTypeChangeListingStatus command.Type = "hearing.change_listing_status"
	CommandTypeResult              command.Type = "hearing.result"
	CommandTypeAddApplication      command.Type = "hearing.add_application"
	CommandTypeDelete              command.Type = "hearing.delete"

	EventTypeInitiated            event.Type = "hearing.initiated"
	EventTypeAlreadyInitiated     event.Type = "hearing.already_initiated"
	EventTypeListingStatusChanged event.Type = "hearing.listing_status_changed"
	EventTypeResulted             event.Type = "hearing.resulted"
	EventTypeResultRejected       event.Type = "hearing.result_rejected"
	EventTypeApplicationAdded     event.Type = "hearing.application_added"
	EventTypeDeleted              event.Type = "hearing.deleted"
)

// Binding exposes the hearing aggregate to the dispatch engine.
func Binding() aggregate.Binding {
	return aggregate.Typed[*Hearing]{NewFn: New, DecideFn: Decide, ScopeField: scopeField}
}

// Decide routes a validated command to a hearing command method.
func Decide(h *Hearing, cmd command.Command) (command.Decision, error) {
	cmd, err := command.Scope(cmd, scopeField)
	if err != nil {
		return command.Decision{}, err
	}
	switch cmd.Type {
	case CommandTypeInitiate:
		return command.Dispatch(cmd, h.Initiate)
	case CommandTypeChangeListingStatus:
		return command.Dispatch(cmd, h.ChangeListingStatus)
	case CommandTypeResult:
		return command.Dispatch(cmd, h.Result)
	case CommandTypeAddApplication:
		return command.Dispatch(cmd, h.AddApplication)
	case CommandTypeDelete:
		return command.Dispatch(cmd, h.Delete)
	default:
		return command.Decision{}, fmt.Errorf("%w: %s", command.ErrTypeUnknown, cmd.Type)
	}
}

// Initiate records a new hearing.
func (h *Hearing) Initiate(in InitiatePayload) []event.Event {
	rec := aggregate.NewRecorder(h)
	if h.initiated {
		rec.Emit(EventTypeAlreadyInitiated, RejectedPayload{HearingID: in.HearingID, Description: "Hearing already initiated"})
		return rec.Events()
	}
	rec.Emit(EventTypeInitiated, in)
	return rec.Events()
}

// ChangeListingStatus records a new listing status.
func (h *Hearing) ChangeListingStatus(in ListingStatusPayload) []event.Event {
	rec := aggregate.NewRecorder(h)
	rec.Emit(EventTypeListingStatusChanged, in)
	return rec.Events()
}

// Result records hearing outcomes. Hearings that were never initiated cannot be resulted.
func (h *Hearing) Result(in ResultPayload) []event.Event {
	rec := aggregate.NewRecorder(h)
	if !h.initiated {
		rec.Emit(EventTypeResultRejected, RejectedPayload{HearingID: in.HearingID, Description: "Hearing not initiated"})
		return rec.Events()
	}
	rec.Emit(EventTypeResulted, in)
	return rec.Events()
}

// AddApplication links an application to the hearing once.
func (h *Hearing) AddApplication(in ApplicationPayload) []event.Event {
	if h.hasApplication(in.ApplicationID) {
		return nil
	}
	rec := aggregate.NewRecorder(h)
	rec.Emit(EventTypeApplicationAdded, in)
	return rec.Events()
}

// Delete removes the hearing. Deleting twice emits nothing.
func (h *Hearing) Delete(in DeletePayload) []event.Event {
	if h.deleted {
		return nil
	}
	rec := aggregate.NewRecorder(h)
	rec.Emit(EventTypeDeleted, in)
	return rec.Events()
}
