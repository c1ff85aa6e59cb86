package courtdocument

import (
	"fmt"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/aggregate"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

// AggregateType names the court document aggregate in envelopes and the store.
const AggregateType = "court_document"

const scopeField = "court_document_id"

// Command and event types of the court document aggregate.
const (
	CommandTypeCreate           command.Type = "court_document.create"
	CommandTypeUpdate           command.Type = "court_document.update"
	CommandTypeRemove           command.Type = "court_document.remove"
	CommandTypeShareWithHearing command.Type = "court_document.share_with_hearing"

	EventTypeCreated           event.Type = "court_document.created"
	EventTypeAlreadyExists     event.Type = "court_document.already_exists"
	EventTypeUpdated           event.Type = "court_document.updated"
	EventTypeUpdateRejected    event.Type = "court_document.update_rejected"
	EventTypeRemoved           event.Type = "court_document.removed"
	EventTypeSharedWithHearing event.Type = "court_document.shared_with_hearing"
	EventTypeShareRejected     event.Type = "court_document.share_rejected"
)

// Binding exposes the court document aggregate to the dispatch engine.
func Binding() aggregate.Binding {
	return aggregate.Typed[*CourtDocument]{NewFn: New, DecideFn: Decide, ScopeField: scopeField}
}

// Decide routes a validated command to a court document command method.
func Decide(d *CourtDocument, cmd command.Command) (command.Decision, error) {
	cmd, err := command.Scope(cmd, scopeField)
	if err != nil {
		return command.Decision{}, err
	}
	switch cmd.Type {
	case CommandTypeCreate:
		return command.Dispatch(cmd, d.Create)
	case CommandTypeUpdate:
		return command.Dispatch(cmd, d.Update)
	case CommandTypeRemove:
		return command.Dispatch(cmd, d.Remove)
	case CommandTypeShareWithHearing:
		return command.Dispatch(cmd, d.ShareWithHearing)
	default:
		return command.Decision{}, fmt.Errorf("%w: %s", command.ErrTypeUnknown, cmd.Type)
	}
}

func (d *CourtDocument) reject(eventType event.Type, description string) []event.Event {
	rec := aggregate.NewRecorder(d)
	rec.Emit(eventType, RejectedPayload{CourtDocumentID: d.id, Description: description})
	return rec.Events()
}

// Create records a new document.
func (d *CourtDocument) Create(in CreatePayload) []event.Event {
	if d.created {
		return d.reject(EventTypeAlreadyExists, "Court document already exists")
	}
	rec := aggregate.NewRecorder(d)
	rec.Emit(EventTypeCreated, in)
	return rec.Events()
}

// Update replaces the document metadata of a live document.
func (d *CourtDocument) Update(in UpdatePayload) []event.Event {
	switch {
	case !d.created:
		return d.reject(EventTypeUpdateRejected, "Court document not found")
	case d.removed:
		return d.reject(EventTypeUpdateRejected, "Court document removed")
	}
	rec := aggregate.NewRecorder(d)
	rec.Emit(EventTypeUpdated, in)
	return rec.Events()
}

// Remove marks the document removed; removing twice emits nothing.
func (d *CourtDocument) Remove(in RemovePayload) []event.Event {
	if !d.created || d.removed {
		return nil
	}
	rec := aggregate.NewRecorder(d)
	rec.Emit(EventTypeRemoved, in)
	return rec.Events()
}

// ShareWithHearing makes the document visible to a hearing once.
func (d *CourtDocument) ShareWithHearing(in SharePayload) []event.Event {
	switch {
	case !d.created:
		return d.reject(EventTypeShareRejected, "Court document not found")
	case d.removed:
		return d.reject(EventTypeShareRejected, "Court document removed")
	case d.sharedWith(in.HearingID):
		return nil
	}
	rec := aggregate.NewRecorder(d)
	rec.Emit(EventTypeSharedWithHearing, in)
	return rec.Events()
}
