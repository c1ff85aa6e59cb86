package application

import "github.com/louisbranch/caseprogression/internal/services/progression/domain/event"

// Apply folds an event into application state.
func (a *Application) Apply(evt event.Event) {
	switch evt.Type {
	case EventTypeInitiated:
		var payload InitiatePayload
		_ = evt.Decode(&payload)
		a.created = true
		a.status = StatusDraft
		a.details = payload.Application
	case EventTypeReferredToCourt:
		var payload ReferToCourtPayload
		_ = evt.Decode(&payload)
		a.status = StatusListed
		a.link(payload.HearingID)
	case EventTypeBoxWorkReferred:
		var payload BoxWorkReferredPayload
		_ = evt.Decode(&payload)
		a.status = StatusInProgress
		a.boxHearingID = payload.BoxHearingID
	case EventTypeCourtApplicationUpdated:
		var payload CourtApplicationUpdatedPayload
		_ = evt.Decode(&payload)
		a.details = payload.Application
	case EventTypeEjected:
		a.status = StatusEjected
	case EventTypeStatusChanged:
		var payload StatusPayload
		_ = evt.Decode(&payload)
		if status, ok := ParseStatus(payload.Status); ok {
			a.status = status
		}
	case EventTypeHearingLinked:
		var payload LinkHearingPayload
		_ = evt.Decode(&payload)
		a.link(payload.HearingID)
	default:
	}
}

func (a *Application) link(hearingID string) {
	if hearingID == "" || a.linked(hearingID) {
		return
	}
	a.hearingIDs = append(a.hearingIDs, hearingID)
}
