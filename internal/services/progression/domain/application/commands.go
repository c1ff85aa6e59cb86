package application

import (
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/aggregate"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

// InitiateApplication records a new DRAFT application.
func (a *Application) InitiateApplication(in InitiatePayload) []event.Event {
	rec := aggregate.NewRecorder(a)
	if a.created {
		rec.Emit(EventTypeAlreadyExists, RejectedPayload{ApplicationID: in.ApplicationID, Description: "Application already exists"})
		return rec.Events()
	}
	if in.Application.ID == "" {
		in.Application.ID = in.ApplicationID
	}
	rec.Emit(EventTypeInitiated, in)
	return rec.Events()
}

// ReferApplicationToCourt lists the application for a hearing.
func (a *Application) ReferApplicationToCourt(in ReferToCourtPayload) []event.Event {
	if a.status.Terminal() {
		return nil
	}
	rec := aggregate.NewRecorder(a)
	rec.Emit(EventTypeReferredToCourt, in)
	return rec.Events()
}

// ReferBoxWorkApplication replays the pending application updates and then
// records the boxwork referral.
func (a *Application) ReferBoxWorkApplication(in ReferBoxWorkPayload) []event.Event {
	if a.status.Terminal() {
		return nil
	}
	rec := aggregate.NewRecorder(a)
	for _, update := range in.Updates {
		rec.Emit(EventTypeCourtApplicationUpdated, CourtApplicationUpdatedPayload{
			ApplicationID: in.ApplicationID,
			Application:   update,
		})
	}
	rec.Emit(EventTypeBoxWorkReferred, BoxWorkReferredPayload{
		ApplicationID: in.ApplicationID,
		BoxHearingID:  in.BoxHearingID,
	})
	return rec.Events()
}

// UpdateCourtApplication replaces the application details.
func (a *Application) UpdateCourtApplication(in CourtApplicationUpdatedPayload) []event.Event {
	if a.status.Terminal() {
		return nil
	}
	rec := aggregate.NewRecorder(a)
	rec.Emit(EventTypeCourtApplicationUpdated, in)
	return rec.Events()
}

// EjectApplication ejects the application. An ejected application emits nothing.
func (a *Application) EjectApplication(in EjectPayload) []event.Event {
	if a.status.Terminal() {
		return nil
	}
	rec := aggregate.NewRecorder(a)
	rec.Emit(EventTypeEjected, in)
	return rec.Events()
}

// UpdateApplicationStatus records an externally decided status. Ejected
// applications keep their status.
func (a *Application) UpdateApplicationStatus(in StatusPayload) []event.Event {
	if a.status.Terminal() {
		return nil
	}
	status, _ := ParseStatus(in.Status)
	in.Status = string(status)
	rec := aggregate.NewRecorder(a)
	rec.Emit(EventTypeStatusChanged, in)
	return rec.Events()
}

// LinkHearing links a hearing to the application once.
func (a *Application) LinkHearing(in LinkHearingPayload) []event.Event {
	if a.status.Terminal() || a.linked(in.HearingID) {
		return nil
	}
	rec := aggregate.NewRecorder(a)
	rec.Emit(EventTypeHearingLinked, in)
	return rec.Events()
}
