package cotr

import "github.com/louisbranch/caseprogression/internal/services/progression/domain/event"

// Apply folds an event into cotr state.
func (c *Cotr) Apply(evt event.Event) {
	switch evt.Type {
	case EventTypeCreated:
		var payload CreatePayload
		_ = evt.Decode(&payload)
		c.created = true
		c.hearingID = payload.HearingID
		c.caseURN = payload.CaseURN
		c.hearingDate = payload.HearingDate
		c.jurisdiction = payload.JurisdictionType
		c.courtCentre = payload.CourtCentre
		for _, defendantID := range payload.DefendantIDs {
			c.addDefendant(defendantID)
		}
	case EventTypeDefendantServed:
		var payload ServeDefendantPayload
		_ = evt.Decode(&payload)
		c.content[payload.DefendantID] = append([]Entry(nil), payload.Content...)
	case EventTypeDefenceContentUpdated:
		var payload ContentUpdatedPayload
		_ = evt.Decode(&payload)
		c.content[payload.DefendantID] = append([]Entry(nil), payload.Content...)
	case EventTypeDefendantAdded:
		var payload DefendantAddedPayload
		_ = evt.Decode(&payload)
		c.addDefendant(payload.DefendantID)
	case EventTypeDefendantRemoved:
		var payload DefendantRemovedPayload
		_ = evt.Decode(&payload)
		delete(c.defendants, payload.DefendantID)
		delete(c.content, payload.DefendantID)
	case EventTypeArchived:
		c.archived = true
	case EventTypeReviewNotesUpdated:
		var payload ReviewNotesPayload
		_ = evt.Decode(&payload)
		c.reviewNotes = append([]string(nil), payload.Notes...)
	default:
	}
}

func (c *Cotr) addDefendant(defendantID string) {
	if defendantID == "" {
		return
	}
	c.defendants[defendantID] = struct{}{}
	c.defendantCount++
}
