package hearing

import "github.com/louisbranch/caseprogression/internal/services/progression/domain/event"

// Hearing captures replayed hearing state.
type Hearing struct {
	id            string
	initiated     bool
	deleted       bool
	caseIDs       []string
	listingStatus string
	results       []Result
	applications  []string
}

// New returns an empty hearing aggregate for id.
func New(id string) *Hearing {
	return &Hearing{id: id}
}

// ListingStatus returns the latest listing status.
func (h *Hearing) ListingStatus() string { return h.listingStatus }

// Applications returns linked application ids in link order.
func (h *Hearing) Applications() []string {
	return append([]string(nil), h.applications...)
}

// CaseIDs returns the cases heard together.
func (h *Hearing) CaseIDs() []string {
	return append([]string(nil), h.caseIDs...)
}

// Results returns every recorded result in the order it was recorded.
func (h *Hearing) Results() []Result {
	return append([]Result(nil), h.results...)
}

// Deleted reports whether the hearing was deleted.
func (h *Hearing) Deleted() bool { return h.deleted }

// Apply folds an event into hearing state.
func (h *Hearing) Apply(evt event.Event) {
	switch evt.Type {
	case EventTypeInitiated:
		var payload InitiatePayload
		_ = evt.Decode(&payload)
		h.initiated = true
		h.caseIDs = append([]string(nil), payload.CaseIDs...)
	case EventTypeListingStatusChanged:
		var payload ListingStatusPayload
		_ = evt.Decode(&payload)
		h.listingStatus = payload.ListingStatus
	case EventTypeResulted:
		var payload ResultPayload
		_ = evt.Decode(&payload)
		h.results = append(h.results, payload.Results...)
	case EventTypeApplicationAdded:
		var payload ApplicationPayload
		_ = evt.Decode(&payload)
		h.applications = append(h.applications, payload.ApplicationID)
	case EventTypeDeleted:
		h.deleted = true
	default:
	}
}

func (h *Hearing) hasApplication(applicationID string) bool {
	for _, id := range h.applications {
		if id == applicationID {
			return true
		}
	}
	return false
}
