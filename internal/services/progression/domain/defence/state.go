package defence

import "github.com/louisbranch/caseprogression/internal/services/progression/domain/event"

// Association captures the replayed representation of one defendant.
type Association struct {
	defendantID    string
	organisationID string
}

// New returns an empty association aggregate for defendantID.
func New(defendantID string) *Association {
	return &Association{defendantID: defendantID}
}

// OrganisationID returns the representing organisation, empty when unrepresented.
func (a *Association) OrganisationID() string { return a.organisationID }

// Apply folds an event into association state.
func (a *Association) Apply(evt event.Event) {
	switch evt.Type {
	case EventTypeAssociated:
		var payload AssociatePayload
		_ = evt.Decode(&payload)
		a.organisationID = payload.OrganisationID
	case EventTypeDisassociated:
		var payload DisassociatePayload
		_ = evt.Decode(&payload)
		if a.organisationID == payload.OrganisationID {
			a.organisationID = ""
		}
	default:
	}
}
