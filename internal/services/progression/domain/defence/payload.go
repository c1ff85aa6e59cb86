package defence

// AssociatePayload captures the payload for defence.associate commands and
// defence.associated events.
type AssociatePayload struct {
	DefendantID        string `json:"defendant_id"`
	OrganisationID     string `json:"organisation_id"`
	OrganisationName   string `json:"organisation_name,omitempty"`
	RepresentationType string `json:"representation_type,omitempty"`
	StartDate          string `json:"start_date,omitempty"`
}

// DisassociatePayload captures the payload for defence.disassociate commands and
// defence.disassociated events.
type DisassociatePayload struct {
	DefendantID    string `json:"defendant_id"`
	OrganisationID string `json:"organisation_id"`
	EndDate        string `json:"end_date,omitempty"`
}

// RejectedPayload records a refused association change.
type RejectedPayload struct {
	DefendantID    string `json:"defendant_id"`
	OrganisationID string `json:"organisation_id"`
	Description    string `json:"description"`
}
