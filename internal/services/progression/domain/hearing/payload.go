package hearing

// InitiatePayload captures the payload for hearing.initiate commands and
// hearing.initiated events.
type InitiatePayload struct {
	HearingID     string   `json:"hearing_id"`
	CaseIDs       []string `json:"case_ids"`
	CourtCentreID string   `json:"court_centre_id,omitempty"`
	HearingDate   string   `json:"hearing_date,omitempty"`
	HearingType   string   `json:"hearing_type,omitempty"`
}

// ListingStatusPayload captures the payload for hearing.change_listing_status
// commands and events.
type ListingStatusPayload struct {
	HearingID     string `json:"hearing_id"`
	ListingStatus string `json:"listing_status"`
}

// Result is the outcome recorded for one defendant and offence.
type Result struct {
	DefendantID string `json:"defendant_id"`
	OffenceID   string `json:"offence_id,omitempty"`
	Code        string `json:"code"`
	Text        string `json:"text,omitempty"`
}

// ResultPayload captures the payload for hearing.result commands and
// hearing.resulted events.
type ResultPayload struct {
	HearingID string   `json:"hearing_id"`
	Results   []Result `json:"results"`
}

// ApplicationPayload captures the payload for hearing.add_application commands
// and events.
type ApplicationPayload struct {
	HearingID     string `json:"hearing_id"`
	ApplicationID string `json:"application_id"`
}

// DeletePayload captures the payload for hearing.delete commands and
// hearing.deleted events.
type DeletePayload struct {
	HearingID string `json:"hearing_id"`
	Reason    string `json:"reason,omitempty"`
}

// RejectedPayload records a refused hearing command.
type RejectedPayload struct {
	HearingID   string `json:"hearing_id"`
	Description string `json:"description"`
}
