// Package courtcentre records the prison and court registers produced for a
// court centre.
package courtcentre

// PrisonCourtRegisterPayload captures the payload for
// court_centre.record_prison_court_register commands and events.
type PrisonCourtRegisterPayload struct {
	CourtCentreID string `json:"court_centre_id"`
	RegisterID    string `json:"register_id"`
	HearingDate   string `json:"hearing_date,omitempty"`
	DefendantID   string `json:"defendant_id,omitempty"`
	PrisonName    string `json:"prison_name,omitempty"`
}

// RegisterGeneratedPayload captures the payload for
// court_centre.generate_prison_court_register commands and events.
type RegisterGeneratedPayload struct {
	CourtCentreID string `json:"court_centre_id"`
	RegisterID    string `json:"register_id"`
	FileID        string `json:"file_id"`
}

// CourtRegisterPayload captures the payload for court_centre.record_court_register
// commands and events.
type CourtRegisterPayload struct {
	CourtCentreID string `json:"court_centre_id"`
	RegisterID    string `json:"register_id"`
	RegisterDate  string `json:"register_date"`
}

// NotifyPayload captures the payload for court_centre.notify_court_register
// commands and events.
type NotifyPayload struct {
	CourtCentreID string   `json:"court_centre_id"`
	RegisterID    string   `json:"register_id"`
	Recipients    []string `json:"recipients,omitempty"`
}

// RegisterRejectedPayload records a command against an unknown register.
type RegisterRejectedPayload struct {
	CourtCentreID string `json:"court_centre_id"`
	RegisterID    string `json:"register_id"`
	Description   string `json:"description"`
}
