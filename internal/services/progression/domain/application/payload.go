package application

// CourtApplication holds the details of an application that later updates replace.
type CourtApplication struct {
	ID              string `json:"id"`
	ApplicationType string `json:"application_type,omitempty"`
	ApplicantID     string `json:"applicant_id,omitempty"`
	Particulars     string `json:"particulars,omitempty"`
}

// InitiatePayload captures the payload for application.initiate commands and
// application.initiated events.
type InitiatePayload struct {
	ApplicationID string           `json:"application_id"`
	CaseID        string           `json:"case_id,omitempty"`
	Application   CourtApplication `json:"application"`
}

// RejectedPayload records a refused application command.
type RejectedPayload struct {
	ApplicationID string `json:"application_id"`
	Description   string `json:"description"`
}

// ReferToCourtPayload captures the payload for application.refer_to_court
// commands and application.referred_to_court events.
type ReferToCourtPayload struct {
	ApplicationID string `json:"application_id"`
	HearingID     string `json:"hearing_id"`
}

// ReferBoxWorkPayload captures the payload for application.refer_boxwork
// commands. Updates are replayed before the referral is recorded.
type ReferBoxWorkPayload struct {
	ApplicationID string             `json:"application_id"`
	BoxHearingID  string             `json:"box_hearing_id"`
	Updates       []CourtApplication `json:"updates,omitempty"`
}

// BoxWorkReferredPayload captures the payload for application.boxwork_referred events.
type BoxWorkReferredPayload struct {
	ApplicationID string `json:"application_id"`
	BoxHearingID  string `json:"box_hearing_id"`
}

// CourtApplicationUpdatedPayload captures the payload for
// application.update_court_application commands and the resulting events.
type CourtApplicationUpdatedPayload struct {
	ApplicationID string           `json:"application_id"`
	Application   CourtApplication `json:"application"`
}

// EjectPayload captures the payload for application.eject commands and
// application.ejected events.
type EjectPayload struct {
	ApplicationID string `json:"application_id"`
	Reason        string `json:"reason,omitempty"`
}

// StatusPayload captures the payload for application.update_status commands and
// application.status_changed events.
type StatusPayload struct {
	ApplicationID string `json:"application_id"`
	Status        string `json:"status"`
}

// LinkHearingPayload captures the payload for application.link_hearing commands
// and application.hearing_linked events.
type LinkHearingPayload struct {
	ApplicationID string `json:"application_id"`
	HearingID     string `json:"hearing_id"`
}
