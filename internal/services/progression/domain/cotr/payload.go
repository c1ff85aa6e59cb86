package cotr

// Answer is one question and response on a served form.
type Answer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Details  string `json:"details,omitempty"`
}

// Entry is one section of a defendant's accumulated form content.
type Entry struct {
	Heading string `json:"heading"`
	Text    string `json:"text"`
}

// CreatePayload captures the payload for cotr.create commands and cotr.created events.
type CreatePayload struct {
	CotrID           string   `json:"cotr_id"`
	HearingID        string   `json:"hearing_id"`
	CaseURN          string   `json:"case_urn"`
	HearingDate      string   `json:"hearing_date"`
	JurisdictionType string   `json:"jurisdiction_type"`
	CourtCentre      string   `json:"court_centre"`
	DefendantIDs     []string `json:"defendant_ids,omitempty"`
}

// RejectedPayload records a refused cotr command.
type RejectedPayload struct {
	CotrID      string `json:"cotr_id"`
	Description string `json:"description"`
}

// ServeProsecutionPayload captures the payload for cotr.serve_prosecution
// commands and cotr.prosecution_served events.
type ServeProsecutionPayload struct {
	CotrID    string   `json:"cotr_id"`
	Answers   []Answer `json:"answers"`
	Submitted string   `json:"submitted,omitempty"`
}

// ServeDefendantPayload captures the payload for cotr.serve_defendant commands
// and cotr.defendant_served events.
type ServeDefendantPayload struct {
	CotrID      string   `json:"cotr_id"`
	DefendantID string   `json:"defendant_id"`
	Answers     []Answer `json:"answers"`
	Content     []Entry  `json:"content,omitempty"`
	IsWelshForm bool     `json:"is_welsh_form,omitempty"`
}

// FurtherInfoPayload captures the payload for further information commands.
// DefendantID is only used on the defence side.
type FurtherInfoPayload struct {
	CotrID      string `json:"cotr_id"`
	DefendantID string `json:"defendant_id,omitempty"`
	Message     string `json:"message"`
	AddedBy     string `json:"added_by,omitempty"`
}

// ContentUpdatedPayload records the new accumulated content for a defendant.
type ContentUpdatedPayload struct {
	CotrID      string  `json:"cotr_id"`
	DefendantID string  `json:"defendant_id"`
	Content     []Entry `json:"content"`
}

// TaskPayload describes a review task routed to one or more roles.
type TaskPayload struct {
	CotrID      string   `json:"cotr_id"`
	HearingID   string   `json:"hearing_id"`
	DefendantID string   `json:"defendant_id,omitempty"`
	Name        string   `json:"name"`
	DueInDays   int      `json:"due_in_days"`
	Roles       []string `json:"roles"`
}

// ChangeDefendantsPayload captures the payload for cotr.change_defendants commands.
type ChangeDefendantsPayload struct {
	CotrID  string   `json:"cotr_id"`
	Added   []string `json:"added,omitempty"`
	Removed []string `json:"removed,omitempty"`
}

// DefendantAddedPayload records a defendant joining the cotr with its running number.
type DefendantAddedPayload struct {
	CotrID          string `json:"cotr_id"`
	DefendantID     string `json:"defendant_id"`
	DefendantNumber int    `json:"defendant_number"`
}

// DefendantRemovedPayload records a defendant leaving the cotr.
type DefendantRemovedPayload struct {
	CotrID      string `json:"cotr_id"`
	DefendantID string `json:"defendant_id"`
}

// ArchivePayload captures the payload for cotr.archive commands and cotr.archived events.
type ArchivePayload struct {
	CotrID string `json:"cotr_id"`
}

// ReviewNotesPayload captures the payload for cotr.update_review_notes commands
// and cotr.review_notes_updated events.
type ReviewNotesPayload struct {
	CotrID string   `json:"cotr_id"`
	Notes  []string `json:"notes"`
}
