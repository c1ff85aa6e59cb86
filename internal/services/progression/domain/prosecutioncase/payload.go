package prosecutioncase

// CreatePayload captures the payload for prosecution_case.create commands and
// prosecution_case.created events.
type CreatePayload struct {
	CaseID     string      `json:"case_id"`
	Reference  string      `json:"reference"`
	Defendants []Defendant `json:"defendants,omitempty"`
}

// CaseRejectedPayload records a rejection that concerns the case as a whole.
type CaseRejectedPayload struct {
	CaseID      string `json:"case_id"`
	Description string `json:"description,omitempty"`
}

// AddDefendantPayload captures the payload for prosecution_case.add_defendant
// commands and prosecution_case.defendant_added events.
type AddDefendantPayload struct {
	CaseID    string    `json:"case_id"`
	Defendant Defendant `json:"defendant"`
}

// DefendantRejectedPayload records a rejection concerning one defendant.
type DefendantRejectedPayload struct {
	CaseID      string `json:"case_id"`
	DefendantID string `json:"defendant_id"`
	Description string `json:"description"`
}

// UpdateDefendantPayload captures the payload for prosecution_case.update_defendant commands.
type UpdateDefendantPayload struct {
	CaseID       string        `json:"case_id"`
	DefendantID  string        `json:"defendant_id"`
	Person       *Person       `json:"person,omitempty"`
	BailDocument *BailDocument `json:"bail_document,omitempty"`
	Attributes
}

// DefendantUpdatedPayload captures the payload for prosecution_case.defendant_updated events.
type DefendantUpdatedPayload struct {
	CaseID      string  `json:"case_id"`
	DefendantID string  `json:"defendant_id"`
	Person      *Person `json:"person,omitempty"`
	Attributes
}

// BailDocumentPayload captures the payload for bail document events.
type BailDocumentPayload struct {
	CaseID      string       `json:"case_id"`
	DefendantID string       `json:"defendant_id"`
	Document    BailDocument `json:"document"`
}

// CompleteSendingSheetPayload captures the payload for
// prosecution_case.complete_sending_sheet commands and
// prosecution_case.sending_sheet_completed events.
type CompleteSendingSheetPayload struct {
	CaseID        string                  `json:"case_id"`
	CourtCentreID string                  `json:"court_centre_id"`
	Defendants    []SendingSheetDefendant `json:"defendants"`
}

// SendingSheetInvalidatedPayload records why a sending sheet was refused.
// Expected and Received carry both sides of a failed set comparison.
type SendingSheetInvalidatedPayload struct {
	CaseID      string   `json:"case_id"`
	Description string   `json:"description"`
	DefendantID string   `json:"defendant_id,omitempty"`
	Expected    []string `json:"expected,omitempty"`
	Received    []string `json:"received,omitempty"`
}

// UpdateOffencesPayload captures the payload for
// prosecution_case.update_offences_for_defendant commands and events.
type UpdateOffencesPayload struct {
	CaseID      string    `json:"case_id"`
	DefendantID string    `json:"defendant_id"`
	Offences    []Offence `json:"offences"`
}

// SentenceHearingDatePayload captures the payload for sentence hearing date commands and events.
type SentenceHearingDatePayload struct {
	CaseID              string `json:"case_id"`
	SentenceHearingDate string `json:"sentence_hearing_date"`
}

// ConvictionDatePayload captures the payload for conviction date commands and events.
type ConvictionDatePayload struct {
	CaseID         string `json:"case_id"`
	DefendantID    string `json:"defendant_id"`
	OffenceID      string `json:"offence_id"`
	ConvictionDate string `json:"conviction_date,omitempty"`
}

// RequestPsrPayload captures the payload for pre-sentence report commands and events.
type RequestPsrPayload struct {
	CaseID     string       `json:"case_id"`
	Defendants []PsrRequest `json:"defendants"`
}

// SendingCommittalPayload captures the payload for sending committal hearing commands and events.
type SendingCommittalPayload struct {
	CaseID               string `json:"case_id"`
	CourtCentreName      string `json:"court_centre_name"`
	SendingCommittalDate string `json:"sending_committal_date"`
}

// CrownCourtPayload captures the payload for crown court referral commands and events.
type CrownCourtPayload struct {
	CaseID        string `json:"case_id"`
	CourtCentreID string `json:"court_centre_id"`
}

// CreateCourtApplicationPayload captures the payload for
// prosecution_case.create_court_application commands.
type CreateCourtApplicationPayload struct {
	CaseID      string           `json:"case_id"`
	Application CourtApplication `json:"application"`
}

// CourtApplicationCreatedPayload captures the payload for
// prosecution_case.court_application_created events.
type CourtApplicationCreatedPayload struct {
	CaseID      string           `json:"case_id"`
	Application CourtApplication `json:"application"`
	ARN         string           `json:"arn"`
}

// CourtApplicationRejectedPayload records a refused court application.
type CourtApplicationRejectedPayload struct {
	CaseID        string `json:"case_id"`
	ApplicationID string `json:"application_id"`
	Description   string `json:"description"`
}

// CourtProceedingsPayload captures the payload for
// prosecution_case.add_defendants_to_court_proceedings commands and the
// resulting added event.
type CourtProceedingsPayload struct {
	CaseID     string      `json:"case_id"`
	HearingID  string      `json:"hearing_id,omitempty"`
	Defendants []Defendant `json:"defendants"`
}

// DefendantsNotAddedPayload records that no new defendants remained after deduplication.
type DefendantsNotAddedPayload struct {
	CaseID       string   `json:"case_id"`
	HearingID    string   `json:"hearing_id,omitempty"`
	DefendantIDs []string `json:"defendant_ids"`
}
