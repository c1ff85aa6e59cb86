package prosecutioncase

// Offence is a charge laid against one defendant.
type Offence struct {
	ID             string `json:"id"`
	OffenceCode    string `json:"offence_code,omitempty"`
	Wording        string `json:"wording,omitempty"`
	StartDate      string `json:"start_date,omitempty"`
	ConvictionDate string `json:"conviction_date,omitempty"`
}

// Person holds the personal details recorded for a defendant.
type Person struct {
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
}

// Attributes holds the bail, interpreter and custody details of a defendant.
type Attributes struct {
	BailStatus          string `json:"bail_status,omitempty"`
	InterpreterLanguage string `json:"interpreter_language,omitempty"`
	CustodyTimeLimit    string `json:"custody_time_limit,omitempty"`
}

// Defendant is a person prosecuted on the case.
type Defendant struct {
	ID                string    `json:"id"`
	PersonID          string    `json:"person_id,omitempty"`
	PoliceDefendantID string    `json:"police_defendant_id,omitempty"`
	Person            Person    `json:"person"`
	Offences          []Offence `json:"offences"`
	Attributes
}

// BailDocument is a bail conditions document awaiting sending-sheet completion.
type BailDocument struct {
	ID         string `json:"id"`
	MaterialID string `json:"material_id,omitempty"`
}

// Party is an applicant or respondent on a court application.
type Party struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// CourtApplication is an application raised against the case.
type CourtApplication struct {
	ID              string  `json:"id"`
	ApplicationType string  `json:"application_type,omitempty"`
	Applicant       Party   `json:"applicant"`
	Respondents     []Party `json:"respondents"`
}

// SendingSheetOffence references an offence on the sending sheet.
type SendingSheetOffence struct {
	ID string `json:"id"`
}

// SendingSheetDefendant references a defendant and their offences on the sending sheet.
type SendingSheetDefendant struct {
	ID       string                `json:"id"`
	Offences []SendingSheetOffence `json:"offences"`
}

// PsrRequest flags whether a pre-sentence report is wanted for a defendant.
type PsrRequest struct {
	DefendantID  string `json:"defendant_id"`
	PsrRequested bool   `json:"psr_requested"`
}
