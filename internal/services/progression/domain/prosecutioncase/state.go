package prosecutioncase

import "sort"

// Case captures replayed prosecution case state.
//
// All fields are populated only by Apply. Sets and maps are owned by the
// instance and never handed out without copying.
type Case struct {
	id string

	// created indicates prosecution_case.created has been folded.
	created bool
	// reference is the case URN used as the ARN prefix.
	reference string
	// courtCentreID is the crown court the case was added to.
	courtCentreID string

	defendantIDs       map[string]struct{}
	policeDefendantIDs map[string]struct{}
	// offences maps defendant id to the defendant's current offences.
	offences   map[string][]Offence
	persons    map[string]Person
	attributes map[string]Attributes

	// pendingBailDocuments maps defendant id to documents awaiting sending-sheet completion.
	pendingBailDocuments map[string][]BailDocument
	// completedSendingSheets is the permanent lock set.
	completedSendingSheets map[string]struct{}

	sentenceHearingDate string
	psrRequested        map[string]bool
	committalCourt      string
	committalDate       string
	applicationCount    int
}

// New returns an empty case aggregate for id.
func New(id string) *Case {
	return &Case{
		id:                     id,
		defendantIDs:           make(map[string]struct{}),
		policeDefendantIDs:     make(map[string]struct{}),
		offences:               make(map[string][]Offence),
		persons:                make(map[string]Person),
		attributes:             make(map[string]Attributes),
		pendingBailDocuments:   make(map[string][]BailDocument),
		completedSendingSheets: make(map[string]struct{}),
		psrRequested:           make(map[string]bool),
	}
}

// ID returns the case id the aggregate was created for.
func (c *Case) ID() string { return c.id }

// CourtCentreID returns the recorded crown court centre id.
func (c *Case) CourtCentreID() string { return c.courtCentreID }

// SendingSheetCompleted reports whether caseID is locked.
func (c *Case) SendingSheetCompleted(caseID string) bool {
	_, ok := c.completedSendingSheets[caseID]
	return ok
}

// HasDefendant reports whether defendantID is known to the case.
func (c *Case) HasDefendant(defendantID string) bool {
	_, ok := c.defendantIDs[defendantID]
	return ok
}

// DefendantIDs returns the known defendant ids in sorted order.
func (c *Case) DefendantIDs() []string {
	return sortedKeys(c.defendantIDs)
}

// Offences returns a copy of the offences recorded for defendantID.
func (c *Case) Offences(defendantID string) []Offence {
	return append([]Offence(nil), c.offences[defendantID]...)
}

// DefendantAttributes returns the bail, interpreter and custody details of defendantID.
func (c *Case) DefendantAttributes(defendantID string) Attributes {
	return c.attributes[defendantID]
}

func sortedKeys[V any](set map[string]V) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
