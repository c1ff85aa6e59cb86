package cotr

// Cotr captures replayed certificate of trial readiness state.
type Cotr struct {
	id      string
	created bool
	// archived is one-way.
	archived bool

	hearingID    string
	caseURN      string
	hearingDate  string
	jurisdiction string
	courtCentre  string

	defendantCount int
	defendants     map[string]struct{}
	content        map[string][]Entry
	reviewNotes    []string
}

// New returns an empty cotr aggregate for id.
func New(id string) *Cotr {
	return &Cotr{
		id:         id,
		defendants: make(map[string]struct{}),
		content:    make(map[string][]Entry),
	}
}

// Archived reports whether the cotr has been archived.
func (c *Cotr) Archived() bool { return c.archived }

// DefendantCount returns the running number of defendants ever added.
func (c *Cotr) DefendantCount() int { return c.defendantCount }

// Content returns a copy of the accumulated content for defendantID.
func (c *Cotr) Content(defendantID string) []Entry {
	return append([]Entry(nil), c.content[defendantID]...)
}

// ReviewNotes returns a copy of the latest reviewer notes.
func (c *Cotr) ReviewNotes() []string {
	return append([]string(nil), c.reviewNotes...)
}
