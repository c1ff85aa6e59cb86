package application

// Application captures replayed court application state.
type Application struct {
	id           string
	created      bool
	status       Status
	details      CourtApplication
	hearingIDs   []string
	boxHearingID string
}

// New returns an empty application aggregate for id.
func New(id string) *Application {
	return &Application{id: id}
}

// Status returns the current lifecycle status.
func (a *Application) Status() Status { return a.status }

// HearingIDs returns linked hearings in link order.
func (a *Application) HearingIDs() []string {
	return append([]string(nil), a.hearingIDs...)
}

// BoxHearingID returns the boxwork hearing, if referred.
func (a *Application) BoxHearingID() string { return a.boxHearingID }

// Details returns the latest application details.
func (a *Application) Details() CourtApplication { return a.details }

func (a *Application) linked(hearingID string) bool {
	for _, id := range a.hearingIDs {
		if id == hearingID {
			return true
		}
	}
	return false
}
