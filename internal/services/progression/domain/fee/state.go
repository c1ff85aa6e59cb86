package fee

import "github.com/louisbranch/caseprogression/internal/services/progression/domain/event"

// Fees captures the replayed fees of one case keyed by fee id.
type Fees struct {
	caseID   string
	statuses map[string]string
}

// New returns an empty fee aggregate for caseID.
func New(caseID string) *Fees {
	return &Fees{caseID: caseID, statuses: make(map[string]string)}
}

// Status returns the status of feeID and whether it is recorded.
func (f *Fees) Status(feeID string) (string, bool) {
	status, ok := f.statuses[feeID]
	return status, ok
}

// Apply folds an event into fee state.
func (f *Fees) Apply(evt event.Event) {
	switch evt.Type {
	case EventTypeRecorded:
		var payload RecordPayload
		_ = evt.Decode(&payload)
		f.statuses[payload.FeeID] = payload.Status
	case EventTypeStatusUpdated:
		var payload StatusPayload
		_ = evt.Decode(&payload)
		f.statuses[payload.FeeID] = payload.Status
	default:
	}
}
