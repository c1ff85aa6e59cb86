package courtdocument

import "github.com/louisbranch/caseprogression/internal/services/progression/domain/event"

// CourtDocument captures replayed document state.
type CourtDocument struct {
	id       string
	created  bool
	removed  bool
	document Document
	hearings []string
}

// New returns an empty court document aggregate for id.
func New(id string) *CourtDocument {
	return &CourtDocument{id: id}
}

// Document returns the current metadata.
func (d *CourtDocument) Document() Document { return d.document }

// Removed reports whether the document was removed.
func (d *CourtDocument) Removed() bool { return d.removed }

// SharedWith returns hearing ids in the order the document was shared with them.
func (d *CourtDocument) SharedWith() []string {
	return append([]string(nil), d.hearings...)
}

func (d *CourtDocument) sharedWith(hearingID string) bool {
	for _, id := range d.hearings {
		if id == hearingID {
			return true
		}
	}
	return false
}

// Apply folds an event into court document state.
func (d *CourtDocument) Apply(evt event.Event) {
	switch evt.Type {
	case EventTypeCreated:
		var payload CreatePayload
		_ = evt.Decode(&payload)
		d.created = true
		d.document = payload.Document
	case EventTypeUpdated:
		var payload UpdatePayload
		_ = evt.Decode(&payload)
		d.document = payload.Document
	case EventTypeRemoved:
		d.removed = true
	case EventTypeSharedWithHearing:
		var payload SharePayload
		_ = evt.Decode(&payload)
		if !d.sharedWith(payload.HearingID) {
			d.hearings = append(d.hearings, payload.HearingID)
		}
	default:
	}
}
