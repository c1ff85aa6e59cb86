package material

import "github.com/louisbranch/caseprogression/internal/services/progression/domain/event"

// Material captures replayed material state.
type Material struct {
	id        string
	requested bool
	fileID    string
	status    string
}

// New returns an empty material aggregate for id.
func New(id string) *Material {
	return &Material{id: id}
}

// FileID returns the uploaded file, if any.
func (m *Material) FileID() string { return m.fileID }

// Status returns the latest material status.
func (m *Material) Status() string { return m.status }

// Apply folds an event into material state.
func (m *Material) Apply(evt event.Event) {
	switch evt.Type {
	case EventTypeRequested:
		m.requested = true
		m.status = StatusRequested
	case EventTypeUploaded:
		var payload UploadPayload
		_ = evt.Decode(&payload)
		m.fileID = payload.FileID
		m.status = StatusUploaded
	case EventTypeStatusUpdated:
		var payload StatusPayload
		_ = evt.Decode(&payload)
		m.status = payload.Status
	default:
	}
}
