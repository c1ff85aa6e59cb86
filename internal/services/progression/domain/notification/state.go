package notification

import "github.com/louisbranch/caseprogression/internal/services/progression/domain/event"

// Status is the delivery position of a notification.
type Status string

// Notification delivery statuses.
const (
	StatusNone      Status = ""
	StatusRequested Status = "REQUESTED"
	StatusSent      Status = "SENT"
	StatusFailed    Status = "FAILED"
)

// Terminal reports whether no further outcome may be recorded.
func (s Status) Terminal() bool {
	return s == StatusSent || s == StatusFailed
}

// Notification captures replayed notification state.
type Notification struct {
	id     string
	status Status
}

// New returns an empty notification aggregate for id.
func New(id string) *Notification {
	return &Notification{id: id}
}

// Status returns the current delivery status.
func (n *Notification) Status() Status { return n.status }

// Apply folds an event into notification state.
func (n *Notification) Apply(evt event.Event) {
	switch evt.Type {
	case EventTypeRequested:
		n.status = StatusRequested
	case EventTypeSent:
		n.status = StatusSent
	case EventTypeFailed:
		n.status = StatusFailed
	default:
	}
}
