package application

import "strings"

// Status is the lifecycle position of an application.
type Status string

// Application statuses.
const (
	StatusDraft      Status = "DRAFT"
	StatusListed     Status = "LISTED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusEjected    Status = "EJECTED"
)

// ParseStatus normalizes a status label, reporting whether it is known.
func ParseStatus(value string) (Status, bool) {
	status := Status(strings.ToUpper(strings.TrimSpace(value)))
	switch status {
	case StatusDraft, StatusListed, StatusInProgress, StatusEjected:
		return status, true
	default:
		return "", false
	}
}

// Terminal reports whether no further command may change the application.
func (s Status) Terminal() bool {
	return s == StatusEjected
}
