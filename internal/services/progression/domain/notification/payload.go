package notification

// RequestPayload captures the payload for notification.request commands and
// notification.requested events.
type RequestPayload struct {
	NotificationID string `json:"notification_id"`
	CaseID         string `json:"case_id,omitempty"`
	Recipient      string `json:"recipient"`
	TemplateID     string `json:"template_id,omitempty"`
	Channel        string `json:"channel,omitempty"`
}

// OutcomePayload captures the payload for notification.mark_sent and
// notification.mark_failed commands and their events.
type OutcomePayload struct {
	NotificationID string `json:"notification_id"`
	At             string `json:"at,omitempty"`
	Reason         string `json:"reason,omitempty"`
}
