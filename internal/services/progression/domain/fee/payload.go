// Package fee records the court fees owed on a case and their payment status.
package fee

// RecordPayload captures the payload for fee.record commands and fee.recorded events.
type RecordPayload struct {
	CaseID  string `json:"case_id"`
	FeeID   string `json:"fee_id"`
	FeeType string `json:"fee_type,omitempty"`
	Amount  string `json:"amount,omitempty"`
	Status  string `json:"status"`
}

// StatusPayload captures the payload for fee.update_status commands and
// fee.status_updated events.
type StatusPayload struct {
	CaseID string `json:"case_id"`
	FeeID  string `json:"fee_id"`
	Status string `json:"status"`
}

// RejectedPayload records a refused fee command.
type RejectedPayload struct {
	CaseID      string `json:"case_id"`
	FeeID       string `json:"fee_id"`
	Description string `json:"description"`
}
