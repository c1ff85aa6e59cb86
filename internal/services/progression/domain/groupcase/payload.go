package groupcase

// Member is the snapshot of one case held by the group.
type Member struct {
	CaseID      string `json:"case_id"`
	Reference   string `json:"reference,omitempty"`
	CaseStatus  string `json:"case_status,omitempty"`
	GroupMaster bool   `json:"group_master,omitempty"`
}

// InitiatePayload captures the payload for group_case.initiate commands and
// group_case.initiated events.
type InitiatePayload struct {
	GroupID string   `json:"group_id"`
	Cases   []Member `json:"cases"`
}

// RemoveCasePayload captures the payload for group_case.remove_case commands.
type RemoveCasePayload struct {
	GroupID string `json:"group_id"`
	CaseID  string `json:"case_id"`
}

// CaseRemovedPayload captures the payload for group_case.case_removed events.
// NewMaster is set only when the removed case was the master.
type CaseRemovedPayload struct {
	GroupID       string  `json:"group_id"`
	RemovedCaseID string  `json:"removed_case_id"`
	NewMaster     *Member `json:"new_master,omitempty"`
}

// RejectedPayload records a refused group command.
type RejectedPayload struct {
	GroupID     string `json:"group_id"`
	CaseID      string `json:"case_id,omitempty"`
	Description string `json:"description"`
}
