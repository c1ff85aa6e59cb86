// Package material tracks a requested case material through upload and review.
package material

// RequestPayload captures the payload for material.request commands and
// material.requested events.
type RequestPayload struct {
	MaterialID   string `json:"material_id"`
	CaseID       string `json:"case_id,omitempty"`
	DocumentType string `json:"document_type,omitempty"`
}

// UploadPayload captures the payload for material.record_upload commands and
// material.uploaded events.
type UploadPayload struct {
	MaterialID string `json:"material_id"`
	FileID     string `json:"file_id"`
	FileName   string `json:"file_name,omitempty"`
	MimeType   string `json:"mime_type,omitempty"`
}

// StatusPayload captures the payload for material.update_status commands and
// material.status_updated events.
type StatusPayload struct {
	MaterialID string `json:"material_id"`
	Status     string `json:"status"`
}

// RejectedPayload records a refused material command.
type RejectedPayload struct {
	MaterialID  string `json:"material_id"`
	Description string `json:"description"`
}
