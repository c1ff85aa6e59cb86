// Package courtdocument models documents uploaded against a case or hearing,
// their metadata changes, removal and sharing with hearings.
package courtdocument

// Document describes a court document's metadata.
type Document struct {
	Name         string   `json:"name"`
	DocumentType string   `json:"document_type,omitempty"`
	MaterialIDs  []string `json:"material_ids,omitempty"`
	CaseID       string   `json:"case_id,omitempty"`
	DefendantIDs []string `json:"defendant_ids,omitempty"`
}

// CreatePayload captures the payload for court_document.create commands and
// court_document.created events.
type CreatePayload struct {
	CourtDocumentID string   `json:"court_document_id"`
	Document        Document `json:"document"`
}

// UpdatePayload captures the payload for court_document.update commands and
// court_document.updated events.
type UpdatePayload struct {
	CourtDocumentID string   `json:"court_document_id"`
	Document        Document `json:"document"`
}

// RemovePayload captures the payload for court_document.remove commands and
// court_document.removed events.
type RemovePayload struct {
	CourtDocumentID string `json:"court_document_id"`
	Reason          string `json:"reason,omitempty"`
}

// SharePayload captures the payload for court_document.share_with_hearing
// commands and court_document.shared_with_hearing events.
type SharePayload struct {
	CourtDocumentID string `json:"court_document_id"`
	HearingID       string `json:"hearing_id"`
}

// RejectedPayload records why a court document command was refused.
type RejectedPayload struct {
	CourtDocumentID string `json:"court_document_id"`
	Description     string `json:"description"`
}
