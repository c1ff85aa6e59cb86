package prosecutioncase

import "github.com/louisbranch/caseprogression/internal/services/progression/domain/event"

// Apply folds an event into case state.
//
// Rejection facts carry no structural change and fall through to the default
// arm together with event types this aggregate does not know.
func (c *Case) Apply(evt event.Event) {
	switch evt.Type {
	case EventTypeCreated:
		var payload CreatePayload
		_ = evt.Decode(&payload)
		c.created = true
		c.reference = payload.Reference
		for _, defendant := range payload.Defendants {
			c.addDefendant(defendant)
		}
	case EventTypeDefendantAdded:
		var payload AddDefendantPayload
		_ = evt.Decode(&payload)
		c.addDefendant(payload.Defendant)
	case EventTypeDefendantUpdated:
		var payload DefendantUpdatedPayload
		_ = evt.Decode(&payload)
		c.updateDefendant(payload)
	case EventTypeBailDocumentAdded:
		var payload BailDocumentPayload
		_ = evt.Decode(&payload)
		c.pendingBailDocuments[payload.DefendantID] = append(c.pendingBailDocuments[payload.DefendantID], payload.Document)
	case EventTypeBailDocumentCreated:
		var payload BailDocumentPayload
		_ = evt.Decode(&payload)
		c.removePendingBailDocument(payload.DefendantID, payload.Document.ID)
	case EventTypeSendingSheetCompleted:
		var payload CompleteSendingSheetPayload
		_ = evt.Decode(&payload)
		c.completedSendingSheets[payload.CaseID] = struct{}{}
	case EventTypeOffencesForDefendantUpdated:
		var payload UpdateOffencesPayload
		_ = evt.Decode(&payload)
		c.offences[payload.DefendantID] = append([]Offence(nil), payload.Offences...)
	case EventTypeSentenceHearingDateAdded:
		var payload SentenceHearingDatePayload
		_ = evt.Decode(&payload)
		c.sentenceHearingDate = payload.SentenceHearingDate
	case EventTypeConvictionDateAdded:
		var payload ConvictionDatePayload
		_ = evt.Decode(&payload)
		c.setConvictionDate(payload.DefendantID, payload.OffenceID, payload.ConvictionDate)
	case EventTypeConvictionDateRemoved:
		var payload ConvictionDatePayload
		_ = evt.Decode(&payload)
		c.setConvictionDate(payload.DefendantID, payload.OffenceID, "")
	case EventTypePreSentenceReportRequested:
		var payload RequestPsrPayload
		_ = evt.Decode(&payload)
		for _, request := range payload.Defendants {
			c.psrRequested[request.DefendantID] = request.PsrRequested
		}
	case EventTypeSendingCommittalAdded:
		var payload SendingCommittalPayload
		_ = evt.Decode(&payload)
		c.committalCourt = payload.CourtCentreName
		c.committalDate = payload.SendingCommittalDate
	case EventTypeCaseAddedToCrownCourt:
		var payload CrownCourtPayload
		_ = evt.Decode(&payload)
		c.courtCentreID = payload.CourtCentreID
	case EventTypeCourtApplicationCreated:
		c.applicationCount++
	case EventTypeDefendantsAddedToCourtProceedings:
		var payload CourtProceedingsPayload
		_ = evt.Decode(&payload)
		for _, defendant := range payload.Defendants {
			c.addDefendant(defendant)
		}
	default:
	}
}

func (c *Case) addDefendant(defendant Defendant) {
	if defendant.ID == "" {
		return
	}
	c.defendantIDs[defendant.ID] = struct{}{}
	if defendant.PoliceDefendantID != "" {
		c.policeDefendantIDs[defendant.PoliceDefendantID] = struct{}{}
	}
	c.offences[defendant.ID] = append([]Offence(nil), defendant.Offences...)
	c.persons[defendant.ID] = defendant.Person
	c.attributes[defendant.ID] = defendant.Attributes
}

// updateDefendant merges the non-empty fields of an update into the defendant.
func (c *Case) updateDefendant(payload DefendantUpdatedPayload) {
	if payload.Person != nil {
		c.persons[payload.DefendantID] = *payload.Person
	}
	attributes := c.attributes[payload.DefendantID]
	if payload.BailStatus != "" {
		attributes.BailStatus = payload.BailStatus
	}
	if payload.InterpreterLanguage != "" {
		attributes.InterpreterLanguage = payload.InterpreterLanguage
	}
	if payload.CustodyTimeLimit != "" {
		attributes.CustodyTimeLimit = payload.CustodyTimeLimit
	}
	c.attributes[payload.DefendantID] = attributes
}

func (c *Case) setConvictionDate(defendantID, offenceID, date string) {
	offences := c.offences[defendantID]
	for i := range offences {
		if offences[i].ID == offenceID {
			offences[i].ConvictionDate = date
		}
	}
}

func (c *Case) removePendingBailDocument(defendantID, documentID string) {
	pending := c.pendingBailDocuments[defendantID]
	kept := pending[:0]
	for _, doc := range pending {
		if doc.ID != documentID {
			kept = append(kept, doc)
		}
	}
	if len(kept) == 0 {
		delete(c.pendingBailDocuments, defendantID)
		return
	}
	c.pendingBailDocuments[defendantID] = kept
}
