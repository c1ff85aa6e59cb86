package prosecutioncase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/aggregate"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

const (
	descriptionInvalidCaseID         = "Invalid Case Id"
	descriptionDefendantExists       = "Defendant already exists"
	descriptionPoliceDefendantInUse  = "Police defendant id already exists"
	descriptionDefendantNotFound     = "Defendant not found"
	descriptionApplicantIsRespondent = "Applicant cannot also be a respondent"
)

// whileOpen runs emit only while caseID's sending sheet is still open. Once the
// sheet is completed the command records SendingSheetPreviouslyCompleted instead.
func (c *Case) whileOpen(caseID string, emit func(rec *aggregate.Recorder)) []event.Event {
	rec := aggregate.NewRecorder(c)
	if c.SendingSheetCompleted(caseID) {
		rec.Emit(EventTypeSendingSheetPreviouslyCompleted, CaseRejectedPayload{CaseID: caseID})
		return rec.Events()
	}
	emit(rec)
	return rec.Events()
}

// Create records the case reference and its initial defendants.
func (c *Case) Create(in CreatePayload) []event.Event {
	rec := aggregate.NewRecorder(c)
	if c.created {
		rec.Emit(EventTypeAlreadyExists, CaseRejectedPayload{CaseID: in.CaseID, Description: "Prosecution case already exists"})
		return rec.Events()
	}
	rec.Emit(EventTypeCreated, in)
	return rec.Events()
}

// AddDefendant adds a defendant unless its id or police defendant id is already known.
func (c *Case) AddDefendant(in AddDefendantPayload) []event.Event {
	return c.whileOpen(in.CaseID, func(rec *aggregate.Recorder) {
		defendant := in.Defendant
		if _, exists := c.offences[defendant.ID]; exists || c.HasDefendant(defendant.ID) {
			rec.Emit(EventTypeDefendantAdditionFailed, DefendantRejectedPayload{
				CaseID:      in.CaseID,
				DefendantID: defendant.ID,
				Description: descriptionDefendantExists,
			})
			return
		}
		if defendant.PoliceDefendantID != "" {
			if _, exists := c.policeDefendantIDs[defendant.PoliceDefendantID]; exists {
				rec.Emit(EventTypeDefendantAdditionFailed, DefendantRejectedPayload{
					CaseID:      in.CaseID,
					DefendantID: defendant.ID,
					Description: descriptionPoliceDefendantInUse,
				})
				return
			}
		}
		rec.Emit(EventTypeDefendantAdded, in)
	})
}

// UpdateDefendant updates a known defendant, first recording any attached bail document.
func (c *Case) UpdateDefendant(in UpdateDefendantPayload) []event.Event {
	return c.whileOpen(in.CaseID, func(rec *aggregate.Recorder) {
		if !c.HasDefendant(in.DefendantID) {
			rec.Emit(EventTypeDefendantUpdateFailed, DefendantRejectedPayload{
				CaseID:      in.CaseID,
				DefendantID: in.DefendantID,
				Description: descriptionDefendantNotFound,
			})
			return
		}
		if in.BailDocument != nil && in.BailDocument.ID != "" {
			rec.Emit(EventTypeBailDocumentAdded, BailDocumentPayload{
				CaseID:      in.CaseID,
				DefendantID: in.DefendantID,
				Document:    *in.BailDocument,
			})
		}
		rec.Emit(EventTypeDefendantUpdated, DefendantUpdatedPayload{
			CaseID:      in.CaseID,
			DefendantID: in.DefendantID,
			Person:      in.Person,
			Attributes:  in.Attributes,
		})
	})
}

// CompleteSendingSheet locks the case once the incoming sheet matches the
// recorded court centre, defendants and offences exactly.
func (c *Case) CompleteSendingSheet(in CompleteSendingSheetPayload) []event.Event {
	return c.whileOpen(in.CaseID, func(rec *aggregate.Recorder) {
		if rejection, invalid := c.validateSendingSheet(in); invalid {
			rec.Emit(EventTypeSendingSheetInvalidated, rejection)
			return
		}
		rec.Emit(EventTypeSendingSheetCompleted, in)
		for _, defendantID := range sortedKeys(c.pendingBailDocuments) {
			pending := append([]BailDocument(nil), c.pendingBailDocuments[defendantID]...)
			for _, doc := range pending {
				rec.Emit(EventTypeBailDocumentCreated, BailDocumentPayload{
					CaseID:      in.CaseID,
					DefendantID: defendantID,
					Document:    doc,
				})
			}
		}
	})
}

func (c *Case) validateSendingSheet(in CompleteSendingSheetPayload) (SendingSheetInvalidatedPayload, bool) {
	if len(c.defendantIDs) == 0 {
		return SendingSheetInvalidatedPayload{CaseID: in.CaseID, Description: descriptionInvalidCaseID}, true
	}
	if in.CourtCentreID != c.courtCentreID {
		return SendingSheetInvalidatedPayload{
			CaseID:      in.CaseID,
			Description: fmt.Sprintf("Court centre id mismatch: expected %q, received %q", c.courtCentreID, in.CourtCentreID),
			Expected:    []string{c.courtCentreID},
			Received:    []string{in.CourtCentreID},
		}, true
	}

	incoming := make(map[string]struct{}, len(in.Defendants))
	incomingOffences := make(map[string]map[string]struct{}, len(in.Defendants))
	for _, defendant := range in.Defendants {
		incoming[defendant.ID] = struct{}{}
		offences := incomingOffences[defendant.ID]
		if offences == nil {
			offences = make(map[string]struct{}, len(defendant.Offences))
			incomingOffences[defendant.ID] = offences
		}
		for _, offence := range defendant.Offences {
			offences[offence.ID] = struct{}{}
		}
	}
	expected := c.DefendantIDs()
	received := sortedKeys(incoming)
	if !equalSorted(expected, received) {
		return SendingSheetInvalidatedPayload{
			CaseID:      in.CaseID,
			Description: fmt.Sprintf("Defendant ids mismatch: expected %s, received %s", render(expected), render(received)),
			Expected:    expected,
			Received:    received,
		}, true
	}

	for _, defendantID := range expected {
		expectedOffences := offenceIDs(c.offences[defendantID])
		receivedOffences := sortedKeys(incomingOffences[defendantID])
		if !equalSorted(expectedOffences, receivedOffences) {
			return SendingSheetInvalidatedPayload{
				CaseID:      in.CaseID,
				DefendantID: defendantID,
				Description: fmt.Sprintf("Offence ids mismatch for defendant %s: expected %s, received %s", defendantID, render(expectedOffences), render(receivedOffences)),
				Expected:    expectedOffences,
				Received:    receivedOffences,
			}, true
		}
	}
	return SendingSheetInvalidatedPayload{}, false
}

// UpdateOffencesForDefendant replaces the offences recorded for a defendant.
func (c *Case) UpdateOffencesForDefendant(in UpdateOffencesPayload) []event.Event {
	return c.whileOpen(in.CaseID, func(rec *aggregate.Recorder) {
		rec.Emit(EventTypeOffencesForDefendantUpdated, in)
	})
}

// AddSentenceHearingDate records the date of the sentencing hearing.
func (c *Case) AddSentenceHearingDate(in SentenceHearingDatePayload) []event.Event {
	return c.whileOpen(in.CaseID, func(rec *aggregate.Recorder) {
		rec.Emit(EventTypeSentenceHearingDateAdded, in)
	})
}

// AddConvictionDateToOffence records a conviction date against one offence.
func (c *Case) AddConvictionDateToOffence(in ConvictionDatePayload) []event.Event {
	return c.whileOpen(in.CaseID, func(rec *aggregate.Recorder) {
		rec.Emit(EventTypeConvictionDateAdded, in)
	})
}

// RemoveConvictionDateFromOffence clears the conviction date of one offence.
func (c *Case) RemoveConvictionDateFromOffence(in ConvictionDatePayload) []event.Event {
	return c.whileOpen(in.CaseID, func(rec *aggregate.Recorder) {
		rec.Emit(EventTypeConvictionDateRemoved, ConvictionDatePayload{
			CaseID:      in.CaseID,
			DefendantID: in.DefendantID,
			OffenceID:   in.OffenceID,
		})
	})
}

// RequestPsrForDefendant records pre-sentence report requests.
func (c *Case) RequestPsrForDefendant(in RequestPsrPayload) []event.Event {
	return c.whileOpen(in.CaseID, func(rec *aggregate.Recorder) {
		rec.Emit(EventTypePreSentenceReportRequested, in)
	})
}

// SendingHearingCommittal records the sending committal hearing details.
func (c *Case) SendingHearingCommittal(in SendingCommittalPayload) []event.Event {
	return c.whileOpen(in.CaseID, func(rec *aggregate.Recorder) {
		rec.Emit(EventTypeSendingCommittalAdded, in)
	})
}

// AddCaseToCrownCourt records the crown court centre. Re-adding the case to the
// centre it is already recorded against records CaseAlreadyExistsInCrownCourt.
func (c *Case) AddCaseToCrownCourt(in CrownCourtPayload) []event.Event {
	return c.whileOpen(in.CaseID, func(rec *aggregate.Recorder) {
		if in.CourtCentreID == c.courtCentreID {
			rec.Emit(EventTypeCaseAlreadyExistsInCrownCourt, in)
			return
		}
		rec.Emit(EventTypeCaseAddedToCrownCourt, in)
	})
}

// CreateCourtApplication assigns the next ARN to an application unless its
// applicant is also one of its respondents.
func (c *Case) CreateCourtApplication(in CreateCourtApplicationPayload) []event.Event {
	rec := aggregate.NewRecorder(c)
	applicantID := in.Application.Applicant.ID
	for _, respondent := range in.Application.Respondents {
		if applicantID != "" && respondent.ID == applicantID {
			rec.Emit(EventTypeCourtApplicationRejected, CourtApplicationRejectedPayload{
				CaseID:        in.CaseID,
				ApplicationID: in.Application.ID,
				Description:   descriptionApplicantIsRespondent,
			})
			return rec.Events()
		}
	}
	rec.Emit(EventTypeCourtApplicationCreated, CourtApplicationCreatedPayload{
		CaseID:      in.CaseID,
		Application: in.Application,
		ARN:         c.nextARN(in.CaseID),
	})
	return rec.Events()
}

func (c *Case) nextARN(caseID string) string {
	reference := c.reference
	if reference == "" {
		reference = caseID
	}
	return fmt.Sprintf("%s-%d", reference, c.applicationCount+1)
}

// DefendantsAddedToCourtProceedings adds the incoming defendants the case does
// not know yet. Duplicate incoming ids keep the last occurrence.
func (c *Case) DefendantsAddedToCourtProceedings(in CourtProceedingsPayload) []event.Event {
	return c.whileOpen(in.CaseID, func(rec *aggregate.Recorder) {
		deduped := dedupeDefendants(in.Defendants)
		added := make([]Defendant, 0, len(deduped))
		for _, defendant := range deduped {
			if !c.HasDefendant(defendant.ID) {
				added = append(added, defendant)
			}
		}
		if len(added) == 0 {
			ids := make([]string, 0, len(deduped))
			for _, defendant := range deduped {
				ids = append(ids, defendant.ID)
			}
			rec.Emit(EventTypeDefendantsNotAddedToCourtProceedings, DefendantsNotAddedPayload{
				CaseID:       in.CaseID,
				HearingID:    in.HearingID,
				DefendantIDs: ids,
			})
			return
		}
		rec.Emit(EventTypeDefendantsAddedToCourtProceedings, CourtProceedingsPayload{
			CaseID:     in.CaseID,
			HearingID:  in.HearingID,
			Defendants: added,
		})
	})
}

func dedupeDefendants(defendants []Defendant) []Defendant {
	index := make(map[string]int, len(defendants))
	out := make([]Defendant, 0, len(defendants))
	for _, defendant := range defendants {
		if i, ok := index[defendant.ID]; ok {
			out[i] = defendant
			continue
		}
		index[defendant.ID] = len(out)
		out = append(out, defendant)
	}
	return out
}

func offenceIDs(offences []Offence) []string {
	ids := make(map[string]struct{}, len(offences))
	for _, offence := range offences {
		ids[offence.ID] = struct{}{}
	}
	return sortedKeys(ids)
}

func equalSorted(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func render(ids []string) string {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	return "[" + strings.Join(sorted, ", ") + "]"
}
