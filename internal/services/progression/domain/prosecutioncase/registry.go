package prosecutioncase

import (
	"encoding/json"
	"errors"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

// RegisterCommands registers prosecution case commands with the shared registry.
func RegisterCommands(registry *command.Registry) error {
	if registry == nil {
		return errors.New("command registry is required")
	}
	definitions := []command.Definition{
		{Type: CommandTypeCreate, ValidatePayload: command.Validator(validateCreate)},
		{Type: CommandTypeAddDefendant, ValidatePayload: command.Validator(validateAddDefendant)},
		{Type: CommandTypeUpdateDefendant, ValidatePayload: command.Validator(validateUpdateDefendant)},
		{Type: CommandTypeCompleteSendingSheet, ValidatePayload: command.Validator[CompleteSendingSheetPayload](nil)},
		{Type: CommandTypeUpdateOffencesForDefendant, ValidatePayload: command.Validator(validateUpdateOffences)},
		{Type: CommandTypeAddSentenceHearingDate, ValidatePayload: command.Validator[SentenceHearingDatePayload](nil)},
		{Type: CommandTypeAddConvictionDate, ValidatePayload: command.Validator(validateConvictionDate)},
		{Type: CommandTypeRemoveConvictionDate, ValidatePayload: command.Validator(validateConvictionDate)},
		{Type: CommandTypeRequestPsr, ValidatePayload: command.Validator[RequestPsrPayload](nil)},
		{Type: CommandTypeSendingHearingCommittal, ValidatePayload: command.Validator[SendingCommittalPayload](nil)},
		{Type: CommandTypeAddCaseToCrownCourt, ValidatePayload: command.Validator(validateCrownCourt)},
		{Type: CommandTypeCreateCourtApplication, ValidatePayload: command.Validator(validateCreateCourtApplication)},
		{Type: CommandTypeAddDefendantsToCourtProceedings, ValidatePayload: command.Validator[CourtProceedingsPayload](nil)},
	}
	for _, def := range definitions {
		def.Aggregate = AggregateType
		if err := registry.Register(def); err != nil {
			return err
		}
	}
	return nil
}

// RegisterEvents registers prosecution case events with the shared registry.
func RegisterEvents(registry *event.Registry) error {
	if registry == nil {
		return errors.New("event registry is required")
	}
	definitions := []event.Definition{
		{Type: EventTypeCreated, ValidatePayload: decodes[CreatePayload]},
		{Type: EventTypeAlreadyExists, Intent: event.IntentRejection, ValidatePayload: decodes[CaseRejectedPayload]},
		{Type: EventTypeDefendantAdded, ValidatePayload: decodes[AddDefendantPayload]},
		{Type: EventTypeDefendantAdditionFailed, Intent: event.IntentRejection, ValidatePayload: decodes[DefendantRejectedPayload]},
		{Type: EventTypeDefendantUpdated, ValidatePayload: decodes[DefendantUpdatedPayload]},
		{Type: EventTypeDefendantUpdateFailed, Intent: event.IntentRejection, ValidatePayload: decodes[DefendantRejectedPayload]},
		{Type: EventTypeBailDocumentAdded, ValidatePayload: decodes[BailDocumentPayload]},
		{Type: EventTypeBailDocumentCreated, ValidatePayload: decodes[BailDocumentPayload]},
		{Type: EventTypeSendingSheetCompleted, ValidatePayload: decodes[CompleteSendingSheetPayload]},
		{Type: EventTypeSendingSheetPreviouslyCompleted, Intent: event.IntentRejection, ValidatePayload: decodes[CaseRejectedPayload]},
		{Type: EventTypeSendingSheetInvalidated, Intent: event.IntentRejection, ValidatePayload: decodes[SendingSheetInvalidatedPayload]},
		{Type: EventTypeOffencesForDefendantUpdated, ValidatePayload: decodes[UpdateOffencesPayload]},
		{Type: EventTypeSentenceHearingDateAdded, ValidatePayload: decodes[SentenceHearingDatePayload]},
		{Type: EventTypeConvictionDateAdded, ValidatePayload: decodes[ConvictionDatePayload]},
		{Type: EventTypeConvictionDateRemoved, ValidatePayload: decodes[ConvictionDatePayload]},
		{Type: EventTypePreSentenceReportRequested, ValidatePayload: decodes[RequestPsrPayload]},
		{Type: EventTypeSendingCommittalAdded, ValidatePayload: decodes[SendingCommittalPayload]},
		{Type: EventTypeCaseAddedToCrownCourt, ValidatePayload: decodes[CrownCourtPayload]},
		{Type: EventTypeCaseAlreadyExistsInCrownCourt, Intent: event.IntentRejection, ValidatePayload: decodes[CrownCourtPayload]},
		{Type: EventTypeCourtApplicationCreated, ValidatePayload: decodes[CourtApplicationCreatedPayload]},
		{Type: EventTypeCourtApplicationRejected, Intent: event.IntentRejection, ValidatePayload: decodes[CourtApplicationRejectedPayload]},
		{Type: EventTypeDefendantsAddedToCourtProceedings, ValidatePayload: decodes[CourtProceedingsPayload]},
		{Type: EventTypeDefendantsNotAddedToCourtProceedings, Intent: event.IntentRejection, ValidatePayload: decodes[DefendantsNotAddedPayload]},
	}
	for _, def := range definitions {
		def.Aggregate = AggregateType
		if err := registry.Register(def); err != nil {
			return err
		}
	}
	return nil
}

func decodes[P any](raw json.RawMessage) error {
	var payload P
	return json.Unmarshal(raw, &payload)
}

func validateCreate(p CreatePayload) error {
	for _, defendant := range p.Defendants {
		if err := command.Required("defendants.id", defendant.ID); err != nil {
			return err
		}
	}
	return nil
}

func validateAddDefendant(p AddDefendantPayload) error {
	return command.Required("defendant.id", p.Defendant.ID)
}

func validateUpdateDefendant(p UpdateDefendantPayload) error {
	return command.Required("defendant_id", p.DefendantID)
}

func validateUpdateOffences(p UpdateOffencesPayload) error {
	return command.Required("defendant_id", p.DefendantID)
}

func validateConvictionDate(p ConvictionDatePayload) error {
	if err := command.Required("defendant_id", p.DefendantID); err != nil {
		return err
	}
	return command.Required("offence_id", p.OffenceID)
}

func validateCrownCourt(p CrownCourtPayload) error {
	return command.Required("court_centre_id", p.CourtCentreID)
}

func validateCreateCourtApplication(p CreateCourtApplicationPayload) error {
	return command.Required("application.id", p.Application.ID)
}
