package prosecutioncase

import (
	"fmt"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/aggregate"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

// AggregateType names the prosecution case aggregate in envelopes and the store.
const AggregateType = "prosecution_case"

const scopeField = "case_id"

// Command and event types of the prosecution case aggregate.
const (
	CommandTypeCreate                             command.Type = "prosecution_case.create"
	CommandTypeAddDefendant                       command.Type = "prosecution_case.add_defendant"
	CommandTypeUpdateDefendant                    command.Type = "prosecution_case.update_defendant"
	CommandTypeCompleteSendingSheet               command.Type = "prosecution_case.complete_sending_sheet"
	CommandTypeUpdateOffencesForDefendant         command.Type = "prosecution_case.update_offences_for_defendant"
	CommandTypeAddSentenceHearingDate             command.Type = "prosecution_case.add_sentence_hearing_date"
	CommandTypeAddConvictionDate                  command.Type = "prosecution_case.add_conviction_date"
	CommandTypeRemoveConvictionDate               command.Type = "prosecution_case.remove_conviction_date"
	CommandTypeRequestPsr                         command.Type = "prosecution_case.request_psr"
	CommandTypeSendingHearingCommittal            command.Type = "prosecution_case.add_sending_committal_hearing"
	CommandTypeAddCaseToCrownCourt                command.Type = "prosecution_case.add_to_crown_court"
	CommandTypeCreateCourtApplication             command.Type = "prosecution_case.create_court_application"
	CommandTypeAddDefendantsToCourtProceedings    command.Type = "prosecution_case.add_defendants_to_court_proceedings"
	EventTypeCreated                              event.Type   = "prosecution_case.created"
	EventTypeAlreadyExists                        event.Type   = "prosecution_case.already_exists"
	EventTypeDefendantAdded                       event.Type   = "prosecution_case.defendant_added"
	EventTypeDefendantAdditionFailed              event.Type   = "prosecution_case.defendant_addition_failed"
	EventTypeDefendantUpdated                     event.Type   = "prosecution_case.defendant_updated"
	EventTypeDefendantUpdateFailed                event.Type   = "prosecution_case.defendant_update_failed"
	EventTypeBailDocumentAdded                    event.Type   = "prosecution_case.bail_document_added"
	EventTypeBailDocumentCreated                  event.Type   = "prosecution_case.bail_document_created"
	EventTypeSendingSheetCompleted                event.Type   = "prosecution_case.sending_sheet_completed"
	EventTypeSendingSheetPreviouslyCompleted      event.Type   = "prosecution_case.sending_sheet_previously_completed"
	EventTypeSendingSheetInvalidated              event.Type   = "prosecution_case.sending_sheet_invalidated"
	EventTypeOffencesForDefendantUpdated          event.Type   = "prosecution_case.offences_for_defendant_updated"
	EventTypeSentenceHearingDateAdded             event.Type   = "prosecution_case.sentence_hearing_date_added"
	EventTypeConvictionDateAdded                  event.Type   = "prosecution_case.conviction_date_added"
	EventTypeConvictionDateRemoved                event.Type   = "prosecution_case.conviction_date_removed"
	EventTypePreSentenceReportRequested           event.Type   = "prosecution_case.pre_sentence_report_requested"
	EventTypeSendingCommittalAdded                event.Type   = "prosecution_case.sending_committal_hearing_added"
	EventTypeCaseAddedToCrownCourt                event.Type   = "prosecution_case.added_to_crown_court"
	EventTypeCaseAlreadyExistsInCrownCourt        event.Type   = "prosecution_case.already_exists_in_crown_court"
	EventTypeCourtApplicationCreated              event.Type   = "prosecution_case.court_application_created"
	EventTypeCourtApplicationRejected             event.Type   = "prosecution_case.court_application_rejected"
	EventTypeDefendantsAddedToCourtProceedings    event.Type   = "prosecution_case.defendants_added_to_court_proceedings"
	EventTypeDefendantsNotAddedToCourtProceedings event.Type   = "prosecution_case.defendants_not_added_to_court_proceedings"
)

// Binding exposes the case aggregate to the dispatch engine.
func Binding() aggregate.Binding {
	return aggregate.Typed[*Case]{NewFn: New, DecideFn: Decide, ScopeField: scopeField}
}

// Decide routes a validated command to exactly one case command method.
func Decide(c *Case, cmd command.Command) (command.Decision, error) {
	cmd, err := command.Scope(cmd, scopeField)
	if err != nil {
		return command.Decision{}, err
	}
	switch cmd.Type {
	case CommandTypeCreate:
		return command.Dispatch(cmd, c.Create)
	case CommandTypeAddDefendant:
		return command.Dispatch(cmd, c.AddDefendant)
	case CommandTypeUpdateDefendant:
		return command.Dispatch(cmd, c.UpdateDefendant)
	case CommandTypeCompleteSendingSheet:
		return command.Dispatch(cmd, c.CompleteSendingSheet)
	case CommandTypeUpdateOffencesForDefendant:
		return command.Dispatch(cmd, c.UpdateOffencesForDefendant)
	case CommandTypeAddSentenceHearingDate:
		return command.Dispatch(cmd, c.AddSentenceHearingDate)
	case CommandTypeAddConvictionDate:
		return command.Dispatch(cmd, c.AddConvictionDateToOffence)
	case CommandTypeRemoveConvictionDate:
		return command.Dispatch(cmd, c.RemoveConvictionDateFromOffence)
	case CommandTypeRequestPsr:
		return command.Dispatch(cmd, c.RequestPsrForDefendant)
	case CommandTypeSendingHearingCommittal:
		return command.Dispatch(cmd, c.SendingHearingCommittal)
	case CommandTypeAddCaseToCrownCourt:
		return command.Dispatch(cmd, c.AddCaseToCrownCourt)
	case CommandTypeCreateCourtApplication:
		return command.Dispatch(cmd, c.CreateCourtApplication)
	case CommandTypeAddDefendantsToCourtProceedings:
		return command.Dispatch(cmd, c.DefendantsAddedToCourtProceedings)
	default:
		return command.Decision{}, fmt.Errorf("%w: %s", command.ErrTypeUnknown, cmd.Type)
	}
}
