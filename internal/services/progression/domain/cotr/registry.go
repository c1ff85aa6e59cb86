package cotr

import (
	"encoding/json"
	"errors"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

// RegisterCommands registers cotr commands with the shared registry.
func RegisterCommands(registry *command.Registry) error {
	if registry == nil {
		return errors.New("command registry is required")
	}
	definitions := []command.Definition{
		{Type: CommandTypeCreate, ValidatePayload: command.Validator(validateCreate)},
		{Type: CommandTypeServeProsecution, ValidatePayload: command.Validator[ServeProsecutionPayload](nil)},
		{Type: CommandTypeServeDefendant, ValidatePayload: command.Validator(validateServeDefendant)},
		{Type: CommandTypeFurtherInfoProsecution, ValidatePayload: command.Validator(validateFurtherInfo)},
		{Type: CommandTypeFurtherInfoDefence, ValidatePayload: command.Validator(validateFurtherInfoDefence)},
		{Type: CommandTypeChangeDefendants, ValidatePayload: command.Validator[ChangeDefendantsPayload](nil)},
		{Type: CommandTypeArchive, ValidatePayload: command.Validator[ArchivePayload](nil)},
		{Type: CommandTypeUpdateReviewNotes, ValidatePayload: command.Validator[ReviewNotesPayload](nil)},
	}
	for _, def := range definitions {
		def.Aggregate = AggregateType
		if err := registry.Register(def); err != nil {
			return err
		}
	}
	return nil
}

// RegisterEvents registers cotr events with the shared registry.
func RegisterEvents(registry *event.Registry) error {
	if registry == nil {
		return errors.New("event registry is required")
	}
	definitions := []event.Definition{
		{Type: EventTypeCreated, ValidatePayload: decodes[CreatePayload]},
		{Type: EventTypeAlreadyExists, Intent: event.IntentRejection, ValidatePayload: decodes[RejectedPayload]},
		{Type: EventTypeTaskRequested, ValidatePayload: decodes[TaskPayload]},
		{Type: EventTypeProsecutionServed, ValidatePayload: decodes[ServeProsecutionPayload]},
		{Type: EventTypeDefendantServed, ValidatePayload: decodes[ServeDefendantPayload]},
		{Type: EventTypeProsecutionFurtherInfoAdded, ValidatePayload: decodes[FurtherInfoPayload]},
		{Type: EventTypeDefenceContentUpdated, ValidatePayload: decodes[ContentUpdatedPayload]},
		{Type: EventTypeDefendantAdded, ValidatePayload: decodes[DefendantAddedPayload]},
		{Type: EventTypeDefendantRemoved, ValidatePayload: decodes[DefendantRemovedPayload]},
		{Type: EventTypeArchived, ValidatePayload: decodes[ArchivePayload]},
		{Type: EventTypeReviewNotesUpdated, ValidatePayload: decodes[ReviewNotesPayload]},
		{Type: EventTypeReviewNotesRejected, Intent: event.IntentRejection, ValidatePayload: decodes[RejectedPayload]},
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
	if err := command.Required("hearing_id", p.HearingID); err != nil {
		return err
	}
	return command.Required("jurisdiction_type", p.JurisdictionType)
}

func validateServeDefendant(p ServeDefendantPayload) error {
	return command.Required("defendant_id", p.DefendantID)
}

func validateFurtherInfo(p FurtherInfoPayload) error {
	return command.Required("message", p.Message)
}

func validateFurtherInfoDefence(p FurtherInfoPayload) error {
	if err := command.Required("defendant_id", p.DefendantID); err != nil {
		return err
	}
	return validateFurtherInfo(p)
}
