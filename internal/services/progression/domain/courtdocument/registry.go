package courtdocument

import (
	"errors"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

// RegisterCommands registers court document commands with the shared registry.
func RegisterCommands(registry *command.Registry) error {
	if registry == nil {
		return errors.New("command registry is required")
	}
	definitions := []command.Definition{
		{Type: CommandTypeCreate, ValidatePayload: command.Validator(func(p CreatePayload) error {
			return command.Required("document.name", p.Document.Name)
		})},
		{Type: CommandTypeUpdate, ValidatePayload: command.Validator(func(p UpdatePayload) error {
			return command.Required("document.name", p.Document.Name)
		})},
		{Type: CommandTypeRemove, ValidatePayload: command.Validator[RemovePayload](nil)},
		{Type: CommandTypeShareWithHearing, ValidatePayload: command.Validator(func(p SharePayload) error {
			return command.Required("hearing_id", p.HearingID)
		})},
	}
	for _, def := range definitions {
		def.Aggregate = AggregateType
		if err := registry.Register(def); err != nil {
			return err
		}
	}
	return nil
}

// RegisterEvents registers court document events with the shared registry.
func RegisterEvents(registry *event.Registry) error {
	if registry == nil {
		return errors.New("event registry is required")
	}
	definitions := []event.Definition{
		{Type: EventTypeCreated, ValidatePayload: command.Validator[CreatePayload](nil)},
		{Type: EventTypeAlreadyExists, Intent: event.IntentRejection, ValidatePayload: command.Validator[RejectedPayload](nil)},
		{Type: EventTypeUpdated, ValidatePayload: command.Validator[UpdatePayload](nil)},
		{Type: EventTypeUpdateRejected, Intent: event.IntentRejection, ValidatePayload: command.Validator[RejectedPayload](nil)},
		{Type: EventTypeRemoved, ValidatePayload: command.Validator[RemovePayload](nil)},
		{Type: EventTypeSharedWithHearing, ValidatePayload: command.Validator[SharePayload](nil)},
		{Type: EventTypeShareRejected, Intent: event.IntentRejection, ValidatePayload: command.Validator[RejectedPayload](nil)},
	}
	for _, def := range definitions {
		def.Aggregate = AggregateType
		if err := registry.Register(def); err != nil {
			return err
		}
	}
	return nil
}
