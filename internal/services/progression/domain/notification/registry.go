package notification

import (
	"encoding/json"
	"errors"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

// RegisterCommands registers notification commands with the shared registry.
func RegisterCommands(registry *command.Registry) error {
	if registry == nil {
		return errors.New("command registry is required")
	}
	definitions := []command.Definition{
		{Type: CommandTypeRequest, ValidatePayload: command.Validator(func(p RequestPayload) error {
			return command.Required("recipient", p.Recipient)
		})},
		{Type: CommandTypeMarkSent, ValidatePayload: command.Validator[OutcomePayload](nil)},
		{Type: CommandTypeMarkFailed, ValidatePayload: command.Validator[OutcomePayload](nil)},
	}
	for _, def := range definitions {
		def.Aggregate = AggregateType
		if err := registry.Register(def); err != nil {
			return err
		}
	}
	return nil
}

// RegisterEvents registers notification events with the shared registry.
func RegisterEvents(registry *event.Registry) error {
	if registry == nil {
		return errors.New("event registry is required")
	}
	for _, def := range []event.Definition{
		{Type: EventTypeRequested, ValidatePayload: validateRequestPayload},
		{Type: EventTypeSent, ValidatePayload: validateOutcomePayload},
		{Type: EventTypeFailed, ValidatePayload: validateOutcomePayload},
	} {
		def.Aggregate = AggregateType
		if err := registry.Register(def); err != nil {
			return err
		}
	}
	return nil
}

func validateRequestPayload(raw json.RawMessage) error {
	var payload RequestPayload
	return json.Unmarshal(raw, &payload)
}

func validateOutcomePayload(raw json.RawMessage) error {
	var payload OutcomePayload
	return json.Unmarshal(raw, &payload)
}
