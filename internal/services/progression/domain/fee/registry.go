package fee

import (
	"encoding/json"
	"errors"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

// RegisterCommands registers fee commands with the shared registry.
func RegisterCommands(registry *command.Registry) error {
	if registry == nil {
		return errors.New("command registry is required")
	}
	if err := registry.Register(command.Definition{
		Type:      CommandTypeRecord,
		Aggregate: AggregateType,
		ValidatePayload: command.Validator(func(p RecordPayload) error {
			if err := command.Required("fee_id", p.FeeID); err != nil {
				return err
			}
			return command.Required("status", p.Status)
		}),
	}); err != nil {
		return err
	}
	return registry.Register(command.Definition{
		Type:      CommandTypeUpdateStatus,
		Aggregate: AggregateType,
		ValidatePayload: command.Validator(func(p StatusPayload) error {
			if err := command.Required("fee_id", p.FeeID); err != nil {
				return err
			}
			return command.Required("status", p.Status)
		}),
	})
}

// RegisterEvents registers fee events with the shared registry.
func RegisterEvents(registry *event.Registry) error {
	if registry == nil {
		return errors.New("event registry is required")
	}
	definitions := []event.Definition{
		{Type: EventTypeRecorded, ValidatePayload: validateRecordPayload},
		{Type: EventTypeAlreadyRecorded, Intent: event.IntentRejection, ValidatePayload: validateRejectedPayload},
		{Type: EventTypeStatusUpdated, ValidatePayload: validateStatusPayload},
		{Type: EventTypeUpdateRejected, Intent: event.IntentRejection, ValidatePayload: validateRejectedPayload},
	}
	for _, def := range definitions {
		def.Aggregate = AggregateType
		if err := registry.Register(def); err != nil {
			return err
		}
	}
	return nil
}

func validateRecordPayload(raw json.RawMessage) error {
	var payload RecordPayload
	return json.Unmarshal(raw, &payload)
}

func validateStatusPayload(raw json.RawMessage) error {
	var payload StatusPayload
	return json.Unmarshal(raw, &payload)
}

func validateRejectedPayload(raw json.RawMessage) error {
	var payload RejectedPayload
	return json.Unmarshal(raw, &payload)
}
