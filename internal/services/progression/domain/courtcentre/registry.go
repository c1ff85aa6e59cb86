package courtcentre

import (
	"encoding/json"
	"errors"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

// RegisterCommands registers court centre commands with the shared registry.
func RegisterCommands(registry *command.Registry) error {
	if registry == nil {
		return errors.New("command registry is required")
	}
	definitions := []command.Definition{
		{Type: CommandTypeRecordPrisonCourtRegister, ValidatePayload: command.Validator(func(p PrisonCourtRegisterPayload) error {
			return command.Required("register_id", p.RegisterID)
		})},
		{Type: CommandTypeGeneratePrisonCourtRegister, ValidatePayload: command.Validator(func(p RegisterGeneratedPayload) error {
			if err := command.Required("register_id", p.RegisterID); err != nil {
				return err
			}
			return command.Required("file_id", p.FileID)
		})},
		{Type: CommandTypeRecordCourtRegister, ValidatePayload: command.Validator(func(p CourtRegisterPayload) error {
			return command.Required("register_id", p.RegisterID)
		})},
		{Type: CommandTypeNotifyCourtRegister, ValidatePayload: command.Validator(func(p NotifyPayload) error {
			return command.Required("register_id", p.RegisterID)
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

// RegisterEvents registers court centre events with the shared registry.
func RegisterEvents(registry *event.Registry) error {
	if registry == nil {
		return errors.New("event registry is required")
	}
	definitions := []event.Definition{
		{Type: EventTypePrisonCourtRegisterRecorded, ValidatePayload: decodes[PrisonCourtRegisterPayload]},
		{Type: EventTypePrisonCourtRegisterGenerated, ValidatePayload: decodes[RegisterGeneratedPayload]},
		{Type: EventTypeCourtRegisterRecorded, ValidatePayload: decodes[CourtRegisterPayload]},
		{Type: EventTypeCourtRegisterNotified, ValidatePayload: decodes[NotifyPayload]},
		{Type: EventTypeRegisterNotFound, Intent: event.IntentRejection, ValidatePayload: decodes[RegisterRejectedPayload]},
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
