package material

import (
	"encoding/json"
	"errors"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

// RegisterCommands registers material commands with the shared registry.
func RegisterCommands(registry *command.Registry) error {
	if registry == nil {
		return errors.New("command registry is required")
	}
	definitions := []command.Definition{
		{Type: CommandTypeRequest, ValidatePayload: command.Validator[RequestPayload](nil)},
		{Type: CommandTypeRecordUpload, ValidatePayload: command.Validator(func(p UploadPayload) error {
			return command.Required("file_id", p.FileID)
		})},
		{Type: CommandTypeUpdateStatus, ValidatePayload: command.Validator(func(p StatusPayload) error {
			return command.Required("status", p.Status)
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

// RegisterEvents registers material events with the shared registry.
func RegisterEvents(registry *event.Registry) error {
	if registry == nil {
		return errors.New("event registry is required")
	}
	definitions := []event.Definition{
		{Type: EventTypeRequested, ValidatePayload: decodes[RequestPayload]},
		{Type: EventTypeUploaded, ValidatePayload: decodes[UploadPayload]},
		{Type: EventTypeUploadRejected, Intent: event.IntentRejection, ValidatePayload: decodes[RejectedPayload]},
		{Type: EventTypeStatusUpdated, ValidatePayload: decodes[StatusPayload]},
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
