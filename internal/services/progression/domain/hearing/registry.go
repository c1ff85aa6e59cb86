package hearing

import (
	"encoding/json"
	"errors"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

// RegisterCommands registers hearing commands with the shared registry.
func RegisterCommands(registry *command.Registry) error {
	if registry == nil {
		return errors.New("command registry is required")
	}
	definitions := []command.Definition{
		{Type: CommandTypeInitiate, ValidatePayload: command.Validator[InitiatePayload](nil)},
		{Type: CommandTypeChangeListingStatus, ValidatePayload: command.Validator(func(p ListingStatusPayload) error {
			return command.Required("listing_status", p.ListingStatus)
		})},
		{Type: CommandTypeResult, ValidatePayload: command.Validator(validateResult)},
		{Type: CommandTypeAddApplication, ValidatePayload: command.Validator(func(p ApplicationPayload) error {
			return command.Required("application_id", p.ApplicationID)
		})},
		{Type: CommandTypeDelete, ValidatePayload: command.Validator[DeletePayload](nil)},
	}
	for _, def := range definitions {
		def.Aggregate = AggregateType
		if err := registry.Register(def); err != nil {
			return err
		}
	}
	return nil
}

// RegisterEvents registers hearing events with the shared registry.
func RegisterEvents(registry *event.Registry) error {
	if registry == nil {
		return errors.New("event registry is required")
	}
	definitions := []event.Definition{
		{Type: EventTypeInitiated, ValidatePayload: decodes[InitiatePayload]},
		{Type: EventTypeAlreadyInitiated, Intent: event.IntentRejection, ValidatePayload: decodes[RejectedPayload]},
		{Type: EventTypeListingStatusChanged, ValidatePayload: decodes[ListingStatusPayload]},
		{Type: EventTypeResulted, ValidatePayload: decodes[ResultPayload]},
		{Type: EventTypeResultRejected, Intent: event.IntentRejection, ValidatePayload: decodes[RejectedPayload]},
		{Type: EventTypeApplicationAdded, ValidatePayload: decodes[ApplicationPayload]},
		{Type: EventTypeDeleted, ValidatePayload: decodes[DeletePayload]},
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

func validateResult(p ResultPayload) error {
	if len(p.Results) == 0 {
		return errors.New("at least one result is required")
	}
	for _, result := range p.Results {
		if err := command.Required("results.defendant_id", result.DefendantID); err != nil {
			return err
		}
		if err := command.Required("results.code", result.Code); err != nil {
			return err
		}
	}
	return nil
}
