package defence

import (
	"encoding/json"
	"errors"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

// RegisterCommands registers defence association commands with the shared registry.
func RegisterCommands(registry *command.Registry) error {
	if registry == nil {
		return errors.New("command registry is required")
	}
	if err := registry.Register(command.Definition{
		Type:      CommandTypeAssociate,
		Aggregate: AggregateType,
		ValidatePayload: command.Validator(func(p AssociatePayload) error {
			return command.Required("organisation_id", p.OrganisationID)
		}),
	}); err != nil {
		return err
	}
	return registry.Register(command.Definition{
		Type:      CommandTypeDisassociate,
		Aggregate: AggregateType,
		ValidatePayload: command.Validator(func(p DisassociatePayload) error {
			return command.Required("organisation_id", p.OrganisationID)
		}),
	})
}

// RegisterEvents registers defence association events with the shared registry.
func RegisterEvents(registry *event.Registry) error {
	if registry == nil {
		return errors.New("event registry is required")
	}
	definitions := []event.Definition{
		{Type: EventTypeAssociated, ValidatePayload: decodes[AssociatePayload]},
		{Type: EventTypeAssociationRejected, Intent: event.IntentRejection, ValidatePayload: decodes[RejectedPayload]},
		{Type: EventTypeDisassociated, ValidatePayload: decodes[DisassociatePayload]},
		{Type: EventTypeDisassociationRejected, Intent: event.IntentRejection, ValidatePayload: decodes[RejectedPayload]},
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
