package groupcase

import (
	"encoding/json"
	"errors"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

// RegisterCommands registers group case commands with the shared registry.
func RegisterCommands(registry *command.Registry) error {
	if registry == nil {
		return errors.New("command registry is required")
	}
	if err := registry.Register(command.Definition{
		Type:            CommandTypeInitiate,
		Aggregate:       AggregateType,
		ValidatePayload: command.Validator(validateInitiate),
	}); err != nil {
		return err
	}
	return registry.Register(command.Definition{
		Type:      CommandTypeRemoveCase,
		Aggregate: AggregateType,
		ValidatePayload: command.Validator(func(p RemoveCasePayload) error {
			return command.Required("case_id", p.CaseID)
		}),
	})
}

// RegisterEvents registers group case events with the shared registry.
func RegisterEvents(registry *event.Registry) error {
	if registry == nil {
		return errors.New("event registry is required")
	}
	definitions := []event.Definition{
		{Type: EventTypeInitiated, ValidatePayload: validateInitiatedPayload},
		{Type: EventTypeAlreadyInitiated, Intent: event.IntentRejection, ValidatePayload: validateRejectedPayload},
		{Type: EventTypeCaseRemoved, ValidatePayload: validateCaseRemovedPayload},
		{Type: EventTypeLastCaseRemovalRejected, Intent: event.IntentRejection, ValidatePayload: validateRejectedPayload},
	}
	for _, def := range definitions {
		def.Aggregate = AggregateType
		if err := registry.Register(def); err != nil {
			return err
		}
	}
	return nil
}

func validateInitiate(p InitiatePayload) error {
	if len(p.Cases) == 0 {
		return errors.New("at least one case is required")
	}
	masters := 0
	for _, member := range p.Cases {
		if err := command.Required("cases.case_id", member.CaseID); err != nil {
			return err
		}
		if member.GroupMaster {
			masters++
		}
	}
	if masters > 1 {
		return errors.New("at most one group master is allowed")
	}
	return nil
}

func validateInitiatedPayload(raw json.RawMessage) error {
	var payload InitiatePayload
	return json.Unmarshal(raw, &payload)
}

func validateCaseRemovedPayload(raw json.RawMessage) error {
	var payload CaseRemovedPayload
	return json.Unmarshal(raw, &payload)
}

func validateRejectedPayload(raw json.RawMessage) error {
	var payload RejectedPayload
	return json.Unmarshal(raw, &payload)
}
