package application

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

// ErrStatusUnknown indicates a status label outside the application lifecycle.
var ErrStatusUnknown = errors.New("application status is not recognized")

// RegisterCommands registers application commands with the shared registry.
func RegisterCommands(registry *command.Registry) error {
	if registry == nil {
		return errors.New("command registry is required")
	}
	definitions := []command.Definition{
		{Type: CommandTypeInitiate, ValidatePayload: command.Validator[InitiatePayload](nil)},
		{Type: CommandTypeReferToCourt, ValidatePayload: command.Validator(validateReferToCourt)},
		{Type: CommandTypeReferBoxWork, ValidatePayload: command.Validator(validateReferBoxWork)},
		{Type: CommandTypeUpdateCourtApplication, ValidatePayload: command.Validator[CourtApplicationUpdatedPayload](nil)},
		{Type: CommandTypeEject, ValidatePayload: command.Validator[EjectPayload](nil)},
		{Type: CommandTypeUpdateStatus, ValidatePayload: command.Validator(validateStatus)},
		{Type: CommandTypeLinkHearing, ValidatePayload: command.Validator(validateLinkHearing)},
	}
	for _, def := range definitions {
		def.Aggregate = AggregateType
		if err := registry.Register(def); err != nil {
			return err
		}
	}
	return nil
}

// RegisterEvents registers application events with the shared registry.
func RegisterEvents(registry *event.Registry) error {
	if registry == nil {
		return errors.New("event registry is required")
	}
	definitions := []event.Definition{
		{Type: EventTypeInitiated, ValidatePayload: decodes[InitiatePayload]},
		{Type: EventTypeAlreadyExists, Intent: event.IntentRejection, ValidatePayload: decodes[RejectedPayload]},
		{Type: EventTypeReferredToCourt, ValidatePayload: decodes[ReferToCourtPayload]},
		{Type: EventTypeBoxWorkReferred, ValidatePayload: decodes[BoxWorkReferredPayload]},
		{Type: EventTypeCourtApplicationUpdated, ValidatePayload: decodes[CourtApplicationUpdatedPayload]},
		{Type: EventTypeEjected, ValidatePayload: decodes[EjectPayload]},
		{Type: EventTypeStatusChanged, ValidatePayload: command.Validator(validateStatus)},
		{Type: EventTypeHearingLinked, ValidatePayload: decodes[LinkHearingPayload]},
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

func validateReferToCourt(p ReferToCourtPayload) error {
	return command.Required("hearing_id", p.HearingID)
}

func validateReferBoxWork(p ReferBoxWorkPayload) error {
	return command.Required("box_hearing_id", p.BoxHearingID)
}

func validateLinkHearing(p LinkHearingPayload) error {
	return command.Required("hearing_id", p.HearingID)
}

func validateStatus(p StatusPayload) error {
	if _, ok := ParseStatus(p.Status); !ok {
		return fmt.Errorf("%w: %q", ErrStatusUnknown, p.Status)
	}
	return nil
}
