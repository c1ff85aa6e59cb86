// Package nows tracks a notice of the court's order (NOW) and the status of the
// material generated for it.
package nows

import (
	"errors"
	"fmt"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/aggregate"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

// AggregateType names the NOWs aggregate in envelopes and the store.
const AggregateType = "nows"

const scopeField = "nows_id"

// Command and event types of the NOWs aggregate.
const (
	CommandTypeRequest              command.Type = "nows.request"
	CommandTypeUpdateMaterialStatus command.Type = "nows.update_material_status"

	EventTypeRequested             event.Type = "nows.requested"
	EventTypeMaterialStatusUpdated event.Type = "nows.material_status_updated"
)

// RequestPayload captures the payload for nows.request commands and
// nows.requested events.
type RequestPayload struct {
	NowsID      string `json:"nows_id"`
	HearingID   string `json:"hearing_id"`
	DefendantID string `json:"defendant_id,omitempty"`
	NowsType    string `json:"nows_type,omitempty"`
	MaterialID  string `json:"material_id,omitempty"`
}

// MaterialStatusPayload captures the payload for nows.update_material_status
// commands and events.
type MaterialStatusPayload struct {
	NowsID     string `json:"nows_id"`
	MaterialID string `json:"material_id"`
	Status     string `json:"status"`
}

// Nows captures replayed NOW state.
type Nows struct {
	id               string
	requested        bool
	materialStatuses map[string]string
}

// New returns an empty NOW aggregate for id.
func New(id string) *Nows {
	return &Nows{id: id, materialStatuses: make(map[string]string)}
}

// MaterialStatus returns the latest status of materialID.
func (n *Nows) MaterialStatus(materialID string) string {
	return n.materialStatuses[materialID]
}

// Apply folds an event into NOW state.
func (n *Nows) Apply(evt event.Event) {
	switch evt.Type {
	case EventTypeRequested:
		n.requested = true
	case EventTypeMaterialStatusUpdated:
		var payload MaterialStatusPayload
		_ = evt.Decode(&payload)
		n.materialStatuses[payload.MaterialID] = payload.Status
	default:
	}
}

// Request records the NOW request.
func (n *Nows) Request(in RequestPayload) []event.Event {
	rec := aggregate.NewRecorder(n)
	rec.Emit(EventTypeRequested, in)
	return rec.Events()
}

// UpdateMaterialStatus records a material status change; an unchanged status emits nothing.
func (n *Nows) UpdateMaterialStatus(in MaterialStatusPayload) []event.Event {
	if current, ok := n.materialStatuses[in.MaterialID]; ok && current == in.Status {
		return nil
	}
	rec := aggregate.NewRecorder(n)
	rec.Emit(EventTypeMaterialStatusUpdated, in)
	return rec.Events()
}

// Binding exposes the NOW aggregate to the dispatch engine.
func Binding() aggregate.Binding {
	return aggregate.Typed[*Nows]{NewFn: New, DecideFn: Decide, ScopeField: scopeField}
}

// Decide routes a validated command to a NOW command method.
func Decide(n *Nows, cmd command.Command) (command.Decision, error) {
	cmd, err := command.Scope(cmd, scopeField)
	if err != nil {
		return command.Decision{}, err
	}
	switch cmd.Type {
	case CommandTypeRequest:
		return command.Dispatch(cmd, n.Request)
	case CommandTypeUpdateMaterialStatus:
		return command.Dispatch(cmd, n.UpdateMaterialStatus)
	default:
		return command.Decision{}, fmt.Errorf("%w: %s", command.ErrTypeUnknown, cmd.Type)
	}
}

// RegisterCommands registers NOW commands with the shared registry.
func RegisterCommands(registry *command.Registry) error {
	if registry == nil {
		return errors.New("command registry is required")
	}
	if err := registry.Register(command.Definition{
		Type:      CommandTypeRequest,
		Aggregate: AggregateType,
		ValidatePayload: command.Validator(func(p RequestPayload) error {
			return command.Required("hearing_id", p.HearingID)
		}),
	}); err != nil {
		return err
	}
	return registry.Register(command.Definition{
		Type:      CommandTypeUpdateMaterialStatus,
		Aggregate: AggregateType,
		ValidatePayload: command.Validator(func(p MaterialStatusPayload) error {
			if err := command.Required("material_id", p.MaterialID); err != nil {
				return err
			}
			return command.Required("status", p.Status)
		}),
	})
}

// RegisterEvents registers NOW events with the shared registry.
func RegisterEvents(registry *event.Registry) error {
	if registry == nil {
		return errors.New("event registry is required")
	}
	if err := registry.Register(event.Definition{
		Type:            EventTypeRequested,
		Aggregate:       AggregateType,
		ValidatePayload: command.Validator[RequestPayload](nil),
	}); err != nil {
		return err
	}
	return registry.Register(event.Definition{
		Type:            EventTypeMaterialStatusUpdated,
		Aggregate:       AggregateType,
		ValidatePayload: command.Validator[MaterialStatusPayload](nil),
	})
}
