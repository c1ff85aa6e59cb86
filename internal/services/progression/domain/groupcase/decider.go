package groupcase

import (
	"fmt"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/aggregate"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

// AggregateType names the group case aggregate in envelopes and the store.
const AggregateType = "group_case"

const scopeField = "group_id"

// Command and event types of the group case aggregate.
const (
	CommandTypeInitiate   command.Type = "group_case.initiate"
	CommandTypeRemoveCase command.Type = "group_case.remove_case"

	EventTypeInitiated               event.Type = "group_case.initiated"
	EventTypeAlreadyInitiated        event.Type = "group_case.already_initiated"
	EventTypeCaseRemoved             event.Type = "group_case.case_removed"
	EventTypeLastCaseRemovalRejected event.Type = "group_case.last_case_removal_rejected"
)

// Binding exposes the group aggregate to the dispatch engine.
func Binding() aggregate.Binding {
	return aggregate.Typed[*Group]{NewFn: New, DecideFn: Decide, ScopeField: scopeField}
}

// Decide routes a validated command to a group command method.
func Decide(g *Group, cmd command.Command) (command.Decision, error) {
	cmd, err := command.Scope(cmd, scopeField)
	if err != nil {
		return command.Decision{}, err
	}
	switch cmd.Type {
	case CommandTypeInitiate:
		return command.Dispatch(cmd, g.Initiate)
	case CommandTypeRemoveCase:
		return command.Dispatch(cmd, g.RemoveCase)
	default:
		return command.Decision{}, fmt.Errorf("%w: %s", command.ErrTypeUnknown, cmd.Type)
	}
}
