package application

import (
	"fmt"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/aggregate"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

// AggregateType names the application aggregate in envelopes and the store.
const AggregateType = "application"

const scopeField = "application_id"

// Commands handled by the application aggregate.
const (
	CommandTypeInitiate               command.Type = "application.initiate"
	CommandTypeReferToCourt           command.Type = "application.refer_to_court"
	CommandTypeReferBoxWork           command.Type = "application.refer_boxwork"
	CommandTypeUpdateCourtApplication command.Type = "application.update_court_application"
	CommandTypeEject                  command.Type = "application.eject"
	CommandTypeUpdateStatus           command.Type = "application.update_status"
	CommandTypeLinkHearing            command.Type = "application.link_hearing"
)

// Events recorded by the application aggregate.
const (
	EventTypeInitiated               event.Type = "application.initiated"
	EventTypeAlreadyExists           event.Type = "application.already_exists"
	EventTypeReferredToCourt         event.Type = "application.referred_to_court"
	EventTypeBoxWorkReferred         event.Type = "application.boxwork_referred"
	EventTypeCourtApplicationUpdated event.Type = "application.court_application_updated"
	EventTypeEjected                 event.Type = "application.ejected"
	EventTypeStatusChanged           event.Type = "application.status_changed"
	EventTypeHearingLinked           event.Type = "application.hearing_linked"
)

// Binding exposes the application aggregate to the dispatch engine.
func Binding() aggregate.Binding {
	return aggregate.Typed[*Application]{NewFn: New, DecideFn: Decide, ScopeField: scopeField}
}

// Decide routes a validated command to an application command method.
func Decide(a *Application, cmd command.Command) (command.Decision, error) {
	cmd, err := command.Scope(cmd, scopeField)
	if err != nil {
		return command.Decision{}, err
	}
	switch cmd.Type {
	case CommandTypeInitiate:
		return command.Dispatch(cmd, a.InitiateApplication)
	case CommandTypeReferToCourt:
		return command.Dispatch(cmd, a.ReferApplicationToCourt)
	case CommandTypeReferBoxWork:
		return command.Dispatch(cmd, a.ReferBoxWorkApplication)
	case CommandTypeUpdateCourtApplication:
		return command.Dispatch(cmd, a.UpdateCourtApplication)
	case CommandTypeEject:
		return command.Dispatch(cmd, a.EjectApplication)
	case CommandTypeUpdateStatus:
		return command.Dispatch(cmd, a.UpdateApplicationStatus)
	case CommandTypeLinkHearing:
		return command.Dispatch(cmd, a.LinkHearing)
	default:
		return command.Decision{}, fmt.Errorf("%w: %s", command.ErrTypeUnknown, cmd.Type)
	}
}
