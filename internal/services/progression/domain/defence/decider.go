package defence

import (
	"fmt"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/aggregate"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

// AggregateType names the defence association aggregate in envelopes and the store.
const AggregateType = "defence_association"

const scopeField = "defendant_id"

// Command and event types of the defence association aggregate.
const (
	CommandTypeAssociate    command.Type = "defence.associate"
	CommandTypeDisassociate command.Type = "defence.disassociate"

	EventTypeAssociated             event.Type = "defence.associated"
	EventTypeAssociationRejected    event.Type = "defence.association_rejected"
	EventTypeDisassociated          event.Type = "defence.disassociated"
	EventTypeDisassociationRejected event.Type = "defence.disassociation_rejected"
)

// Binding exposes the association aggregate to the dispatch engine.
func Binding() aggregate.Binding {
	return aggregate.Typed[*Association]{NewFn: New, DecideFn: Decide, ScopeField: scopeField}
}

// Decide routes a validated command to an association command method.
func Decide(a *Association, cmd command.Command) (command.Decision, error) {
	cmd, err := command.Scope(cmd, scopeField)
	if err != nil {
		return command.Decision{}, err
	}
	switch cmd.Type {
	case CommandTypeAssociate:
		return command.Dispatch(cmd, a.Associate)
	case CommandTypeDisassociate:
		return command.Dispatch(cmd, a.Disassociate)
	default:
		return command.Decision{}, fmt.Errorf("%w: %s", command.ErrTypeUnknown, cmd.Type)
	}
}

// Associate records an organisation as the defendant's representative.
func (a *Association) Associate(in AssociatePayload) []event.Event {
	rec := aggregate.NewRecorder(a)
	if a.organisationID == in.OrganisationID {
		rec.Emit(EventTypeAssociationRejected, RejectedPayload{
			DefendantID:    in.DefendantID,
			OrganisationID: in.OrganisationID,
			Description:    "Organisation already associated",
		})
		return rec.Events()
	}
	if a.organisationID != "" {
		rec.Emit(EventTypeDisassociated, DisassociatePayload{
			DefendantID:    in.DefendantID,
			OrganisationID: a.organisationID,
			EndDate:        in.StartDate,
		})
	}
	rec.Emit(EventTypeAssociated, in)
	return rec.Events()
}

// Disassociate ends the representation by the given organisation.
func (a *Association) Disassociate(in DisassociatePayload) []event.Event {
	rec := aggregate.NewRecorder(a)
	if a.organisationID == "" || a.organisationID != in.OrganisationID {
		rec.Emit(EventTypeDisassociationRejected, RejectedPayload{
			DefendantID:    in.DefendantID,
			OrganisationID: in.OrganisationID,
			Description:    "Organisation not associated",
		})
		return rec.Events()
	}
	rec.Emit(EventTypeDisassociated, in)
	return rec.Events()
}
