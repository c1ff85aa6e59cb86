package defence

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

func decide(t *testing.T, a *Association, cmdType command.Type, payload any) []event.Type {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	decision, err := Decide(a, command.Command{AggregateID: "d-1", Type: cmdType, PayloadJSON: data})
	if err != nil {
		t.Fatalf("decide %s: %v", cmdType, err)
	}
	var types []event.Type
	for _, evt := range decision.Events {
		types = append(types, evt.Type)
	}
	return types
}

func TestAssociate_SwitchingOrganisationDisassociatesFirst(t *testing.T) {
	a := New("d-1")
	if got := decide(t, a, CommandTypeAssociate, AssociatePayload{OrganisationID: "org-1"}); !reflect.DeepEqual(got, []event.Type{EventTypeAssociated}) {
		t.Fatalf("events = %v, want associated", got)
	}
	if got := decide(t, a, CommandTypeAssociate, AssociatePayload{OrganisationID: "org-1"}); !reflect.DeepEqual(got, []event.Type{EventTypeAssociationRejected}) {
		t.Fatalf("events = %v, want association rejected", got)
	}
	want := []event.Type{EventTypeDisassociated, EventTypeAssociated}
	if got := decide(t, a, CommandTypeAssociate, AssociatePayload{OrganisationID: "org-2"}); !reflect.DeepEqual(got, want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	if a.OrganisationID() != "org-2" {
		t.Fatalf("organisation = %s, want %s", a.OrganisationID(), "org-2")
	}
}

func TestDisassociate(t *testing.T) {
	a := New("d-1")
	if got := decide(t, a, CommandTypeDisassociate, DisassociatePayload{OrganisationID: "org-1"}); !reflect.DeepEqual(got, []event.Type{EventTypeDisassociationRejected}) {
		t.Fatalf("events = %v, want disassociation rejected", got)
	}
	decide(t, a, CommandTypeAssociate, AssociatePayload{OrganisationID: "org-1"})
	if got := decide(t, a, CommandTypeDisassociate, DisassociatePayload{OrganisationID: "org-2"}); !reflect.DeepEqual(got, []event.Type{EventTypeDisassociationRejected}) {
		t.Fatalf("events = %v, want disassociation rejected for other org", got)
	}
	if got := decide(t, a, CommandTypeDisassociate, DisassociatePayload{OrganisationID: "org-1"}); !reflect.DeepEqual(got, []event.Type{EventTypeDisassociated}) {
		t.Fatalf("events = %v, want disassociated", got)
	}
	if a.OrganisationID() != "" {
		t.Fatalf("organisation = %s, want none", a.OrganisationID())
	}
}

func TestRegistries(t *testing.T) {
	if err := RegisterCommands(command.NewRegistry()); err != nil {
		t.Fatalf("register commands: %v", err)
	}
	if err := RegisterEvents(event.NewRegistry()); err != nil {
		t.Fatalf("register events: %v", err)
	}
}
