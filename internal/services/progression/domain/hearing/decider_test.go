package hearing

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

func decide(t *testing.T, h *Hearing, cmdType command.Type, payload any) []event.Event {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	decision, err := Decide(h, command.Command{AggregateID: "h-1", Type: cmdType, PayloadJSON: data})
	if err != nil {
		t.Fatalf("decide %s: %v", cmdType, err)
	}
	return decision.Events
}

func onlyType(t *testing.T, events []event.Event, want event.Type) {
	t.Helper()
	if len(events) != 1 || events[0].Type != want {
		t.Fatalf("events = %+v, want one %s", events, want)
	}
}

func TestHearingLifecycle(t *testing.T) {
	h := New("h-1")
	onlyType(t, decide(t, h, CommandTypeResult, ResultPayload{Results: []Result{{DefendantID: "d1", Code: "G"}}}), EventTypeResultRejected)

	onlyType(t, decide(t, h, CommandTypeInitiate, InitiatePayload{CaseIDs: []string{"case-1"}}), EventTypeInitiated)
	onlyType(t, decide(t, h, CommandTypeInitiate, InitiatePayload{}), EventTypeAlreadyInitiated)

	onlyType(t, decide(t, h, CommandTypeChangeListingStatus, ListingStatusPayload{ListingStatus: "HEARING_INITIALISED"}), EventTypeListingStatusChanged)
	if h.ListingStatus() != "HEARING_INITIALISED" {
		t.Fatalf("listing status = %s, want %s", h.ListingStatus(), "HEARING_INITIALISED")
	}

	onlyType(t, decide(t, h, CommandTypeResult, ResultPayload{Results: []Result{{DefendantID: "d1", Code: "G"}}}), EventTypeResulted)
}

func TestAddApplication_Dedupes(t *testing.T) {
	h := New("h-1")
	onlyType(t, decide(t, h, CommandTypeAddApplication, ApplicationPayload{ApplicationID: "app-1"}), EventTypeApplicationAdded)
	if events := decide(t, h, CommandTypeAddApplication, ApplicationPayload{ApplicationID: "app-1"}); len(events) != 0 {
		t.Fatalf("events = %+v, want none", events)
	}
	decide(t, h, CommandTypeAddApplication, ApplicationPayload{ApplicationID: "app-2"})
	if !reflect.DeepEqual(h.Applications(), []string{"app-1", "app-2"}) {
		t.Fatalf("applications = %v, want [app-1 app-2]", h.Applications())
	}
}

func TestDelete_Idempotent(t *testing.T) {
	h := New("h-1")
	onlyType(t, decide(t, h, CommandTypeDelete, DeletePayload{Reason: "vacated"}), EventTypeDeleted)
	if events := decide(t, h, CommandTypeDelete, DeletePayload{}); len(events) != 0 {
		t.Fatalf("events = %+v, want none", events)
	}
}

func TestRegisterCommands_RequiresResults(t *testing.T) {
	registry := command.NewRegistry()
	if err := RegisterCommands(registry); err != nil {
		t.Fatalf("register commands: %v", err)
	}
	if err := RegisterEvents(event.NewRegistry()); err != nil {
		t.Fatalf("register events: %v", err)
	}
	_, err := registry.ValidateForDecision(command.Command{AggregateID: "h-1", Type: CommandTypeResult, PayloadJSON: []byte(`{"results":[]}`)})
	if err == nil {
		t.Fatal("expected empty results to be refused")
	}
}
