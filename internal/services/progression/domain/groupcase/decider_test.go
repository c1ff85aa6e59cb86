package groupcase

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/aggregate"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

func decide(t *testing.T, g *Group, cmdType command.Type, payload any) []event.Event {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	decision, err := Decide(g, command.Command{AggregateID: "group-1", Type: cmdType, PayloadJSON: data})
	if err != nil {
		t.Fatalf("decide %s: %v", cmdType, err)
	}
	return decision.Events
}

func initiated(t *testing.T, caseIDs ...string) *Group {
	t.Helper()
	g := New("group-1")
	members := make([]Member, 0, len(caseIDs))
	for i, caseID := range caseIDs {
		members = append(members, Member{CaseID: caseID, Reference: "URN-" + caseID, GroupMaster: i == 0})
	}
	decide(t, g, CommandTypeInitiate, InitiatePayload{Cases: members})
	return g
}

func TestCanBeRemoved(t *testing.T) {
	sole := initiated(t, "c1")
	if sole.CanBeRemoved("c1") {
		t.Fatal("expected sole member to be protected")
	}

	pair := initiated(t, "c1", "c2")
	if !pair.CanBeRemoved("c1") || !pair.CanBeRemoved("c2") {
		t.Fatal("expected members of a pair to be removable")
	}
	if pair.CanBeRemoved("c9") {
		t.Fatal("expected non-member to be refused")
	}
}

func TestGetNewGroupMaster_PicksEarliestRemainingMember(t *testing.T) {
	g := initiated(t, "c1", "c3", "c2")
	if got := g.GetNewGroupMaster("c3"); got != nil {
		t.Fatalf("new master = %+v, want nil for non-master removal", got)
	}
	got := g.GetNewGroupMaster("c1")
	if got == nil || got.CaseID != "c3" || !got.GroupMaster {
		t.Fatalf("new master = %+v, want c3 flagged as master", got)
	}
	if got.Reference != "URN-c3" {
		t.Fatalf("new master reference = %s, want %s", got.Reference, "URN-c3")
	}
}

func TestDecideRemoveCase_MasterHandsOver(t *testing.T) {
	g := initiated(t, "c1", "c2", "c3")
	events := decide(t, g, CommandTypeRemoveCase, RemoveCasePayload{CaseID: "c1"})
	if len(events) != 1 || events[0].Type != EventTypeCaseRemoved {
		t.Fatalf("events = %+v, want one case removed", events)
	}
	var payload CaseRemovedPayload
	if err := events[0].Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.GroupID != "group-1" || payload.NewMaster == nil || payload.NewMaster.CaseID != "c2" {
		t.Fatalf("payload = %+v, want group-1 with master c2", payload)
	}
	master, ok := g.Master()
	if !ok || master.CaseID != "c2" {
		t.Fatalf("master = %+v, want c2", master)
	}
	if !reflect.DeepEqual(g.Members(), []string{"c2", "c3"}) {
		t.Fatalf("members = %v, want [c2 c3]", g.Members())
	}
}

func TestDecideRemoveCase_IdempotentAndLastMemberGuard(t *testing.T) {
	g := initiated(t, "c1", "c2")
	decide(t, g, CommandTypeRemoveCase, RemoveCasePayload{CaseID: "c2"})

	if events := decide(t, g, CommandTypeRemoveCase, RemoveCasePayload{CaseID: "c2"}); len(events) != 0 {
		t.Fatalf("events = %+v, want none for absent case", events)
	}

	events := decide(t, g, CommandTypeRemoveCase, RemoveCasePayload{CaseID: "c1"})
	if len(events) != 1 || events[0].Type != EventTypeLastCaseRemovalRejected {
		t.Fatalf("events = %+v, want last case removal rejected", events)
	}
	if !g.IsMember("c1") {
		t.Fatal("expected last member to remain")
	}
}

func TestRemoveCaseFromGroupCases_EmptyIDIsNoop(t *testing.T) {
	g := initiated(t, "c1", "c2")
	if events := g.RemoveCaseFromGroupCases("group-1", "", nil); events != nil {
		t.Fatalf("events = %+v, want nil", events)
	}
}

func TestDecideInitiate_RejectsSecondInitiation(t *testing.T) {
	g := initiated(t, "c1")
	events := decide(t, g, CommandTypeInitiate, InitiatePayload{Cases: []Member{{CaseID: "c5"}}})
	if len(events) != 1 || events[0].Type != EventTypeAlreadyInitiated {
		t.Fatalf("events = %+v, want already initiated", events)
	}
	if g.IsMember("c5") {
		t.Fatal("expected membership unchanged")
	}
}

func TestReplayIsDeterministic(t *testing.T) {
	g := New("group-1")
	var history []event.Event
	history = append(history, decide(t, g, CommandTypeInitiate, InitiatePayload{Cases: []Member{
		{CaseID: "c1", GroupMaster: true}, {CaseID: "c2"}, {CaseID: "c3"},
	}})...)
	history = append(history, decide(t, g, CommandTypeRemoveCase, RemoveCasePayload{CaseID: "c1"})...)

	first, second := New("group-1"), New("group-1")
	aggregate.Replay(first, history)
	aggregate.Replay(second, history)
	if !reflect.DeepEqual(first, second) || !reflect.DeepEqual(first, g) {
		t.Fatalf("replayed states differ: %+v vs %+v vs %+v", first, second, g)
	}
}

func TestRegistries(t *testing.T) {
	commands := command.NewRegistry()
	if err := RegisterCommands(commands); err != nil {
		t.Fatalf("register commands: %v", err)
	}
	events := event.NewRegistry()
	if err := RegisterEvents(events); err != nil {
		t.Fatalf("register events: %v", err)
	}
	if !events.IsRejection(EventTypeLastCaseRemovalRejected) {
		t.Fatal("expected last case removal to be a rejection")
	}
	_, err := commands.ValidateForDecision(command.Command{
		AggregateID: "group-1",
		Type:        CommandTypeInitiate,
		PayloadJSON: []byte(`{"cases":[{"case_id":"a","group_master":true},{"case_id":"b","group_master":true}]}`),
	})
	if err == nil {
		t.Fatal("expected two masters to be refused")
	}
}
