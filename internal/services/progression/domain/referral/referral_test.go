package referral

import (
	"testing"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

func TestRefer_RejectsReReferral(t *testing.T) {
	r := New("case-1")
	cmd := command.Command{
		AggregateID: "case-1",
		Type:        CommandTypeRefer,
		PayloadJSON: []byte(`{"referral_id":"ref-1","court_centre_id":"cc-1"}`),
	}

	decision, err := Decide(r, cmd)
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
	if len(decision.Events) != 1 || decision.Events[0].Type != EventTypeReferred {
		t.Fatalf("events = %+v, want referred", decision.Events)
	}

	decision, err = Decide(r, cmd)
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
	if len(decision.Events) != 1 || decision.Events[0].Type != EventTypeAlreadyReferred {
		t.Fatalf("events = %+v, want already referred", decision.Events)
	}

	events := event.NewRegistry()
	if err := RegisterEvents(events); err != nil {
		t.Fatalf("register events: %v", err)
	}
	if !events.IsRejection(EventTypeAlreadyReferred) {
		t.Fatal("expected re-referral to be a rejection")
	}
	if err := RegisterCommands(command.NewRegistry()); err != nil {
		t.Fatalf("register commands: %v", err)
	}
}
