package courtcentre

import (
	"encoding/json"
	"testing"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

func decide(t *testing.T, c *CourtCentre, cmdType command.Type, payload any) []event.Event {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	decision, err := Decide(c, command.Command{AggregateID: "cc-1", Type: cmdType, PayloadJSON: data})
	if err != nil {
		t.Fatalf("decide %s: %v", cmdType, err)
	}
	return decision.Events
}

func TestNotifyCourtRegister_OnlyOnce(t *testing.T) {
	c := New("cc-1")
	events := decide(t, c, CommandTypeNotifyCourtRegister, NotifyPayload{RegisterID: "r-1"})
	if len(events) != 1 || events[0].Type != EventTypeRegisterNotFound {
		t.Fatalf("events = %+v, want register not found", events)
	}

	decide(t, c, CommandTypeRecordCourtRegister, CourtRegisterPayload{RegisterID: "r-1", RegisterDate: "2026-03-01"})
	events = decide(t, c, CommandTypeNotifyCourtRegister, NotifyPayload{RegisterID: "r-1"})
	if len(events) != 1 || events[0].Type != EventTypeCourtRegisterNotified {
		t.Fatalf("events = %+v, want notified", events)
	}
	if events := decide(t, c, CommandTypeNotifyCourtRegister, NotifyPayload{RegisterID: "r-1"}); len(events) != 0 {
		t.Fatalf("events = %+v, want none on second notify", events)
	}
}

func TestGeneratePrisonCourtRegister(t *testing.T) {
	c := New("cc-1")
	decide(t, c, CommandTypeRecordPrisonCourtRegister, PrisonCourtRegisterPayload{RegisterID: "p-1", PrisonName: "HMP Leeds"})
	events := decide(t, c, CommandTypeGeneratePrisonCourtRegister, RegisterGeneratedPayload{RegisterID: "p-1", FileID: "f-1"})
	if len(events) != 1 || events[0].Type != EventTypePrisonCourtRegisterGenerated {
		t.Fatalf("events = %+v, want generated", events)
	}
	var payload RegisterGeneratedPayload
	if err := events[0].Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.CourtCentreID != "cc-1" {
		t.Fatalf("court centre id = %s, want %s", payload.CourtCentreID, "cc-1")
	}
	if events := decide(t, c, CommandTypeGeneratePrisonCourtRegister, RegisterGeneratedPayload{RegisterID: "p-1", FileID: "f-2"}); len(events) != 0 {
		t.Fatalf("events = %+v, want none when already generated", events)
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
