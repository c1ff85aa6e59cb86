package application

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/aggregate"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

func decide(t *testing.T, a *Application, cmdType command.Type, payload any) []event.Event {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	decision, err := Decide(a, command.Command{AggregateID: "app-1", Type: cmdType, PayloadJSON: data})
	if err != nil {
		t.Fatalf("decide %s: %v", cmdType, err)
	}
	return decision.Events
}

func types(events []event.Event) []event.Type {
	out := make([]event.Type, 0, len(events))
	for _, evt := range events {
		out = append(out, evt.Type)
	}
	return out
}

func TestDecideEject_Idempotent(t *testing.T) {
	a := New("app-1")
	decide(t, a, CommandTypeInitiate, InitiatePayload{})
	if a.Status() != StatusDraft {
		t.Fatalf("status = %s, want %s", a.Status(), StatusDraft)
	}

	events := decide(t, a, CommandTypeEject, EjectPayload{Reason: "withdrawn"})
	if got := types(events); !reflect.DeepEqual(got, []event.Type{EventTypeEjected}) {
		t.Fatalf("events = %v, want ejected", got)
	}
	if a.Status() != StatusEjected {
		t.Fatalf("status = %s, want %s", a.Status(), StatusEjected)
	}
	if events := decide(t, a, CommandTypeEject, EjectPayload{Reason: "again"}); len(events) != 0 {
		t.Fatalf("events = %v, want none", types(events))
	}
}

func TestDecide_EjectedApplicationStaysEjected(t *testing.T) {
	a := New("app-1")
	decide(t, a, CommandTypeInitiate, InitiatePayload{})
	decide(t, a, CommandTypeReferToCourt, ReferToCourtPayload{HearingID: "h-1"})
	decide(t, a, CommandTypeEject, EjectPayload{Reason: "withdrawn"})

	tests := []struct {
		name    string
		cmdType command.Type
		payload any
	}{
		{name: "refer to court", cmdType: CommandTypeReferToCourt, payload: ReferToCourtPayload{HearingID: "h-2"}},
		{name: "refer boxwork", cmdType: CommandTypeReferBoxWork, payload: ReferBoxWorkPayload{
			BoxHearingID: "box-1",
			Updates:      []CourtApplication{{ID: "app-1", Particulars: "late"}},
		}},
		{name: "update application", cmdType: CommandTypeUpdateCourtApplication, payload: CourtApplicationUpdatedPayload{
			Application: CourtApplication{ID: "app-1", Particulars: "late"},
		}},
		{name: "update status", cmdType: CommandTypeUpdateStatus, payload: StatusPayload{Status: "LISTED"}},
		{name: "link hearing", cmdType: CommandTypeLinkHearing, payload: LinkHearingPayload{HearingID: "h-3"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if events := decide(t, a, tc.cmdType, tc.payload); len(events) != 0 {
				t.Fatalf("events = %v, want none", types(events))
			}
			if a.Status() != StatusEjected {
				t.Fatalf("status = %s, want %s", a.Status(), StatusEjected)
			}
		})
	}
	if a.BoxHearingID() != "" || a.Details().Particulars == "late" {
		t.Fatalf("ejected application changed: box=%q details=%+v", a.BoxHearingID(), a.Details())
	}
	if !reflect.DeepEqual(a.HearingIDs(), []string{"h-1"}) {
		t.Fatalf("hearings = %v, want [h-1]", a.HearingIDs())
	}
}

func TestDecide_StatusMachine(t *testing.T) {
	a := New("app-1")
	decide(t, a, CommandTypeInitiate, InitiatePayload{Application: CourtApplication{ApplicationType: "breach"}})
	if a.Details().ID != "app-1" {
		t.Fatalf("details id = %s, want %s", a.Details().ID, "app-1")
	}

	decide(t, a, CommandTypeReferToCourt, ReferToCourtPayload{HearingID: "h-1"})
	if a.Status() != StatusListed {
		t.Fatalf("status = %s, want %s", a.Status(), StatusListed)
	}

	events := decide(t, a, CommandTypeReferBoxWork, ReferBoxWorkPayload{
		BoxHearingID: "box-1",
		Updates:      []CourtApplication{{ID: "app-1", Particulars: "first"}, {ID: "app-1", Particulars: "second"}},
	})
	want := []event.Type{EventTypeCourtApplicationUpdated, EventTypeCourtApplicationUpdated, EventTypeBoxWorkReferred}
	if got := types(events); !reflect.DeepEqual(got, want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	if a.Status() != StatusInProgress || a.BoxHearingID() != "box-1" {
		t.Fatalf("status/box = %s/%s, want IN_PROGRESS/box-1", a.Status(), a.BoxHearingID())
	}
	if a.Details().Particulars != "second" {
		t.Fatalf("particulars = %s, want %s", a.Details().Particulars, "second")
	}

	decide(t, a, CommandTypeUpdateStatus, StatusPayload{Status: "listed"})
	if a.Status() != StatusListed {
		t.Fatalf("status = %s, want %s", a.Status(), StatusListed)
	}
}

func TestDecideLinkHearing_Dedupes(t *testing.T) {
	a := New("app-1")
	decide(t, a, CommandTypeReferToCourt, ReferToCourtPayload{HearingID: "h-1"})
	if events := decide(t, a, CommandTypeLinkHearing, LinkHearingPayload{HearingID: "h-1"}); len(events) != 0 {
		t.Fatalf("events = %v, want none", types(events))
	}
	decide(t, a, CommandTypeLinkHearing, LinkHearingPayload{HearingID: "h-2"})
	if !reflect.DeepEqual(a.HearingIDs(), []string{"h-1", "h-2"}) {
		t.Fatalf("hearings = %v, want [h-1 h-2]", a.HearingIDs())
	}
}

func TestDecideInitiate_RejectsDuplicate(t *testing.T) {
	a := New("app-1")
	decide(t, a, CommandTypeInitiate, InitiatePayload{})
	events := decide(t, a, CommandTypeInitiate, InitiatePayload{})
	if got := types(events); !reflect.DeepEqual(got, []event.Type{EventTypeAlreadyExists}) {
		t.Fatalf("events = %v, want already exists", got)
	}
}

func TestReplayIsDeterministic(t *testing.T) {
	a := New("app-1")
	var history []event.Event
	history = append(history, decide(t, a, CommandTypeInitiate, InitiatePayload{})...)
	history = append(history, decide(t, a, CommandTypeReferToCourt, ReferToCourtPayload{HearingID: "h-1"})...)
	history = append(history, decide(t, a, CommandTypeEject, EjectPayload{})...)

	replayed := New("app-1")
	aggregate.Replay(replayed, history)
	if !reflect.DeepEqual(replayed, a) {
		t.Fatalf("replayed = %+v, want %+v", replayed, a)
	}
}

func TestRegisterCommands_RejectsUnknownStatus(t *testing.T) {
	registry := command.NewRegistry()
	if err := RegisterCommands(registry); err != nil {
		t.Fatalf("register commands: %v", err)
	}
	if err := RegisterEvents(event.NewRegistry()); err != nil {
		t.Fatalf("register events: %v", err)
	}
	_, err := registry.ValidateForDecision(command.Command{
		AggregateID: "app-1",
		Type:        CommandTypeUpdateStatus,
		PayloadJSON: []byte(`{"status":"ARCHIVED"}`),
	})
	if !errors.Is(err, ErrStatusUnknown) {
		t.Fatalf("err = %v, want ErrStatusUnknown", err)
	}
}
