package cotr

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

func decide(t *testing.T, c *Cotr, cmdType command.Type, payload any) []event.Event {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	decision, err := Decide(c, command.Command{AggregateID: "cotr-1", Type: cmdType, PayloadJSON: data})
	if err != nil {
		t.Fatalf("decide %s: %v", cmdType, err)
	}
	return decision.Events
}

func created(t *testing.T, jurisdiction string) *Cotr {
	t.Helper()
	c := New("cotr-1")
	decide(t, c, CommandTypeCreate, CreatePayload{
		HearingID:        "h-1",
		CaseURN:          "URN1",
		JurisdictionType: jurisdiction,
		DefendantIDs:     []string{"d1"},
	})
	return c
}

func types(events []event.Event) []event.Type {
	out := make([]event.Type, 0, len(events))
	for _, evt := range events {
		out = append(out, evt.Type)
	}
	return out
}

func decodeTask(t *testing.T, evt event.Event) TaskPayload {
	t.Helper()
	var task TaskPayload
	if err := evt.Decode(&task); err != nil {
		t.Fatalf("decode task: %v", err)
	}
	return task
}

func TestRolesFor(t *testing.T) {
	crown := RolesFor("CROWN")
	want := []string{RoleOperationalDeliveryAdmin, RoleListingOfficer, RoleCaseProgressionOfficer}
	if !reflect.DeepEqual(crown, want) {
		t.Fatalf("crown roles = %v, want %v", crown, want)
	}
	if got := RolesFor(JurisdictionMagistrates); !reflect.DeepEqual(got, []string{RoleCentralAdmin}) {
		t.Fatalf("magistrates roles = %v, want [%s]", got, RoleCentralAdmin)
	}
	if got := WelshRolesFor(JurisdictionMagistrates); !reflect.DeepEqual(got, []string{RoleWelshLanguageUnit, RoleCentralAdmin}) {
		t.Fatalf("welsh roles = %v", got)
	}
}

func TestReviewTask(t *testing.T) {
	name, due := ReviewTask([]Answer{{Question: QuestionTimeEstimate, Answer: "Y"}})
	if name != TaskReviewCotr || due != 2 {
		t.Fatalf("task = %s/%d, want %s/2", name, due, TaskReviewCotr)
	}
	name, due = ReviewTask([]Answer{{Question: QuestionTimeEstimate, Answer: "no"}})
	if name != TaskReviewListing || due != 5 {
		t.Fatalf("task = %s/%d, want %s/5", name, due, TaskReviewListing)
	}
}

func TestDecideServeDefendant_WelshFormAddsTranslationTask(t *testing.T) {
	c := created(t, JurisdictionCrown)
	events := decide(t, c, CommandTypeServeDefendant, ServeDefendantPayload{
		DefendantID: "d1",
		IsWelshForm: true,
		Content:     []Entry{{Heading: "Plea", Text: "Not guilty"}},
	})
	want := []event.Type{EventTypeTaskRequested, EventTypeTaskRequested, EventTypeDefendantServed}
	if got := types(events); !reflect.DeepEqual(got, want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	translation := decodeTask(t, events[1])
	if translation.Name != TaskTranslateWelsh {
		t.Fatalf("task name = %s, want %s", translation.Name, TaskTranslateWelsh)
	}
	if translation.Roles[0] != RoleWelshLanguageUnit {
		t.Fatalf("roles = %v, want Welsh Language Unit first", translation.Roles)
	}
	if translation.HearingID != "h-1" {
		t.Fatalf("hearing id = %s, want %s", translation.HearingID, "h-1")
	}

	c = created(t, JurisdictionCrown)
	events = decide(t, c, CommandTypeServeDefendant, ServeDefendantPayload{DefendantID: "d1"})
	want = []event.Type{EventTypeTaskRequested, EventTypeDefendantServed}
	if got := types(events); !reflect.DeepEqual(got, want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
}

func TestDecideServeProsecution_IncorrectTimeEstimateEscalates(t *testing.T) {
	c := created(t, JurisdictionMagistrates)
	events := decide(t, c, CommandTypeServeProsecution, ServeProsecutionPayload{
		Answers: []Answer{{Question: QuestionTimeEstimate, Answer: "N"}},
	})
	want := []event.Type{EventTypeTaskRequested, EventTypeProsecutionServed}
	if got := types(events); !reflect.DeepEqual(got, want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	task := decodeTask(t, events[0])
	if task.Name != TaskReviewListing || task.DueInDays != 5 {
		t.Fatalf("task = %+v, want review listing in 5 days", task)
	}
	if !reflect.DeepEqual(task.Roles, []string{RoleCentralAdmin}) {
		t.Fatalf("roles = %v, want central admin", task.Roles)
	}
}

func TestDecideFurtherInfoDefence_AppendsOnlyToExistingContent(t *testing.T) {
	c := created(t, JurisdictionCrown)
	events := decide(t, c, CommandTypeFurtherInfoDefence, FurtherInfoPayload{DefendantID: "d1", Message: "more"})
	if got := types(events); !reflect.DeepEqual(got, []event.Type{EventTypeTaskRequested}) {
		t.Fatalf("events = %v, want task only", got)
	}

	decide(t, c, CommandTypeServeDefendant, ServeDefendantPayload{
		DefendantID: "d1",
		Content:     []Entry{{Heading: "Plea", Text: "Not guilty"}},
	})
	events = decide(t, c, CommandTypeFurtherInfoDefence, FurtherInfoPayload{DefendantID: "d1", Message: "more"})
	want := []event.Type{EventTypeDefenceContentUpdated, EventTypeTaskRequested}
	if got := types(events); !reflect.DeepEqual(got, want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	content := c.Content("d1")
	if len(content) != 2 || content[1].Text != "more" {
		t.Fatalf("content = %+v, want appended further information", content)
	}
}

func TestDecideChangeDefendants_NumbersAdditions(t *testing.T) {
	c := created(t, JurisdictionCrown)
	events := decide(t, c, CommandTypeChangeDefendants, ChangeDefendantsPayload{
		Added:   []string{"d2", "d3"},
		Removed: []string{"d1"},
	})
	want := []event.Type{EventTypeDefendantAdded, EventTypeDefendantAdded, EventTypeDefendantRemoved}
	if got := types(events); !reflect.DeepEqual(got, want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i, wantNumber := range []int{2, 3} {
		var payload DefendantAddedPayload
		if err := events[i].Decode(&payload); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if payload.DefendantNumber != wantNumber {
			t.Fatalf("defendant number = %d, want %d", payload.DefendantNumber, wantNumber)
		}
	}
	if events := decide(t, c, CommandTypeChangeDefendants, ChangeDefendantsPayload{}); len(events) != 0 {
		t.Fatalf("events = %v, want none for empty change", types(events))
	}
}

func TestDecideArchive_IdempotentAndBlocksReviewNotes(t *testing.T) {
	c := created(t, JurisdictionCrown)
	if got := types(decide(t, c, CommandTypeUpdateReviewNotes, ReviewNotesPayload{Notes: []string{"ok"}})); !reflect.DeepEqual(got, []event.Type{EventTypeReviewNotesUpdated}) {
		t.Fatalf("events = %v, want review notes updated", got)
	}
	if got := types(decide(t, c, CommandTypeArchive, ArchivePayload{})); !reflect.DeepEqual(got, []event.Type{EventTypeArchived}) {
		t.Fatalf("events = %v, want archived", got)
	}
	if events := decide(t, c, CommandTypeArchive, ArchivePayload{}); len(events) != 0 {
		t.Fatalf("events = %v, want none when already archived", types(events))
	}
	if got := types(decide(t, c, CommandTypeUpdateReviewNotes, ReviewNotesPayload{Notes: []string{"late"}})); !reflect.DeepEqual(got, []event.Type{EventTypeReviewNotesRejected}) {
		t.Fatalf("events = %v, want review notes rejected", got)
	}
	if !reflect.DeepEqual(c.ReviewNotes(), []string{"ok"}) {
		t.Fatalf("review notes = %v, want [ok]", c.ReviewNotes())
	}
}

func TestDecideCreate_RejectsDuplicate(t *testing.T) {
	c := created(t, JurisdictionCrown)
	events := decide(t, c, CommandTypeCreate, CreatePayload{HearingID: "h-2", JurisdictionType: JurisdictionCrown})
	if got := types(events); !reflect.DeepEqual(got, []event.Type{EventTypeAlreadyExists}) {
		t.Fatalf("events = %v, want already exists", got)
	}
}

func TestRegistries(t *testing.T) {
	if err := RegisterCommands(command.NewRegistry()); err != nil {
		t.Fatalf("register commands: %v", err)
	}
	events := event.NewRegistry()
	if err := RegisterEvents(events); err != nil {
		t.Fatalf("register events: %v", err)
	}
	if !events.IsRejection(EventTypeReviewNotesRejected) {
		t.Fatal("expected review notes rejection intent")
	}
}
