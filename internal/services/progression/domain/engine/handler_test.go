package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/groupcase"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/hearing"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/prosecutioncase"
	"github.com/louisbranch/caseprogression/internal/services/progression/publish"
	"github.com/louisbranch/caseprogression/internal/services/progression/storage"
	"github.com/louisbranch/caseprogression/internal/services/progression/storage/memory"
)

var fixedNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

type recordingPublisher struct {
	batches [][]event.Event
	err     error
}

func (p *recordingPublisher) Publish(_ context.Context, events []event.Event) error {
	p.batches = append(p.batches, events)
	return p.err
}

func newTestHandler(t *testing.T, store storage.EventStore, publisher publish.Publisher) Handler {
	t.Helper()
	registries, err := BuildRegistries()
	if err != nil {
		t.Fatalf("build registries: %v", err)
	}
	seq := 0
	return Handler{
		Registries: registries,
		Store:      store,
		Publisher:  publisher,
		Now:        func() time.Time { return fixedNow },
		NewID: func() string {
			seq++
			return fmt.Sprintf("evt-%d", seq)
		},
		RetryInterval: time.Millisecond,
	}
}

func hearingCommand(cmdType command.Type, payload string) command.Command {
	return command.Command{
		AggregateID: "h-1",
		Type:        cmdType,
		RequestID:   "req-1",
		PayloadJSON: []byte(payload),
	}
}

func TestHandleStampsAppendsAndPublishes(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	publisher := &recordingPublisher{}
	handler := newTestHandler(t, store, publisher)

	result, err := handler.Handle(ctx, hearingCommand(hearing.CommandTypeInitiate, `{"case_ids":["case-1"]}`))
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(result.Events) != 1 || result.Rejected || result.Attempts != 1 {
		t.Fatalf("result = %+v, want one accepted event on first attempt", result)
	}
	evt := result.Events[0]
	if evt.ID != "evt-1" || evt.Seq != 1 || evt.AggregateType != hearing.AggregateType || evt.AggregateID != "h-1" {
		t.Fatalf("event = %+v, want stamped identity", evt)
	}
	if !evt.Timestamp.Equal(fixedNow) {
		t.Fatalf("timestamp = %v, want %v", evt.Timestamp, fixedNow)
	}
	if evt.CorrelationID != "req-1" || evt.CausationID != "req-1" {
		t.Fatalf("correlation = %s, causation = %s, want req-1", evt.CorrelationID, evt.CausationID)
	}
	if len(publisher.batches) != 1 || len(publisher.batches[0]) != 1 {
		t.Fatalf("published batches = %v, want one", publisher.batches)
	}
}

func TestHandleRejectionIsCommittedAndFlagged(t *testing.T) {
	ctx := context.Background()
	handler := newTestHandler(t, memory.New(), nil)
	cmd := hearingCommand(hearing.CommandTypeInitiate, `{"case_ids":["case-1"]}`)
	if _, err := handler.Handle(ctx, cmd); err != nil {
		t.Fatalf("first handle: %v", err)
	}

	result, err := handler.Handle(ctx, cmd)
	if err != nil {
		t.Fatalf("second handle: %v", err)
	}
	if !result.Rejected || result.Events[0].Type != hearing.EventTypeAlreadyInitiated {
		t.Fatalf("result = %+v, want already initiated rejection", result)
	}
	if result.Events[0].Seq != 2 {
		t.Fatalf("seq = %d, want 2", result.Events[0].Seq)
	}
}

func TestHandleEmptyDecisionAppendsNothing(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	publisher := &recordingPublisher{}
	handler := newTestHandler(t, store, publisher)

	result, err := handler.Handle(ctx, hearingCommand(hearing.CommandTypeDelete, `{}`))
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(result.Events) != 0 {
		t.Fatalf("events = %+v, want none", result.Events)
	}
	if _, version, _ := store.LoadEvents(ctx, hearing.AggregateType, "h-1"); version != 0 {
		t.Fatalf("version = %d, want 0", version)
	}
	if len(publisher.batches) != 0 {
		t.Fatalf("published = %v, want nothing", publisher.batches)
	}
}

func TestHandleValidationFailsBeforeLoad(t *testing.T) {
	handler := newTestHandler(t, failingLoader{}, nil)

	_, err := handler.Handle(context.Background(), hearingCommand(hearing.CommandTypeChangeListingStatus, `{}`))
	if !errors.Is(err, command.ErrPayloadInvalid) {
		t.Fatalf("err = %v, want %v", err, command.ErrPayloadInvalid)
	}
	_, err = handler.Handle(context.Background(), command.Command{AggregateID: "h-1", Type: "hearing.unknown"})
	if !errors.Is(err, command.ErrTypeUnknown) {
		t.Fatalf("err = %v, want %v", err, command.ErrTypeUnknown)
	}
}

func TestHandleScopeMismatchIsHardFailure(t *testing.T) {
	handler := newTestHandler(t, failingLoader{memory.New()}, nil)

	result, err := handler.Handle(context.Background(), hearingCommand(hearing.CommandTypeInitiate, `{"hearing_id":"h-2"}`))
	if !errors.Is(err, command.ErrScopeMismatch) {
		t.Fatalf("err = %v, want %v", err, command.ErrScopeMismatch)
	}
	if result.Attempts != 0 {
		t.Fatalf("attempts = %d, want 0", result.Attempts)
	}
}

// racingStore lets a competing writer append right before the handler's
// first append, forcing a version conflict.
type racingStore struct {
	*memory.Store
	race    func(ctx context.Context)
	appends int
}

func (s *racingStore) AppendEvents(ctx context.Context, aggregateType, aggregateID string, expected uint64, events []event.Event) ([]event.Event, error) {
	s.appends++
	if s.appends == 1 && s.race != nil {
		s.race(ctx)
	}
	return s.Store.AppendEvents(ctx, aggregateType, aggregateID, expected, events)
}

func TestHandleRetriesFromReplayAfterConflict(t *testing.T) {
	ctx := context.Background()
	store := &racingStore{Store: memory.New()}
	store.race = func(ctx context.Context) {
		competing := event.New(hearing.EventTypeInitiated, hearing.InitiatePayload{HearingID: "h-1", CaseIDs: []string{"case-9"}})
		if _, err := store.Store.AppendEvents(ctx, hearing.AggregateType, "h-1", 0, []event.Event{competing}); err != nil {
			t.Fatalf("competing append: %v", err)
		}
	}
	handler := newTestHandler(t, store, nil)

	result, err := handler.Handle(ctx, hearingCommand(hearing.CommandTypeInitiate, `{"case_ids":["case-1"]}`))
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if result.Attempts != 2 {
		t.Fatalf("attempts = %d, want 2", result.Attempts)
	}
	if len(result.Events) != 1 || result.Events[0].Type != hearing.EventTypeAlreadyInitiated {
		t.Fatalf("events = %+v, want decision re-made against the competing history", result.Events)
	}
	if result.Events[0].Seq != 2 {
		t.Fatalf("seq = %d, want 2", result.Events[0].Seq)
	}
}

type alwaysConflicting struct{ *memory.Store }

func (alwaysConflicting) AppendEvents(context.Context, string, string, uint64, []event.Event) ([]event.Event, error) {
	return nil, storage.ErrVersionConflict
}

func TestHandleGivesUpAfterMaxAttempts(t *testing.T) {
	handler := newTestHandler(t, alwaysConflicting{memory.New()}, nil)
	handler.MaxAttempts = 3

	result, err := handler.Handle(context.Background(), hearingCommand(hearing.CommandTypeInitiate, `{}`))
	if !errors.Is(err, storage.ErrVersionConflict) {
		t.Fatalf("err = %v, want %v", err, storage.ErrVersionConflict)
	}
	if result.Attempts != 3 {
		t.Fatalf("attempts = %d, want 3", result.Attempts)
	}
}

type failingLoader struct{ *memory.Store }

func (failingLoader) LoadEvents(context.Context, string, string) ([]event.Event, uint64, error) {
	return nil, 0, errors.New("disk on fire")
}

func TestHandleLoadErrorIsPermanent(t *testing.T) {
	handler := newTestHandler(t, failingLoader{memory.New()}, nil)
	result, err := handler.Handle(context.Background(), hearingCommand(hearing.CommandTypeInitiate, `{}`))
	if err == nil {
		t.Fatal("expected load error")
	}
	if result.Attempts != 1 {
		t.Fatalf("attempts = %d, want 1", result.Attempts)
	}
}

func TestHandlePublishFailureIsNonRetryable(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	handler := newTestHandler(t, store, &recordingPublisher{err: errors.New("broker down")})

	result, err := handler.Handle(ctx, hearingCommand(hearing.CommandTypeInitiate, `{}`))
	if !IsNonRetryable(err) {
		t.Fatalf("err = %v, want non-retryable", err)
	}
	if len(result.Events) != 1 {
		t.Fatalf("events = %+v, want the committed event", result.Events)
	}
	if _, version, _ := store.LoadEvents(ctx, hearing.AggregateType, "h-1"); version != 1 {
		t.Fatalf("version = %d, want 1", version)
	}
}

func TestHandleSendingSheetLocksCaseAcrossCommands(t *testing.T) {
	ctx := context.Background()
	handler := newTestHandler(t, memory.New(), nil)
	run := func(cmdType command.Type, payload string) Result {
		t.Helper()
		result, err := handler.Handle(ctx, command.Command{AggregateID: "case-1", Type: cmdType, PayloadJSON: []byte(payload)})
		if err != nil {
			t.Fatalf("handle %s: %v", cmdType, err)
		}
		return result
	}

	sheet := `{"court_centre_id":"cc-1","defendants":[{"id":"A","offences":[]}]}`
	run(prosecutioncase.CommandTypeCreate, `{"reference":"URN1","defendants":[{"id":"A"}]}`)
	run(prosecutioncase.CommandTypeAddCaseToCrownCourt, `{"court_centre_id":"cc-1"}`)
	result := run(prosecutioncase.CommandTypeCompleteSendingSheet, sheet)
	if result.Rejected || result.Events[0].Type != prosecutioncase.EventTypeSendingSheetCompleted {
		t.Fatalf("result = %+v, want sending sheet completed", result)
	}
	result = run(prosecutioncase.CommandTypeCompleteSendingSheet, sheet)
	if !result.Rejected || result.Events[0].Type != prosecutioncase.EventTypeSendingSheetPreviouslyCompleted {
		t.Fatalf("result = %+v, want previously completed rejection", result)
	}
}

func TestHandleGroupCaseRemovalThroughEngine(t *testing.T) {
	ctx := context.Background()
	handler := newTestHandler(t, memory.New(), nil)
	groupCmd := func(cmdType command.Type, payload string) command.Command {
		return command.Command{AggregateID: "g-1", Type: cmdType, PayloadJSON: []byte(payload)}
	}

	if _, err := handler.Handle(ctx, groupCmd(groupcase.CommandTypeInitiate, `{"cases":[{"case_id":"c1","group_master":true},{"case_id":"c2"}]}`)); err != nil {
		t.Fatalf("initiate: %v", err)
	}
	result, err := handler.Handle(ctx, groupCmd(groupcase.CommandTypeRemoveCase, `{"case_id":"c1"}`))
	if err != nil {
		t.Fatalf("remove master: %v", err)
	}
	if result.Rejected || len(result.Events) != 1 {
		t.Fatalf("result = %+v, want one removal", result)
	}
	result, err = handler.Handle(ctx, groupCmd(groupcase.CommandTypeRemoveCase, `{"case_id":"c2"}`))
	if err != nil {
		t.Fatalf("remove last: %v", err)
	}
	if !result.Rejected {
		t.Fatalf("result = %+v, want last-case rejection", result)
	}
}
