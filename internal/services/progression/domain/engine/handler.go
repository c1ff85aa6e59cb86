package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/caseprogression/internal/platform/logging"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/aggregate"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
	"github.com/louisbranch/caseprogression/internal/services/progression/publish"
	"github.com/louisbranch/caseprogression/internal/services/progression/storage"
)

const (
	tracerName = "caseprogression.engine"

	// DefaultMaxAttempts bounds how many times one command is decided when
	// appends keep losing races.
	DefaultMaxAttempts = 5
	// DefaultRetryInterval is the first pause after a version conflict.
	DefaultRetryInterval = 10 * time.Millisecond
)

// Handler validates, decides, appends and publishes commands.
type Handler struct {
	Registries    Registries
	Store         storage.EventStore
	Publisher     publish.Publisher
	Logger        *logging.Logger
	Now           func() time.Time
	NewID         func() string
	MaxAttempts   uint
	RetryInterval time.Duration
}

// Result captures what one handled command committed.
type Result struct {
	// Events are the committed events stamped with identity and sequence.
	Events []event.Event
	// Rejected is true when the committed events record a domain rejection.
	Rejected bool
	// Attempts counts decisions made, including ones discarded after a
	// version conflict.
	Attempts int
}

// Handle runs cmd against its aggregate. Validation failures are returned
// before any aggregate is loaded. An empty decision appends and publishes
// nothing.
func (h Handler) Handle(ctx context.Context, cmd command.Command) (Result, error) {
	if h.Registries.Commands == nil || h.Registries.Events == nil {
		return Result{}, ErrRegistriesRequired
	}
	if h.Store == nil {
		return Result{}, ErrStoreRequired
	}
	cmd, err := h.Registries.Commands.ValidateForDecision(cmd)
	if err != nil {
		return Result{}, err
	}
	binding, ok := h.Registries.Binding(cmd.AggregateType)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrBindingMissing, cmd.AggregateType)
	}
	cmd, err = binding.Scope(cmd)
	if err != nil {
		return Result{}, err
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "engine.Handle", trace.WithAttributes(
		attribute.String("aggregate.type", cmd.AggregateType),
		attribute.String("aggregate.id", cmd.AggregateID),
		attribute.String("command.type", string(cmd.Type)),
	))
	defer span.End()

	log := logging.OrNop(h.Logger).With(
		"aggregate_type", cmd.AggregateType,
		"aggregate_id", cmd.AggregateID,
		"command_type", cmd.Type,
	)

	var result Result
	stored, err := backoff.Retry(ctx, func() ([]event.Event, error) {
		result.Attempts++
		events, err := h.attempt(ctx, binding, cmd)
		if errors.Is(err, storage.ErrVersionConflict) {
			log.Warn("append lost race, replaying", "attempt", result.Attempts)
			return nil, err
		}
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		return events, nil
	}, backoff.WithBackOff(h.backOff()), backoff.WithMaxTries(h.maxAttempts()))
	span.SetAttributes(attribute.Int("command.attempts", result.Attempts))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error("command failed", "attempts", result.Attempts, "error", err)
		return result, err
	}

	result.Events = stored
	for _, evt := range stored {
		if h.Registries.Events.IsRejection(evt.Type) {
			result.Rejected = true
			break
		}
	}
	span.SetAttributes(
		attribute.Int("command.events", len(stored)),
		attribute.Bool("command.rejected", result.Rejected),
	)
	log.Info("command handled", "events", len(stored), "rejected", result.Rejected, "attempts", result.Attempts)

	if len(stored) == 0 || h.Publisher == nil {
		return result, nil
	}
	if err := h.Publisher.Publish(ctx, stored); err != nil {
		err = wrapNonRetryable(fmt.Errorf("publish committed events: %w", err))
		span.RecordError(err)
		log.Error("publish failed after commit", "error", err)
		return result, err
	}
	return result, nil
}

// attempt performs one replay, decide, append cycle.
func (h Handler) attempt(ctx context.Context, binding aggregate.Binding, cmd command.Command) ([]event.Event, error) {
	history, version, err := h.Store.LoadEvents(ctx, cmd.AggregateType, cmd.AggregateID)
	if err != nil {
		return nil, fmt.Errorf("load %s/%s: %w", cmd.AggregateType, cmd.AggregateID, err)
	}
	agg := binding.New(cmd.AggregateID)
	aggregate.Replay(agg, history)

	decision, err := binding.Decide(agg, cmd)
	if err != nil {
		return nil, err
	}
	if decision.Empty() {
		return nil, nil
	}

	events := make([]event.Event, 0, len(decision.Events))
	for _, evt := range decision.Events {
		vetted, err := h.Registries.Events.ValidateForAppend(h.stamp(evt, cmd))
		if err != nil {
			return nil, err
		}
		events = append(events, vetted)
	}
	return h.Store.AppendEvents(ctx, cmd.AggregateType, cmd.AggregateID, version, events)
}

func (h Handler) stamp(evt event.Event, cmd command.Command) event.Event {
	now := h.Now
	if now == nil {
		now = time.Now
	}
	newID := h.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	evt.ID = newID()
	evt.AggregateType = cmd.AggregateType
	evt.AggregateID = cmd.AggregateID
	evt.Timestamp = now().UTC()
	evt.CorrelationID = firstNonEmpty(cmd.CorrelationID, cmd.RequestID)
	evt.CausationID = firstNonEmpty(cmd.CausationID, cmd.RequestID)
	return evt
}

func (h Handler) backOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = DefaultRetryInterval
	if h.RetryInterval > 0 {
		b.InitialInterval = h.RetryInterval
	}
	b.MaxInterval = 50 * b.InitialInterval
	return b
}

func (h Handler) maxAttempts() uint {
	if h.MaxAttempts == 0 {
		return DefaultMaxAttempts
	}
	return h.MaxAttempts
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
