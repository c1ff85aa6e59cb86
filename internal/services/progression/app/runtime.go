package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/caseprogression/internal/platform/logging"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/engine"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
	"github.com/louisbranch/caseprogression/internal/services/progression/publish"
	"github.com/louisbranch/caseprogression/internal/services/progression/storage"
	"github.com/louisbranch/caseprogression/internal/services/progression/storage/memory"
	"github.com/louisbranch/caseprogression/internal/services/progression/storage/sqlite"
)

// Settings configures the runtime. The zero value runs against an in-memory
// store with no Redis publication.
type Settings struct {
	DBPath        string
	RedisAddr     string
	RedisChannel  string
	MaxAttempts   uint
	RetryInterval time.Duration
}

// Runtime owns the store, publishers and dispatch handler for one process.
type Runtime struct {
	Handler engine.Handler
	Bus     *publish.Bus

	closers []func() error
}

// Open builds registries, opens storage and connects publishers.
func Open(ctx context.Context, settings Settings, logger *logging.Logger) (*Runtime, error) {
	logger = logging.OrNop(logger)
	registries, err := engine.BuildRegistries()
	if err != nil {
		return nil, fmt.Errorf("build registries: %w", err)
	}

	rt := &Runtime{Bus: publish.NewBus()}
	rt.closers = append(rt.closers, rt.Bus.Close)

	var store storage.EventStore
	if path := strings.TrimSpace(settings.DBPath); path != "" {
		sqliteStore, err := sqlite.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open event store: %w", err)
		}
		rt.closers = append(rt.closers, sqliteStore.Close)
		store = sqliteStore
	} else {
		logger.Warn("no database path configured, events are kept in memory")
		store = memory.New()
	}

	publishers := publish.Fanout{rt.Bus}
	if addr := strings.TrimSpace(settings.RedisAddr); addr != "" {
		redisPublisher, err := publish.NewRedisPublisher(ctx, addr, settings.RedisChannel)
		if err != nil {
			_ = rt.Close()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		rt.closers = append(rt.closers, redisPublisher.Close)
		publishers = append(publishers, redisPublisher)
	}

	rt.Bus.SubscribeAll(func(_ context.Context, evt event.Event) {
		logger.Debug("event committed",
			"event_id", evt.ID,
			"event_type", evt.Type,
			"aggregate_type", evt.AggregateType,
			"aggregate_id", evt.AggregateID,
			"seq", evt.Seq,
		)
	})

	rt.Handler = engine.Handler{
		Registries:    registries,
		Store:         store,
		Publisher:     publishers,
		Logger:        logger,
		MaxAttempts:   settings.MaxAttempts,
		RetryInterval: settings.RetryInterval,
	}
	return rt, nil
}

// Close releases resources in reverse order of acquisition.
func (r *Runtime) Close() error {
	if r == nil {
		return nil
	}
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	r.closers = nil
	return errors.Join(errs...)
}
