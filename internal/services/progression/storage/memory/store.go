// Package memory provides an in-process event store for tests and local runs.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
	"github.com/louisbranch/caseprogression/internal/services/progression/storage"
)

// Store keeps aggregate streams in memory.
type Store struct {
	mu      sync.Mutex
	streams map[storage.Stream][]event.Event
}

// New returns an empty store.
func New() *Store {
	return &Store{streams: make(map[storage.Stream][]event.Event)}
}

func streamKey(aggregateType, aggregateID string) (storage.Stream, error) {
	key := storage.Stream{
		AggregateType: strings.TrimSpace(aggregateType),
		AggregateID:   strings.TrimSpace(aggregateID),
	}
	if key.AggregateType == "" || key.AggregateID == "" {
		return storage.Stream{}, storage.ErrStreamRequired
	}
	return key, nil
}

// LoadEvents returns a copy of the stream history and its version.
func (s *Store) LoadEvents(ctx context.Context, aggregateType, aggregateID string) ([]event.Event, uint64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	key, err := streamKey(aggregateType, aggregateID)
	if err != nil {
		return nil, 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	history := append([]event.Event(nil), s.streams[key]...)
	return history, uint64(len(history)), nil
}

// AppendEvents appends events when the stream is at expectedVersion.
func (s *Store) AppendEvents(ctx context.Context, aggregateType, aggregateID string, expectedVersion uint64, events []event.Event) ([]event.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key, err := streamKey(aggregateType, aggregateID)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	current := uint64(len(s.streams[key]))
	if current != expectedVersion {
		return nil, fmt.Errorf("%w: %s/%s at %d, expected %d", storage.ErrVersionConflict, key.AggregateType, key.AggregateID, current, expectedVersion)
	}
	stored := make([]event.Event, len(events))
	for i, evt := range events {
		evt.AggregateType = key.AggregateType
		evt.AggregateID = key.AggregateID
		evt.Seq = current + uint64(i) + 1
		stored[i] = evt
	}
	s.streams[key] = append(s.streams[key], stored...)
	return append([]event.Event(nil), stored...), nil
}
