// Package storage defines the persistence contracts for the progression event journal.
package storage

import (
	"context"
	"errors"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

var (
	// ErrVersionConflict indicates another writer appended to the aggregate
	// stream after it was loaded.
	ErrVersionConflict = errors.New("aggregate version conflict")
	// ErrStreamRequired indicates a missing aggregate type or id.
	ErrStreamRequired = errors.New("aggregate type and id are required")
)

// EventLoader reads the ordered history of one aggregate stream.
type EventLoader interface {
	// LoadEvents returns the stream's events ordered by Seq together with the
	// stream version (the Seq of the last event, zero for an empty stream).
	LoadEvents(ctx context.Context, aggregateType, aggregateID string) ([]event.Event, uint64, error)
}

// EventAppender writes to one aggregate stream.
type EventAppender interface {
	// AppendEvents appends events when the stream is still at expectedVersion
	// and returns them stamped with their sequence numbers. A stale version
	// fails with ErrVersionConflict and writes nothing.
	AppendEvents(ctx context.Context, aggregateType, aggregateID string, expectedVersion uint64, events []event.Event) ([]event.Event, error)
}

// EventStore combines stream reads and conditional appends.
type EventStore interface {
	EventLoader
	EventAppender
}

// Stream identifies one aggregate stream.
type Stream struct {
	AggregateType string
	AggregateID   string
}
