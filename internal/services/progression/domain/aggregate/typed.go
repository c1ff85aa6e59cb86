package aggregate

import (
	"errors"
	"fmt"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
)

// ErrStateMismatch indicates an aggregate handed to the wrong decider.
var ErrStateMismatch = errors.New("aggregate state type mismatch")

// Binding is the untyped view of one aggregate type used by the dispatch engine.
type Binding interface {
	New(id string) Aggregate
	// Scope checks the command payload against the envelope before any
	// history is loaded.
	Scope(cmd command.Command) (command.Command, error)
	Decide(agg Aggregate, cmd command.Command) (command.Decision, error)
}

// Typed wraps a concrete aggregate constructor and decide function to satisfy
// Binding. Domain packages provide strongly-typed logic; the wrapper handles the
// Aggregate -> A assertion so callers never see raw type switches.
type Typed[A Aggregate] struct {
	// NewFn creates an empty aggregate for the given id.
	NewFn func(id string) A
	// DecideFn routes a validated command to one command method.
	DecideFn func(A, command.Command) (command.Decision, error)
	// ScopeField names the payload field carrying the aggregate id. Empty
	// skips the check.
	ScopeField string
}

// New satisfies Binding by delegating to NewFn.
func (t Typed[A]) New(id string) Aggregate {
	if t.NewFn == nil {
		return nil
	}
	return t.NewFn(id)
}

// Scope satisfies Binding by matching ScopeField against the aggregate id.
func (t Typed[A]) Scope(cmd command.Command) (command.Command, error) {
	if t.ScopeField == "" {
		return cmd, nil
	}
	return command.Scope(cmd, t.ScopeField)
}

// Decide satisfies Binding by asserting agg to A and delegating to DecideFn.
func (t Typed[A]) Decide(agg Aggregate, cmd command.Command) (command.Decision, error) {
	if t.DecideFn == nil {
		return command.Decision{}, fmt.Errorf("typed binding: DecideFn is nil")
	}
	typed, ok := agg.(A)
	if !ok {
		return command.Decision{}, fmt.Errorf("%w: got %T", ErrStateMismatch, agg)
	}
	return t.DecideFn(typed, cmd)
}
