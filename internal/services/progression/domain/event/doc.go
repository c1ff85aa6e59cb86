// Package event defines the canonical event envelope and event-type registry used by
// the case progression write path.
//
// Events are immutable business facts emitted by aggregate command methods. The
// registry enforces aggregate ownership and payload validity before persistence
// assigns sequence numbers, and marks which facts record a domain rejection rather
// than a structural change.
//
// A stable event contract is the foundation for replay: the ordered log of these
// envelopes is the only source of aggregate state.
package event
