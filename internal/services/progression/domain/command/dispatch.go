package command

import "github.com/louisbranch/caseprogression/internal/services/progression/domain/event"

// Dispatch decodes the command payload into P and accepts the events fn emits for it.
func Dispatch[P any](cmd Command, fn func(P) []event.Event) (Decision, error) {
	payload, err := DecodePayload[P](cmd)
	if err != nil {
		return Decision{}, err
	}
	return Accept(fn(payload)...), nil
}
