package command

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrFieldRequired indicates a missing required payload field.
var ErrFieldRequired = errors.New("field is required")

// Required returns ErrFieldRequired naming field when value is blank.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s", ErrFieldRequired, field)
	}
	return nil
}

// DecodePayload unmarshals the command payload into P.
func DecodePayload[P any](cmd Command) (P, error) {
	var payload P
	if len(cmd.PayloadJSON) == 0 {
		return payload, nil
	}
	if err := json.Unmarshal(cmd.PayloadJSON, &payload); err != nil {
		return payload, fmt.Errorf("decode %s payload: %w", cmd.Type, err)
	}
	return payload, nil
}

// Validator builds a PayloadValidator that decodes into P and runs check.
// A nil check only verifies that the payload decodes.
func Validator[P any](check func(P) error) PayloadValidator {
	return func(raw json.RawMessage) error {
		var payload P
		if err := json.Unmarshal(raw, &payload); err != nil {
			return err
		}
		if check == nil {
			return nil
		}
		return check(payload)
	}
}

// ErrScopeMismatch indicates a payload addressed to a different aggregate than the envelope.
var ErrScopeMismatch = errors.New("payload id does not match aggregate id")

// Scope verifies that the payload field naming the target aggregate matches
// the envelope's aggregate id. A missing or blank field is filled in from the
// envelope so command methods always see the aggregate they run against.
func Scope(cmd Command, field string) (Command, error) {
	fields := map[string]json.RawMessage{}
	if len(cmd.PayloadJSON) != 0 {
		if err := json.Unmarshal(cmd.PayloadJSON, &fields); err != nil {
			return cmd, fmt.Errorf("decode %s payload: %w", cmd.Type, err)
		}
		if fields == nil {
			fields = map[string]json.RawMessage{}
		}
	}
	if raw, ok := fields[field]; ok {
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			return cmd, fmt.Errorf("decode %s: %w", field, err)
		}
		value = strings.TrimSpace(value)
		if value != "" {
			if value != cmd.AggregateID {
				return cmd, fmt.Errorf("%w: %s=%s aggregate=%s", ErrScopeMismatch, field, value, cmd.AggregateID)
			}
			return cmd, nil
		}
	}
	id, err := json.Marshal(cmd.AggregateID)
	if err != nil {
		return cmd, err
	}
	fields[field] = id
	payload, err := json.Marshal(fields)
	if err != nil {
		return cmd, err
	}
	cmd.PayloadJSON = payload
	return cmd, nil
}
