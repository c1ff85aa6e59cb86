package command

import (
	"errors"
	"testing"
)

type testPayload struct {
	CaseID string `json:"case_id"`
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	registry := NewRegistry()
	if err := registry.Register(Definition{
		Type:      Type("case.add_defendant"),
		Aggregate: "case",
		ValidatePayload: Validator(func(p testPayload) error {
			return Required("case_id", p.CaseID)
		}),
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	return registry
}

func TestRegistryRegister_RejectsDuplicates(t *testing.T) {
	registry := newTestRegistry(t)
	err := registry.Register(Definition{Type: Type("case.add_defendant"), Aggregate: "case"})
	if err == nil {
		t.Fatal("expected duplicate registration error")
	}
}

func TestRegistryRegister_RequiresAggregate(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(Definition{Type: Type("case.add_defendant")}); err == nil {
		t.Fatal("expected missing aggregate error")
	}
}

func TestValidateForDecision_Errors(t *testing.T) {
	registry := newTestRegistry(t)
	tests := []struct {
		name string
		cmd  Command
		want error
	}{
		{name: "missing aggregate id", cmd: Command{Type: Type("case.add_defendant")}, want: ErrAggregateIDRequired},
		{name: "missing type", cmd: Command{AggregateID: "c-1"}, want: ErrTypeRequired},
		{name: "unknown type", cmd: Command{AggregateID: "c-1", Type: Type("case.unknown")}, want: ErrTypeUnknown},
		{name: "wrong aggregate", cmd: Command{AggregateID: "c-1", AggregateType: "hearing", Type: Type("case.add_defendant")}, want: ErrAggregateMismatch},
		{name: "malformed payload", cmd: Command{AggregateID: "c-1", Type: Type("case.add_defendant"), PayloadJSON: []byte(`{"case_id":`)}, want: ErrPayloadInvalid},
		{name: "missing field", cmd: Command{AggregateID: "c-1", Type: Type("case.add_defendant"), PayloadJSON: []byte(`{"case_id":" "}`)}, want: ErrFieldRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := registry.ValidateForDecision(tt.cmd)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidateForDecision_NormalizesEnvelope(t *testing.T) {
	registry := newTestRegistry(t)
	cmd, err := registry.ValidateForDecision(Command{
		AggregateID: " c-1 ",
		Type:        Type(" case.add_defendant "),
		ActorID:     " user-1 ",
		PayloadJSON: []byte(`{"case_id":"c-1"}`),
	})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cmd.AggregateID != "c-1" {
		t.Fatalf("aggregate id = %q, want c-1", cmd.AggregateID)
	}
	if cmd.AggregateType != "case" {
		t.Fatalf("aggregate type = %q, want case", cmd.AggregateType)
	}
	if cmd.ActorID != "user-1" {
		t.Fatalf("actor id = %q, want user-1", cmd.ActorID)
	}
}

func TestDecodePayload(t *testing.T) {
	payload, err := DecodePayload[testPayload](Command{Type: Type("case.add_defendant"), PayloadJSON: []byte(`{"case_id":"c-1"}`)})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.CaseID != "c-1" {
		t.Fatalf("case id = %s, want c-1", payload.CaseID)
	}
	if _, err := DecodePayload[testPayload](Command{PayloadJSON: []byte(`[]`)}); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestListDefinitionsSorted(t *testing.T) {
	registry := newTestRegistry(t)
	if err := registry.Register(Definition{Type: Type("case.add_case_to_crown_court"), Aggregate: "case"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	defs := registry.ListDefinitions()
	if len(defs) != 2 {
		t.Fatalf("definitions = %d, want 2", len(defs))
	}
	if defs[0].Type != Type("case.add_case_to_crown_court") {
		t.Fatalf("first definition = %s", defs[0].Type)
	}
}

func TestScope(t *testing.T) {
	cmd := Command{AggregateID: "c-1", PayloadJSON: []byte(`{"case_id":"c-2"}`)}
	if _, err := Scope(cmd, "case_id"); !errors.Is(err, ErrScopeMismatch) {
		t.Fatalf("err = %v, want ErrScopeMismatch", err)
	}
	cmd.PayloadJSON = []byte(`{"case_id":"c-1","x":1}`)
	scoped, err := Scope(cmd, "case_id")
	if err != nil {
		t.Fatalf("matching scope: %v", err)
	}
	if string(scoped.PayloadJSON) != `{"case_id":"c-1","x":1}` {
		t.Fatalf("payload = %s, want unchanged", scoped.PayloadJSON)
	}

	cmd.PayloadJSON = []byte(`{"x":1}`)
	scoped, err = Scope(cmd, "case_id")
	if err != nil {
		t.Fatalf("absent field: %v", err)
	}
	payload, err := DecodePayload[struct {
		CaseID string `json:"case_id"`
		X      int    `json:"x"`
	}](scoped)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.CaseID != "c-1" || payload.X != 1 {
		t.Fatalf("payload = %+v, want case_id filled and x kept", payload)
	}
}
