package engine

import (
	"fmt"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/aggregate"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

// Registries holds the validated command and event contracts together with
// the aggregate bindings that decide them.
type Registries struct {
	Commands *command.Registry
	Events   *event.Registry
	Bindings map[string]aggregate.Binding
}

// Binding returns the binding for aggregateType.
func (r Registries) Binding(aggregateType string) (aggregate.Binding, bool) {
	binding, ok := r.Bindings[aggregateType]
	return binding, ok && binding != nil
}

// BuildRegistries registers every domain and checks that each registered
// command and event belongs to an aggregate with a binding.
func BuildRegistries(domains ...Domain) (Registries, error) {
	if len(domains) == 0 {
		domains = Domains()
	}
	registries := Registries{
		Commands: command.NewRegistry(),
		Events:   event.NewRegistry(),
		Bindings: make(map[string]aggregate.Binding, len(domains)),
	}
	for _, domain := range domains {
		if domain.AggregateType == "" || domain.Binding == nil {
			return Registries{}, fmt.Errorf("domain %q is missing its binding", domain.AggregateType)
		}
		if _, exists := registries.Bindings[domain.AggregateType]; exists {
			return Registries{}, fmt.Errorf("aggregate type already registered: %s", domain.AggregateType)
		}
		registries.Bindings[domain.AggregateType] = domain.Binding()
		if err := domain.RegisterCommands(registries.Commands); err != nil {
			return Registries{}, fmt.Errorf("register %s commands: %w", domain.AggregateType, err)
		}
		if err := domain.RegisterEvents(registries.Events); err != nil {
			return Registries{}, fmt.Errorf("register %s events: %w", domain.AggregateType, err)
		}
	}

	for _, def := range registries.Commands.ListDefinitions() {
		if _, ok := registries.Bindings[def.Aggregate]; !ok {
			return Registries{}, fmt.Errorf("command %s targets unbound aggregate %s", def.Type, def.Aggregate)
		}
	}
	for _, def := range registries.Events.ListDefinitions() {
		if _, ok := registries.Bindings[def.Aggregate]; !ok {
			return Registries{}, fmt.Errorf("event %s owned by unbound aggregate %s", def.Type, def.Aggregate)
		}
	}
	return registries, nil
}
