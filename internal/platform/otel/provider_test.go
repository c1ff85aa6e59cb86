package otel

import (
	"context"
	"strings"
	"testing"
)

func TestSetupNoopWhenInactive(t *testing.T) {
	for name, settings := range map[string]Settings{
		"no endpoint": {Enabled: true},
		"disabled":    {Endpoint: "http://localhost:4318", Enabled: false},
	} {
		shutdown, err := Setup(context.Background(), "test-service", settings)
		if err != nil {
			t.Fatalf("%s: setup: %v", name, err)
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if err := shutdown(ctx); err != nil {
			t.Fatalf("%s: noop shutdown: %v", name, err)
		}
	}
}

func TestSetupCreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so nothing is exported.
	shutdown, err := Setup(context.Background(), "test-service", Settings{Endpoint: "http://192.0.2.1:4318", Enabled: true, SampleRatio: 0.5})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestSampler(t *testing.T) {
	if got := sampler(1).Description(); got != "AlwaysOnSampler" {
		t.Fatalf("sampler(1) = %s, want AlwaysOnSampler", got)
	}
	if got := sampler(0.25).Description(); !strings.HasPrefix(got, "ParentBased") {
		t.Fatalf("sampler(0.25) = %s, want parent based", got)
	}
}
