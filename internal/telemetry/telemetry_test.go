package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
)

func TestAttributesNameService(t *testing.T) {
	found := false
	for _, kv := range Attributes() {
		if kv.Key == attribute.Key("service.name") {
			found = true
			if kv.Value.AsString() != "prismals" {
				t.Errorf("service.name = %q, want prismals", kv.Value.AsString())
			}
		}
	}
	if !found {
		t.Error("Attributes() is missing service.name")
	}
}

func TestTracerWithoutProviderRecordsNothing(t *testing.T) {
	_, span := Tracer("battle").Start(context.Background(), "battle.turn")
	defer span.End()
	if span.IsRecording() {
		t.Error("span should not record before Setup registers a provider")
	}
}

func TestMeterWithoutProvider(t *testing.T) {
	counter, err := Meter("battle").Int64Counter("prismals.turns")
	if err != nil {
		t.Fatalf("Int64Counter() error: %v", err)
	}
	counter.Add(context.Background(), 1)
}
