package facade_test

import (
	"context"
	"testing"
	"time"

	"github.com/hermesvox/hermesvox/pkg/facade"
	"github.com/hermesvox/hermesvox/pkg/ontology"
	"github.com/hermesvox/hermesvox/pkg/transport/inprocess"
)

func TestNlu_QueryToIntentParsed(t *testing.T) {
	t.Parallel()
	bus := inprocess.NewBus()
	defer bus.Close()
	backend := facade.NewNlu(bus)
	client := facade.NewNlu(bus)

	queryReceived := make(chan ontology.NluQuery, 1)
	if err := backend.SubscribeQuery(func(q ontology.NluQuery) { queryReceived <- q }); err != nil {
		t.Fatalf("SubscribeQuery: %v", err)
	}

	intentParsed := make(chan ontology.NluIntentMessage, 1)
	if err := client.SubscribeIntentParsed(func(m ontology.NluIntentMessage) { intentParsed <- m }); err != nil {
		t.Fatalf("SubscribeIntentParsed: %v", err)
	}

	id := "q1"
	if err := client.PublishQuery(context.Background(), ontology.NluQuery{Input: "turn on the lights", Id: &id}); err != nil {
		t.Fatalf("PublishQuery: %v", err)
	}

	select {
	case q := <-queryReceived:
		if q.Input != "turn on the lights" {
			t.Errorf("input = %q", q.Input)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for query")
	}

	resolved := ontology.NluIntentMessage{
		Id:    &id,
		Input: "turn on the lights",
		Intent: ontology.NluIntentClassifierResult{
			IntentName:      "TurnOnLights",
			ConfidenceScore: 0.95,
		},
	}
	if err := backend.PublishIntentParsed(context.Background(), resolved); err != nil {
		t.Fatalf("PublishIntentParsed: %v", err)
	}

	select {
	case m := <-intentParsed:
		if m.Intent.IntentName != "TurnOnLights" {
			t.Errorf("intentName = %q", m.Intent.IntentName)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for intent parsed")
	}
}

func TestNlu_IntentNotRecognized(t *testing.T) {
	t.Parallel()
	bus := inprocess.NewBus()
	defer bus.Close()
	backend := facade.NewNlu(bus)
	client := facade.NewNlu(bus)

	got := make(chan ontology.NluIntentNotRecognized, 1)
	if err := client.SubscribeIntentNotRecognized(func(m ontology.NluIntentNotRecognized) { got <- m }); err != nil {
		t.Fatalf("SubscribeIntentNotRecognized: %v", err)
	}

	if err := backend.PublishIntentNotRecognized(context.Background(), ontology.NluIntentNotRecognized{Input: "gibberish"}); err != nil {
		t.Fatalf("PublishIntentNotRecognized: %v", err)
	}

	select {
	case m := <-got:
		if m.Input != "gibberish" {
			t.Errorf("input = %q", m.Input)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for intent-not-recognized")
	}
}
