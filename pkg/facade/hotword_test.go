package facade_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hermesvox/hermesvox/pkg/facade"
	"github.com/hermesvox/hermesvox/pkg/ontology"
	"github.com/hermesvox/hermesvox/pkg/topic"
	"github.com/hermesvox/hermesvox/pkg/transport/inprocess"
)

func TestHotword_DetectedPerModelAndWildcard(t *testing.T) {
	t.Parallel()
	bus := inprocess.NewBus()
	defer bus.Close()
	h := facade.NewHotword(bus)

	hey := make(chan ontology.HotwordDetected, 1)
	if err := h.SubscribeDetected("hey_hermes", func(m ontology.HotwordDetected) { hey <- m }); err != nil {
		t.Fatalf("SubscribeDetected: %v", err)
	}
	if err := h.SubscribeDetected("other_model", func(ontology.HotwordDetected) {
		t.Error("other_model subscriber should not fire for a hey_hermes publish")
	}); err != nil {
		t.Fatalf("SubscribeDetected: %v", err)
	}
	all := make(chan ontology.HotwordDetected, 1)
	if err := h.SubscribeAllDetected(func(m ontology.HotwordDetected) { all <- m }); err != nil {
		t.Fatalf("SubscribeAllDetected: %v", err)
	}

	msg := ontology.HotwordDetected{SiteId: "kitchen", ModelId: "hey_hermes"}
	if err := h.PublishDetected(context.Background(), "hey_hermes", msg); err != nil {
		t.Fatalf("PublishDetected: %v", err)
	}

	select {
	case got := <-hey:
		if got.SiteId != "kitchen" {
			t.Errorf("siteId = %q", got.SiteId)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for per-model detection")
	}
	select {
	case got := <-all:
		if got.ModelId != "hey_hermes" {
			t.Errorf("modelId = %q", got.ModelId)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for wildcard detection")
	}
}

// TestHotword_PublishDetectedRejectsForbiddenModelId covers §4.2's
// MUST-refuse invariant: a modelId embedded in a topic segment must not
// contain characters that corrupt the grammar or collide with a wildcard.
func TestHotword_PublishDetectedRejectsForbiddenModelId(t *testing.T) {
	t.Parallel()
	bus := inprocess.NewBus()
	defer bus.Close()
	h := facade.NewHotword(bus)

	msg := ontology.HotwordDetected{SiteId: "kitchen", ModelId: "hey/hermes"}
	if err := h.PublishDetected(context.Background(), "hey/hermes", msg); !errors.Is(err, topic.ErrMalformedTopic) {
		t.Fatalf("PublishDetected with slash-bearing modelId: got %v, want %v", err, topic.ErrMalformedTopic)
	}
}

func TestHotword_Toggle(t *testing.T) {
	t.Parallel()
	bus := inprocess.NewBus()
	defer bus.Close()
	h := facade.NewHotword(bus)

	on := make(chan struct{}, 1)
	off := make(chan struct{}, 1)
	if err := h.SubscribeToggleOn(func() { on <- struct{}{} }); err != nil {
		t.Fatalf("SubscribeToggleOn: %v", err)
	}
	if err := h.SubscribeToggleOff(func() { off <- struct{}{} }); err != nil {
		t.Fatalf("SubscribeToggleOff: %v", err)
	}

	if err := h.PublishToggleOn(context.Background()); err != nil {
		t.Fatalf("PublishToggleOn: %v", err)
	}
	if err := h.PublishToggleOff(context.Background()); err != nil {
		t.Fatalf("PublishToggleOff: %v", err)
	}

	select {
	case <-on:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for toggle on")
	}
	select {
	case <-off:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for toggle off")
	}
}
