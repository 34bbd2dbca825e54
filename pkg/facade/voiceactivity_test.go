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

func TestVoiceActivity_UpDownPerSiteAndWildcard(t *testing.T) {
	t.Parallel()
	bus := inprocess.NewBus()
	defer bus.Close()
	v := facade.NewVoiceActivity(bus)

	up := make(chan ontology.VadUp, 1)
	if err := v.SubscribeVadUp("kitchen", func(m ontology.VadUp) { up <- m }); err != nil {
		t.Fatalf("SubscribeVadUp: %v", err)
	}
	if err := v.SubscribeVadUp("hall", func(ontology.VadUp) {
		t.Error("hall subscriber should not fire for a kitchen publish")
	}); err != nil {
		t.Fatalf("SubscribeVadUp: %v", err)
	}
	allUp := make(chan ontology.VadUp, 1)
	if err := v.SubscribeAllVadUp(func(m ontology.VadUp) { allUp <- m }); err != nil {
		t.Fatalf("SubscribeAllVadUp: %v", err)
	}
	down := make(chan ontology.VadDown, 1)
	if err := v.SubscribeVadDown("kitchen", func(m ontology.VadDown) { down <- m }); err != nil {
		t.Fatalf("SubscribeVadDown: %v", err)
	}

	if err := v.PublishVadUp(context.Background(), ontology.VadUp{SiteId: "kitchen"}); err != nil {
		t.Fatalf("PublishVadUp: %v", err)
	}
	if err := v.PublishVadDown(context.Background(), ontology.VadDown{SiteId: "kitchen"}); err != nil {
		t.Fatalf("PublishVadDown: %v", err)
	}

	select {
	case got := <-up:
		if got.SiteId != "kitchen" {
			t.Errorf("siteId = %q", got.SiteId)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for vad up")
	}
	select {
	case <-allUp:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for wildcard vad up")
	}
	select {
	case got := <-down:
		if got.SiteId != "kitchen" {
			t.Errorf("siteId = %q", got.SiteId)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for vad down")
	}
}

// TestVoiceActivity_PublishRejectsForbiddenSiteId covers §4.2's
// MUST-refuse invariant for both VadUp and VadDown.
func TestVoiceActivity_PublishRejectsForbiddenSiteId(t *testing.T) {
	t.Parallel()
	bus := inprocess.NewBus()
	defer bus.Close()
	v := facade.NewVoiceActivity(bus)

	if err := v.PublishVadUp(context.Background(), ontology.VadUp{SiteId: "a/b"}); !errors.Is(err, topic.ErrMalformedTopic) {
		t.Fatalf("PublishVadUp with slash-bearing siteId: got %v, want %v", err, topic.ErrMalformedTopic)
	}
	if err := v.PublishVadDown(context.Background(), ontology.VadDown{SiteId: "+"}); !errors.Is(err, topic.ErrMalformedTopic) {
		t.Fatalf("PublishVadDown with wildcard siteId: got %v, want %v", err, topic.ErrMalformedTopic)
	}
}
