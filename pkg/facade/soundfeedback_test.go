package facade_test

import (
	"context"
	"testing"
	"time"

	"github.com/hermesvox/hermesvox/pkg/facade"
	"github.com/hermesvox/hermesvox/pkg/transport/inprocess"
)

func TestSoundFeedback_Toggle(t *testing.T) {
	t.Parallel()
	bus := inprocess.NewBus()
	defer bus.Close()
	sf := facade.NewSoundFeedback(bus)

	on := make(chan struct{}, 1)
	off := make(chan struct{}, 1)
	if err := sf.SubscribeToggleOn(func() { on <- struct{}{} }); err != nil {
		t.Fatalf("SubscribeToggleOn: %v", err)
	}
	if err := sf.SubscribeToggleOff(func() { off <- struct{}{} }); err != nil {
		t.Fatalf("SubscribeToggleOff: %v", err)
	}

	if err := sf.PublishToggleOn(context.Background()); err != nil {
		t.Fatalf("PublishToggleOn: %v", err)
	}
	if err := sf.PublishToggleOff(context.Background()); err != nil {
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
