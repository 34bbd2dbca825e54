package facade_test

import (
	"bytes"
	"context"
	"crypto/rand"
	"errors"
	"testing"
	"time"

	"github.com/hermesvox/hermesvox/pkg/facade"
	"github.com/hermesvox/hermesvox/pkg/ontology"
	"github.com/hermesvox/hermesvox/pkg/topic"
	"github.com/hermesvox/hermesvox/pkg/transport/inprocess"
)

// TestAudio_PlayBytesBinaryFidelity covers §8 scenario 5: a subscriber
// registered for one site receives byte-identical binary, and a publish
// to a different site never reaches it (§8 "Filter correctness").
func TestAudio_PlayBytesBinaryFidelity(t *testing.T) {
	t.Parallel()
	bus := inprocess.NewBus()
	defer bus.Close()
	a := facade.NewAudio(bus)

	wav := make([]byte, 1<<20)
	if _, err := rand.Read(wav); err != nil {
		t.Fatalf("rand.Read: %v", err)
	}

	got := make(chan []byte, 1)
	if err := a.SubscribePlayBytes("hall", func(requestId string, wavBytes []byte) {
		if requestId != "r1" {
			t.Errorf("requestId = %q", requestId)
		}
		got <- wavBytes
	}); err != nil {
		t.Fatalf("SubscribePlayBytes: %v", err)
	}
	if err := a.SubscribePlayBytes("kitchen", func(string, []byte) {
		t.Error("kitchen subscriber should not fire for a hall publish")
	}); err != nil {
		t.Fatalf("SubscribePlayBytes: %v", err)
	}

	if err := a.PublishPlayBytes(context.Background(), ontology.PlayBytes{Id: "r1", SiteId: "hall", WavBytes: wav}); err != nil {
		t.Fatalf("PublishPlayBytes: %v", err)
	}

	select {
	case gotWav := <-got:
		if !bytes.Equal(gotWav, wav) {
			t.Error("wavBytes not byte-identical")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for PlayBytes delivery")
	}
}

func TestAudio_StreamBytesFidelity(t *testing.T) {
	t.Parallel()
	bus := inprocess.NewBus()
	defer bus.Close()
	a := facade.NewAudio(bus)

	chunk := []byte{1, 2, 3, 4}
	got := make(chan ontology.StreamBytes, 1)
	if err := a.SubscribeStreamBytes("hall", func(m ontology.StreamBytes) { got <- m }); err != nil {
		t.Fatalf("SubscribeStreamBytes: %v", err)
	}

	msg := ontology.StreamBytes{SiteId: "hall", StreamId: "s1", ChunkNumber: 3, IsLastChunk: true, Bytes: chunk}
	if err := a.PublishStreamBytes(context.Background(), msg); err != nil {
		t.Fatalf("PublishStreamBytes: %v", err)
	}

	select {
	case m := <-got:
		if m.StreamId != "s1" || m.ChunkNumber != 3 || !m.IsLastChunk || !bytes.Equal(m.Bytes, chunk) {
			t.Errorf("unexpected stream chunk: %+v", m)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for StreamBytes delivery")
	}
}

// TestAudio_PublishRejectsForbiddenIdentifiers covers §4.2's MUST-refuse
// invariant: a siteId or requestId embedded verbatim in a topic string
// must not carry a character the topic grammar reserves.
func TestAudio_PublishRejectsForbiddenIdentifiers(t *testing.T) {
	t.Parallel()
	bus := inprocess.NewBus()
	defer bus.Close()
	a := facade.NewAudio(bus)

	if err := a.PublishPlayBytes(context.Background(), ontology.PlayBytes{Id: "r1", SiteId: "hall/annex", WavBytes: []byte{1}}); !errors.Is(err, topic.ErrMalformedTopic) {
		t.Fatalf("PublishPlayBytes with slash-bearing siteId: got %v, want %v", err, topic.ErrMalformedTopic)
	}
	if err := a.PublishPlayBytes(context.Background(), ontology.PlayBytes{Id: "r/1", SiteId: "hall", WavBytes: []byte{1}}); !errors.Is(err, topic.ErrMalformedTopic) {
		t.Fatalf("PublishPlayBytes with slash-bearing requestId: got %v, want %v", err, topic.ErrMalformedTopic)
	}
	if err := a.PublishStreamBytes(context.Background(), ontology.StreamBytes{SiteId: "hall", StreamId: "s+1"}); !errors.Is(err, topic.ErrMalformedTopic) {
		t.Fatalf("PublishStreamBytes with wildcard-bearing streamId: got %v, want %v", err, topic.ErrMalformedTopic)
	}
}
