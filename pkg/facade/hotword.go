package facade

import (
	"context"

	"github.com/hermesvox/hermesvox/pkg/ontology"
	"github.com/hermesvox/hermesvox/pkg/topic"
	"github.com/hermesvox/hermesvox/pkg/transport"
)

// HotwordClient is the consumer-side view of the hotword component
// (§4.5): it asks the hotword engine to toggle and listens for
// detections.
type HotwordClient interface {
	ComponentClient
	ToggleableClient
	// SubscribeDetected registers cb for detections of a single model id.
	SubscribeDetected(modelId string, cb func(ontology.HotwordDetected)) error
	// SubscribeAllDetected registers cb for detections of any model id.
	SubscribeAllDetected(cb func(ontology.HotwordDetected)) error
}

// HotwordBackend is the dual of [HotwordClient]: implemented by the
// hotword engine itself.
type HotwordBackend interface {
	ComponentBackend
	ToggleableBackend
	// PublishDetected announces a detection of modelId.
	PublishDetected(ctx context.Context, modelId string, msg ontology.HotwordDetected) error
}

// Hotword is the single concrete type satisfying both [HotwordClient] and
// [HotwordBackend], backed by any [transport.Transport].
type Hotword struct {
	*Base
	componentMeta
	toggleable
}

// NewHotword constructs a [Hotword] facade over t.
func NewHotword(t transport.Transport, opts ...Option) *Hotword {
	b := NewBase(t, opts...)
	return &Hotword{
		Base:          b,
		componentMeta: newComponentMeta(b, ontology.ComponentHotword, ""),
		toggleable:    newToggleable(b, topic.KindHotwordToggleOn, topic.KindHotwordToggleOff),
	}
}

func (h *Hotword) SubscribeDetected(modelId string, cb func(ontology.HotwordDetected)) error {
	return subscribeJSON(h.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindHotwordDetected, ModelId: modelId}), cb)
}

func (h *Hotword) SubscribeAllDetected(cb func(ontology.HotwordDetected)) error {
	return subscribeJSON(h.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindHotwordDetected, ModelId: "+"}), cb)
}

func (h *Hotword) PublishDetected(ctx context.Context, modelId string, msg ontology.HotwordDetected) error {
	if err := validateIdentifiers(modelId); err != nil {
		return err
	}
	return publishJSON(h.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindHotwordDetected, ModelId: modelId}), msg)
}

var (
	_ HotwordClient  = (*Hotword)(nil)
	_ HotwordBackend = (*Hotword)(nil)
)
