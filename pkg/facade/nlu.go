package facade

import (
	"context"

	"github.com/hermesvox/hermesvox/pkg/ontology"
	"github.com/hermesvox/hermesvox/pkg/topic"
	"github.com/hermesvox/hermesvox/pkg/transport"
)

// NluClient is the consumer-side view of the natural-language-understanding
// component (§4.5): it asks for intent resolution and consumes the results.
type NluClient interface {
	ComponentClient
	PublishQuery(ctx context.Context, msg ontology.NluQuery) error
	PublishPartialQuery(ctx context.Context, msg ontology.NluSlotQuery) error
	PublishComponentReload(ctx context.Context) error
	SubscribeSlotParsed(cb func(ontology.NluSlot)) error
	SubscribeIntentParsed(cb func(ontology.NluIntentMessage)) error
	SubscribeIntentNotRecognized(cb func(ontology.NluIntentNotRecognized)) error
}

// NluBackend is the dual of [NluClient]: implemented by the NLU engine
// itself.
type NluBackend interface {
	ComponentBackend
	SubscribeQuery(cb func(ontology.NluQuery)) error
	SubscribePartialQuery(cb func(ontology.NluSlotQuery)) error
	SubscribeComponentReload(cb func()) error
	PublishSlotParsed(ctx context.Context, msg ontology.NluSlot) error
	PublishIntentParsed(ctx context.Context, msg ontology.NluIntentMessage) error
	PublishIntentNotRecognized(ctx context.Context, msg ontology.NluIntentNotRecognized) error
}

// Nlu is the single concrete type satisfying both [NluClient] and
// [NluBackend], backed by any [transport.Transport].
type Nlu struct {
	*Base
	componentMeta
}

// NewNlu constructs an [Nlu] facade over t.
func NewNlu(t transport.Transport, opts ...Option) *Nlu {
	b := NewBase(t, opts...)
	return &Nlu{
		Base:          b,
		componentMeta: newComponentMeta(b, ontology.ComponentNLU, ""),
	}
}

func (n *Nlu) PublishQuery(ctx context.Context, msg ontology.NluQuery) error {
	return publishJSON(n.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindNluQuery}), msg)
}

func (n *Nlu) SubscribeQuery(cb func(ontology.NluQuery)) error {
	return subscribeJSON(n.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindNluQuery}), cb)
}

func (n *Nlu) PublishPartialQuery(ctx context.Context, msg ontology.NluSlotQuery) error {
	return publishJSON(n.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindNluPartialQuery}), msg)
}

func (n *Nlu) SubscribePartialQuery(cb func(ontology.NluSlotQuery)) error {
	return subscribeJSON(n.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindNluPartialQuery}), cb)
}

func (n *Nlu) PublishComponentReload(ctx context.Context) error {
	return publishEmpty(n.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindNluReload}))
}

func (n *Nlu) SubscribeComponentReload(cb func()) error {
	return subscribeEmpty(n.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindNluReload}), cb)
}

func (n *Nlu) SubscribeSlotParsed(cb func(ontology.NluSlot)) error {
	return subscribeJSON(n.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindNluSlotParsed}), cb)
}

func (n *Nlu) PublishSlotParsed(ctx context.Context, msg ontology.NluSlot) error {
	return publishJSON(n.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindNluSlotParsed}), msg)
}

func (n *Nlu) SubscribeIntentParsed(cb func(ontology.NluIntentMessage)) error {
	return subscribeJSON(n.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindNluIntentParsed}), cb)
}

func (n *Nlu) PublishIntentParsed(ctx context.Context, msg ontology.NluIntentMessage) error {
	return publishJSON(n.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindNluIntentParsed}), msg)
}

func (n *Nlu) SubscribeIntentNotRecognized(cb func(ontology.NluIntentNotRecognized)) error {
	return subscribeJSON(n.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindNluIntentNotRecognized}), cb)
}

func (n *Nlu) PublishIntentNotRecognized(ctx context.Context, msg ontology.NluIntentNotRecognized) error {
	return publishJSON(n.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindNluIntentNotRecognized}), msg)
}

var (
	_ NluClient  = (*Nlu)(nil)
	_ NluBackend = (*Nlu)(nil)
)
