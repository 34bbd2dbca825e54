package facade

import (
	"context"

	"github.com/hermesvox/hermesvox/pkg/ontology"
	"github.com/hermesvox/hermesvox/pkg/topic"
	"github.com/hermesvox/hermesvox/pkg/transport"
)

// AsrClient is the consumer-side view of the speech recognizer (§4.5): it
// starts/stops listening and consumes transcriptions.
type AsrClient interface {
	ComponentClient
	ToggleableClient
	PublishStartListening(ctx context.Context, msg ontology.AsrStartListening) error
	PublishStopListening(ctx context.Context, siteId ontology.SiteId) error
	PublishComponentReload(ctx context.Context) error
	SubscribeTextCaptured(cb func(ontology.TextCaptured)) error
	SubscribePartialTextCaptured(cb func(ontology.TextCaptured)) error
}

// AsrBackend is the dual of [AsrClient]: implemented by the speech
// recognizer itself.
type AsrBackend interface {
	ComponentBackend
	ToggleableBackend
	SubscribeStartListening(cb func(ontology.AsrStartListening)) error
	SubscribeStopListening(cb func(siteId ontology.SiteId)) error
	SubscribeComponentReload(cb func()) error
	PublishTextCaptured(ctx context.Context, msg ontology.TextCaptured) error
	PublishPartialTextCaptured(ctx context.Context, msg ontology.TextCaptured) error
}

// Asr is the single concrete type satisfying both [AsrClient] and
// [AsrBackend], backed by any [transport.Transport].
type Asr struct {
	*Base
	componentMeta
	toggleable
}

// NewAsr constructs an [Asr] facade over t.
func NewAsr(t transport.Transport, opts ...Option) *Asr {
	b := NewBase(t, opts...)
	return &Asr{
		Base:          b,
		componentMeta: newComponentMeta(b, ontology.ComponentASR, ""),
		toggleable:    newToggleable(b, topic.KindAsrToggleOn, topic.KindAsrToggleOff),
	}
}

func (a *Asr) PublishStartListening(ctx context.Context, msg ontology.AsrStartListening) error {
	return publishJSON(a.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindAsrStartListening}), msg)
}

func (a *Asr) SubscribeStartListening(cb func(ontology.AsrStartListening)) error {
	return subscribeJSON(a.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindAsrStartListening}), cb)
}

// stopListeningPayload carries the siteId of an AsrStopListening message.
// The grammar has no dedicated record for it in §3.3; it reuses
// [ontology.SiteMessage]'s shape without the optional sessionId.
type stopListeningPayload struct {
	SiteId ontology.SiteId `json:"siteId"`
}

func (a *Asr) PublishStopListening(ctx context.Context, siteId ontology.SiteId) error {
	return publishJSON(a.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindAsrStopListening}), stopListeningPayload{SiteId: siteId})
}

func (a *Asr) SubscribeStopListening(cb func(siteId ontology.SiteId)) error {
	return subscribeJSON(a.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindAsrStopListening}), func(p stopListeningPayload) {
		cb(p.SiteId)
	})
}

func (a *Asr) PublishComponentReload(ctx context.Context) error {
	return publishEmpty(a.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindAsrReload}))
}

func (a *Asr) SubscribeComponentReload(cb func()) error {
	return subscribeEmpty(a.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindAsrReload}), cb)
}

func (a *Asr) SubscribeTextCaptured(cb func(ontology.TextCaptured)) error {
	return subscribeJSON(a.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindAsrTextCaptured}), cb)
}

func (a *Asr) PublishTextCaptured(ctx context.Context, msg ontology.TextCaptured) error {
	return publishJSON(a.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindAsrTextCaptured}), msg)
}

func (a *Asr) SubscribePartialTextCaptured(cb func(ontology.TextCaptured)) error {
	return subscribeJSON(a.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindAsrPartialTextCaptured}), cb)
}

func (a *Asr) PublishPartialTextCaptured(ctx context.Context, msg ontology.TextCaptured) error {
	return publishJSON(a.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindAsrPartialTextCaptured}), msg)
}

var (
	_ AsrClient  = (*Asr)(nil)
	_ AsrBackend = (*Asr)(nil)
)
