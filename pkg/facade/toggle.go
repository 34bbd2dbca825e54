package facade

import (
	"context"

	"github.com/hermesvox/hermesvox/pkg/topic"
)

// ToggleableClient is the optional on/off mixin a per-component client
// facade embeds when that component supports being toggled (§4.5).
type ToggleableClient interface {
	PublishToggleOn(ctx context.Context) error
	PublishToggleOff(ctx context.Context) error
}

// ToggleableBackend is the dual of [ToggleableClient].
type ToggleableBackend interface {
	SubscribeToggleOn(cb func()) error
	SubscribeToggleOff(cb func()) error
}

// toggleable implements both [ToggleableClient] and [ToggleableBackend]
// for a fixed pair of on/off topic kinds.
type toggleable struct {
	*Base
	onKind, offKind topic.Kind
}

func newToggleable(b *Base, onKind, offKind topic.Kind) toggleable {
	return toggleable{Base: b, onKind: onKind, offKind: offKind}
}

func (t toggleable) PublishToggleOn(ctx context.Context) error {
	return publishEmpty(t.Base, ctx, topic.Encode(topic.HermesTopic{Kind: t.onKind}))
}

func (t toggleable) PublishToggleOff(ctx context.Context) error {
	return publishEmpty(t.Base, ctx, topic.Encode(topic.HermesTopic{Kind: t.offKind}))
}

func (t toggleable) SubscribeToggleOn(cb func()) error {
	return subscribeEmpty(t.Base, topic.Encode(topic.HermesTopic{Kind: t.onKind}), cb)
}

func (t toggleable) SubscribeToggleOff(cb func()) error {
	return subscribeEmpty(t.Base, topic.Encode(topic.HermesTopic{Kind: t.offKind}), cb)
}
