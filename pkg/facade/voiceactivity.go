package facade

import (
	"context"

	"github.com/hermesvox/hermesvox/pkg/ontology"
	"github.com/hermesvox/hermesvox/pkg/topic"
	"github.com/hermesvox/hermesvox/pkg/transport"
)

// VoiceActivityClient is the consumer-side view of the voice-activity
// detector (§4.5): it listens for VAD up/down edges, per-site or across
// every site.
type VoiceActivityClient interface {
	SubscribeVadUp(siteId string, cb func(ontology.VadUp)) error
	SubscribeAllVadUp(cb func(ontology.VadUp)) error
	SubscribeVadDown(siteId string, cb func(ontology.VadDown)) error
	SubscribeAllVadDown(cb func(ontology.VadDown)) error
}

// VoiceActivityBackend is the dual of [VoiceActivityClient]: implemented
// by the voice-activity detector itself.
type VoiceActivityBackend interface {
	PublishVadUp(ctx context.Context, msg ontology.VadUp) error
	PublishVadDown(ctx context.Context, msg ontology.VadDown) error
}

// VoiceActivity is the single concrete type satisfying both
// [VoiceActivityClient] and [VoiceActivityBackend].
type VoiceActivity struct {
	*Base
}

// NewVoiceActivity constructs a [VoiceActivity] facade over t.
func NewVoiceActivity(t transport.Transport, opts ...Option) *VoiceActivity {
	return &VoiceActivity{Base: NewBase(t, opts...)}
}

func (v *VoiceActivity) SubscribeVadUp(siteId string, cb func(ontology.VadUp)) error {
	return subscribeJSON(v.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindVadUp, SiteId: siteId}), cb)
}

func (v *VoiceActivity) SubscribeAllVadUp(cb func(ontology.VadUp)) error {
	return subscribeJSON(v.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindVadUp, SiteId: "+"}), cb)
}

func (v *VoiceActivity) SubscribeVadDown(siteId string, cb func(ontology.VadDown)) error {
	return subscribeJSON(v.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindVadDown, SiteId: siteId}), cb)
}

func (v *VoiceActivity) SubscribeAllVadDown(cb func(ontology.VadDown)) error {
	return subscribeJSON(v.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindVadDown, SiteId: "+"}), cb)
}

func (v *VoiceActivity) PublishVadUp(ctx context.Context, msg ontology.VadUp) error {
	if err := validateIdentifiers(msg.SiteId); err != nil {
		return err
	}
	return publishJSON(v.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindVadUp, SiteId: msg.SiteId}), msg)
}

func (v *VoiceActivity) PublishVadDown(ctx context.Context, msg ontology.VadDown) error {
	if err := validateIdentifiers(msg.SiteId); err != nil {
		return err
	}
	return publishJSON(v.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindVadDown, SiteId: msg.SiteId}), msg)
}

var (
	_ VoiceActivityClient  = (*VoiceActivity)(nil)
	_ VoiceActivityBackend = (*VoiceActivity)(nil)
)
