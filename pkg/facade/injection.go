package facade

import (
	"context"

	"github.com/hermesvox/hermesvox/pkg/ontology"
	"github.com/hermesvox/hermesvox/pkg/topic"
	"github.com/hermesvox/hermesvox/pkg/transport"
)

// InjectionClient is the consumer-side view of the injection service
// (§4.5): it asks for vocabulary to be added or reset and listens for
// completion and status reports.
type InjectionClient interface {
	PublishInjectionRequest(ctx context.Context, msg ontology.InjectionRequest) error
	PublishInjectionStatusRequest(ctx context.Context) error
	PublishInjectionResetRequest(ctx context.Context, msg ontology.InjectionResetRequest) error

	SubscribeInjectionStatus(cb func(ontology.InjectionStatus)) error
	SubscribeInjectionComplete(cb func(ontology.InjectionComplete)) error
	SubscribeInjectionResetComplete(cb func(ontology.InjectionResetComplete)) error
}

// InjectionBackend is the dual of [InjectionClient]: implemented by the
// injection service itself.
type InjectionBackend interface {
	SubscribeInjectionRequest(cb func(ontology.InjectionRequest)) error
	SubscribeInjectionStatusRequest(cb func()) error
	SubscribeInjectionResetRequest(cb func(ontology.InjectionResetRequest)) error

	PublishInjectionStatus(ctx context.Context, msg ontology.InjectionStatus) error
	PublishInjectionComplete(ctx context.Context, msg ontology.InjectionComplete) error
	PublishInjectionResetComplete(ctx context.Context, msg ontology.InjectionResetComplete) error
}

// Injection is the single concrete type satisfying both [InjectionClient]
// and [InjectionBackend], backed by any [transport.Transport].
type Injection struct {
	*Base
}

// NewInjection constructs an [Injection] facade over t.
func NewInjection(t transport.Transport, opts ...Option) *Injection {
	return &Injection{Base: NewBase(t, opts...)}
}

func (i *Injection) PublishInjectionRequest(ctx context.Context, msg ontology.InjectionRequest) error {
	return publishJSON(i.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindInjectionPerform}), msg)
}

func (i *Injection) SubscribeInjectionRequest(cb func(ontology.InjectionRequest)) error {
	return subscribeJSON(i.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindInjectionPerform}), cb)
}

func (i *Injection) PublishInjectionStatusRequest(ctx context.Context) error {
	return publishEmpty(i.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindInjectionStatusRequest}))
}

func (i *Injection) SubscribeInjectionStatusRequest(cb func()) error {
	return subscribeEmpty(i.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindInjectionStatusRequest}), cb)
}

func (i *Injection) PublishInjectionResetRequest(ctx context.Context, msg ontology.InjectionResetRequest) error {
	return publishJSON(i.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindInjectionResetRequest}), msg)
}

func (i *Injection) SubscribeInjectionResetRequest(cb func(ontology.InjectionResetRequest)) error {
	return subscribeJSON(i.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindInjectionResetRequest}), cb)
}

func (i *Injection) SubscribeInjectionStatus(cb func(ontology.InjectionStatus)) error {
	return subscribeJSON(i.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindInjectionStatus}), cb)
}

func (i *Injection) PublishInjectionStatus(ctx context.Context, msg ontology.InjectionStatus) error {
	return publishJSON(i.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindInjectionStatus}), msg)
}

func (i *Injection) SubscribeInjectionComplete(cb func(ontology.InjectionComplete)) error {
	return subscribeJSON(i.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindInjectionComplete}), cb)
}

func (i *Injection) PublishInjectionComplete(ctx context.Context, msg ontology.InjectionComplete) error {
	return publishJSON(i.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindInjectionComplete}), msg)
}

func (i *Injection) SubscribeInjectionResetComplete(cb func(ontology.InjectionResetComplete)) error {
	return subscribeJSON(i.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindInjectionResetComplete}), cb)
}

func (i *Injection) PublishInjectionResetComplete(ctx context.Context, msg ontology.InjectionResetComplete) error {
	return publishJSON(i.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindInjectionResetComplete}), msg)
}

var (
	_ InjectionClient  = (*Injection)(nil)
	_ InjectionBackend = (*Injection)(nil)
)
