package facade

import (
	"context"

	"github.com/hermesvox/hermesvox/pkg/ontology"
	"github.com/hermesvox/hermesvox/pkg/topic"
)

// ComponentClient is the version-request / version / error / loaded mixin
// every per-component client facade embeds (§4.5).
type ComponentClient interface {
	// PublishVersionRequest asks the component to announce its version.
	PublishVersionRequest(ctx context.Context) error
	// SubscribeVersion registers cb for every version announcement.
	SubscribeVersion(cb func(ontology.VersionMessage)) error
	// SubscribeError registers cb for every error report.
	SubscribeError(cb func(ontology.ErrorMessage)) error
	// SubscribeLoaded registers cb for every component-loaded announcement.
	SubscribeLoaded(cb func(ontology.ComponentLoadedOnSite)) error
}

// ComponentBackend is the dual of [ComponentClient]: the verbs used by
// the component implementing this role.
type ComponentBackend interface {
	// SubscribeVersionRequest registers cb to run whenever a consumer asks
	// for this component's version.
	SubscribeVersionRequest(cb func()) error
	// PublishVersion announces this component's version.
	PublishVersion(ctx context.Context, msg ontology.VersionMessage) error
	// PublishError reports an error from this component.
	PublishError(ctx context.Context, msg ontology.ErrorMessage) error
	// PublishLoaded announces that this component finished loading on a site.
	PublishLoaded(ctx context.Context, msg ontology.ComponentLoadedOnSite) error
}

// componentMeta implements [ComponentClient] and [ComponentBackend] for a
// fixed (component, siteId) pair. siteId may be empty for components
// whose meta topics are not site-scoped.
type componentMeta struct {
	*Base
	component ontology.Component
	siteId    string
}

func newComponentMeta(b *Base, component ontology.Component, siteId string) componentMeta {
	return componentMeta{Base: b, component: component, siteId: siteId}
}

func (c componentMeta) metaTopic(kind topic.Kind) string {
	return topic.Encode(topic.HermesTopic{Kind: kind, Component: c.component, SiteId: c.siteId})
}

func (c componentMeta) PublishVersionRequest(ctx context.Context) error {
	return publishEmpty(c.Base, ctx, c.metaTopic(topic.KindComponentVersionRequest))
}

func (c componentMeta) SubscribeVersionRequest(cb func()) error {
	return subscribeEmpty(c.Base, c.metaTopic(topic.KindComponentVersionRequest), cb)
}

func (c componentMeta) PublishVersion(ctx context.Context, msg ontology.VersionMessage) error {
	return publishJSON(c.Base, ctx, c.metaTopic(topic.KindComponentVersion), msg)
}

func (c componentMeta) SubscribeVersion(cb func(ontology.VersionMessage)) error {
	return subscribeJSON(c.Base, c.metaTopic(topic.KindComponentVersion), cb)
}

func (c componentMeta) PublishError(ctx context.Context, msg ontology.ErrorMessage) error {
	return publishJSON(c.Base, ctx, c.metaTopic(topic.KindComponentError), msg)
}

func (c componentMeta) SubscribeError(cb func(ontology.ErrorMessage)) error {
	return subscribeJSON(c.Base, c.metaTopic(topic.KindComponentError), cb)
}

func (c componentMeta) PublishLoaded(ctx context.Context, msg ontology.ComponentLoadedOnSite) error {
	return publishJSON(c.Base, ctx, c.metaTopic(topic.KindComponentLoaded), msg)
}

func (c componentMeta) SubscribeLoaded(cb func(ontology.ComponentLoadedOnSite)) error {
	return subscribeJSON(c.Base, c.metaTopic(topic.KindComponentLoaded), cb)
}
