package facade

import (
	"context"

	"github.com/hermesvox/hermesvox/pkg/ontology"
	"github.com/hermesvox/hermesvox/pkg/topic"
	"github.com/hermesvox/hermesvox/pkg/transport"
)

// DialogueClient is the consumer-side view of the dialogue manager
// (§4.5): it drives sessions and listens for resolved (or unresolved)
// intents by name or wildcard.
type DialogueClient interface {
	ComponentClient
	ToggleableClient
	PublishStartSession(ctx context.Context, msg ontology.StartSession) error
	PublishContinueSession(ctx context.Context, msg ontology.ContinueSession) error
	PublishEndSession(ctx context.Context, msg ontology.EndSession) error
	PublishConfigure(ctx context.Context, msg ontology.DialogueConfigure) error

	SubscribeSessionStarted(cb func(ontology.SessionStarted)) error
	SubscribeSessionQueued(cb func(ontology.SessionQueued)) error
	SubscribeSessionEnded(cb func(ontology.SessionEnded)) error
	SubscribeIntent(intentName string, cb func(ontology.IntentMessage)) error
	SubscribeIntents(cb func(ontology.IntentMessage)) error
	SubscribeIntentNotRecognized(cb func(ontology.IntentNotRecognizedMessage)) error
}

// DialogueBackend is the dual of [DialogueClient]: implemented by the
// dialogue manager itself.
type DialogueBackend interface {
	ComponentBackend
	ToggleableBackend
	SubscribeStartSession(cb func(ontology.StartSession)) error
	SubscribeContinueSession(cb func(ontology.ContinueSession)) error
	SubscribeEndSession(cb func(ontology.EndSession)) error
	SubscribeConfigure(cb func(ontology.DialogueConfigure)) error

	PublishSessionStarted(ctx context.Context, msg ontology.SessionStarted) error
	PublishSessionQueued(ctx context.Context, msg ontology.SessionQueued) error
	PublishSessionEnded(ctx context.Context, msg ontology.SessionEnded) error
	PublishIntent(ctx context.Context, msg ontology.IntentMessage) error
	PublishIntentNotRecognized(ctx context.Context, msg ontology.IntentNotRecognizedMessage) error
}

// Dialogue is the single concrete type satisfying both [DialogueClient]
// and [DialogueBackend], backed by any [transport.Transport].
type Dialogue struct {
	*Base
	componentMeta
	toggleable
}

// NewDialogue constructs a [Dialogue] facade over t.
func NewDialogue(t transport.Transport, opts ...Option) *Dialogue {
	b := NewBase(t, opts...)
	return &Dialogue{
		Base:          b,
		componentMeta: newComponentMeta(b, ontology.ComponentDialogueManager, ""),
		toggleable:    newToggleable(b, topic.KindDialogueToggleOn, topic.KindDialogueToggleOff),
	}
}

func (d *Dialogue) PublishStartSession(ctx context.Context, msg ontology.StartSession) error {
	return publishJSON(d.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindDialogueStartSession}), msg)
}

func (d *Dialogue) SubscribeStartSession(cb func(ontology.StartSession)) error {
	return subscribeJSON(d.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindDialogueStartSession}), cb)
}

func (d *Dialogue) PublishContinueSession(ctx context.Context, msg ontology.ContinueSession) error {
	return publishJSON(d.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindDialogueContinueSession}), msg)
}

func (d *Dialogue) SubscribeContinueSession(cb func(ontology.ContinueSession)) error {
	return subscribeJSON(d.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindDialogueContinueSession}), cb)
}

func (d *Dialogue) PublishEndSession(ctx context.Context, msg ontology.EndSession) error {
	return publishJSON(d.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindDialogueEndSession}), msg)
}

func (d *Dialogue) SubscribeEndSession(cb func(ontology.EndSession)) error {
	return subscribeJSON(d.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindDialogueEndSession}), cb)
}

func (d *Dialogue) PublishConfigure(ctx context.Context, msg ontology.DialogueConfigure) error {
	return publishJSON(d.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindDialogueConfigure}), msg)
}

func (d *Dialogue) SubscribeConfigure(cb func(ontology.DialogueConfigure)) error {
	return subscribeJSON(d.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindDialogueConfigure}), cb)
}

func (d *Dialogue) SubscribeSessionStarted(cb func(ontology.SessionStarted)) error {
	return subscribeJSON(d.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindDialogueSessionStarted}), cb)
}

func (d *Dialogue) PublishSessionStarted(ctx context.Context, msg ontology.SessionStarted) error {
	return publishJSON(d.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindDialogueSessionStarted}), msg)
}

func (d *Dialogue) SubscribeSessionQueued(cb func(ontology.SessionQueued)) error {
	return subscribeJSON(d.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindDialogueSessionQueued}), cb)
}

func (d *Dialogue) PublishSessionQueued(ctx context.Context, msg ontology.SessionQueued) error {
	return publishJSON(d.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindDialogueSessionQueued}), msg)
}

func (d *Dialogue) SubscribeSessionEnded(cb func(ontology.SessionEnded)) error {
	return subscribeJSON(d.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindDialogueSessionEnded}), cb)
}

func (d *Dialogue) PublishSessionEnded(ctx context.Context, msg ontology.SessionEnded) error {
	return publishJSON(d.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindDialogueSessionEnded}), msg)
}

func (d *Dialogue) SubscribeIntent(intentName string, cb func(ontology.IntentMessage)) error {
	return subscribeJSON(d.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindIntent, IntentName: intentName}), cb)
}

func (d *Dialogue) SubscribeIntents(cb func(ontology.IntentMessage)) error {
	return subscribeJSON(d.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindIntent, IntentName: "+"}), cb)
}

func (d *Dialogue) PublishIntent(ctx context.Context, msg ontology.IntentMessage) error {
	if err := validateIdentifiers(msg.Intent.IntentName); err != nil {
		return err
	}
	return publishJSON(d.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindIntent, IntentName: msg.Intent.IntentName}), msg)
}

func (d *Dialogue) SubscribeIntentNotRecognized(cb func(ontology.IntentNotRecognizedMessage)) error {
	return subscribeJSON(d.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindDialogueIntentNotRecognized}), cb)
}

func (d *Dialogue) PublishIntentNotRecognized(ctx context.Context, msg ontology.IntentNotRecognizedMessage) error {
	return publishJSON(d.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindDialogueIntentNotRecognized}), msg)
}

var (
	_ DialogueClient  = (*Dialogue)(nil)
	_ DialogueBackend = (*Dialogue)(nil)
)
