package facade

import (
	"context"

	"github.com/hermesvox/hermesvox/pkg/ontology"
	"github.com/hermesvox/hermesvox/pkg/topic"
	"github.com/hermesvox/hermesvox/pkg/transport"
)

// TtsClient is the consumer-side view of the text-to-speech component
// (§4.5): it requests speech and sound registration, and learns when
// playback finishes.
type TtsClient interface {
	ComponentClient
	PublishSay(ctx context.Context, msg ontology.Say) error
	PublishRegisterSound(ctx context.Context, soundId string, wavSound []byte) error
	SubscribeSayFinished(cb func(ontology.SayFinished)) error
}

// TtsBackend is the dual of [TtsClient]: implemented by the TTS engine
// itself.
type TtsBackend interface {
	ComponentBackend
	SubscribeSay(cb func(ontology.Say)) error
	SubscribeRegisterSound(soundId string, cb func(wavSound []byte)) error
	SubscribeAllRegisterSound(cb func(soundId string, wavSound []byte)) error
	PublishSayFinished(ctx context.Context, msg ontology.SayFinished) error
}

// Tts is the single concrete type satisfying both [TtsClient] and
// [TtsBackend], backed by any [transport.Transport].
type Tts struct {
	*Base
	componentMeta
}

// NewTts constructs a [Tts] facade over t.
func NewTts(t transport.Transport, opts ...Option) *Tts {
	b := NewBase(t, opts...)
	return &Tts{
		Base:          b,
		componentMeta: newComponentMeta(b, ontology.ComponentTTS, ""),
	}
}

func (s *Tts) PublishSay(ctx context.Context, msg ontology.Say) error {
	return publishJSON(s.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindTtsSay}), msg)
}

func (s *Tts) SubscribeSay(cb func(ontology.Say)) error {
	return subscribeJSON(s.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindTtsSay}), cb)
}

func (s *Tts) PublishSayFinished(ctx context.Context, msg ontology.SayFinished) error {
	return publishJSON(s.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindTtsSayFinished}), msg)
}

func (s *Tts) SubscribeSayFinished(cb func(ontology.SayFinished)) error {
	return subscribeJSON(s.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindTtsSayFinished}), cb)
}

func (s *Tts) PublishRegisterSound(ctx context.Context, soundId string, wavSound []byte) error {
	if err := validateIdentifiers(soundId); err != nil {
		return err
	}
	return publishBinary(s.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindTtsRegisterSound, SoundId: soundId}), wavSound)
}

func (s *Tts) SubscribeRegisterSound(soundId string, cb func(wavSound []byte)) error {
	return subscribeBinary(s.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindTtsRegisterSound, SoundId: soundId}), cb)
}

func (s *Tts) SubscribeAllRegisterSound(cb func(soundId string, wavSound []byte)) error {
	return s.t.Subscribe(topic.Encode(topic.HermesTopic{Kind: topic.KindTtsRegisterSound, SoundId: "+"}), func(topicStr string, payload []byte) {
		t, ok := topic.Parse(topicStr)
		if !ok {
			return
		}
		cb(t.SoundId, payload)
	})
}

var (
	_ TtsClient  = (*Tts)(nil)
	_ TtsBackend = (*Tts)(nil)
)
