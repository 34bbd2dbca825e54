package facade

import (
	"context"
	"strings"

	"github.com/hermesvox/hermesvox/pkg/ontology"
	"github.com/hermesvox/hermesvox/pkg/topic"
	"github.com/hermesvox/hermesvox/pkg/transport"
)

// AudioClient is the consumer-side view of the audio server (§4.5): it
// requests playback of raw and chunked audio, and consumes captured
// frames and replay/playback/stream completions.
type AudioClient interface {
	ComponentClient
	ToggleableClient
	PublishPlayBytes(ctx context.Context, msg ontology.PlayBytes) error
	PublishReplayRequest(ctx context.Context, msg ontology.ReplayRequest) error
	PublishStreamBytes(ctx context.Context, msg ontology.StreamBytes) error

	SubscribeAudioFrame(siteId string, cb func(ontology.AudioFrame)) error
	SubscribeAllAudioFrame(cb func(ontology.AudioFrame)) error
	SubscribeReplayResponse(siteId string, cb func(ontology.AudioFrame)) error
	SubscribeAllReplayResponse(cb func(ontology.AudioFrame)) error
	SubscribePlayFinished(siteId string, cb func(ontology.PlayFinished)) error
	SubscribeAllPlayFinished(cb func(ontology.PlayFinished)) error
	SubscribeStreamFinished(siteId string, cb func(ontology.StreamFinished)) error
	SubscribeAllStreamFinished(cb func(ontology.StreamFinished)) error
}

// AudioBackend is the dual of [AudioClient]: implemented by the audio
// server itself.
type AudioBackend interface {
	ComponentBackend
	ToggleableBackend
	SubscribePlayBytes(siteId string, cb func(requestId string, wavBytes []byte)) error
	SubscribeAllPlayBytes(cb func(siteId, requestId string, wavBytes []byte)) error
	SubscribeReplayRequest(cb func(ontology.ReplayRequest)) error
	SubscribeStreamBytes(siteId string, cb func(ontology.StreamBytes)) error
	SubscribeAllStreamBytes(cb func(ontology.StreamBytes)) error

	PublishAudioFrame(ctx context.Context, msg ontology.AudioFrame) error
	PublishReplayResponse(ctx context.Context, msg ontology.AudioFrame) error
	PublishPlayFinished(ctx context.Context, msg ontology.PlayFinished) error
	PublishStreamFinished(ctx context.Context, msg ontology.StreamFinished) error
}

// Audio is the single concrete type satisfying both [AudioClient] and
// [AudioBackend], backed by any [transport.Transport].
type Audio struct {
	*Base
	componentMeta
	toggleable
}

// NewAudio constructs an [Audio] facade over t.
func NewAudio(t transport.Transport, opts ...Option) *Audio {
	b := NewBase(t, opts...)
	return &Audio{
		Base:          b,
		componentMeta: newComponentMeta(b, ontology.ComponentAudioServer, ""),
		toggleable:    newToggleable(b, topic.KindAudioServerToggleOn, topic.KindAudioServerToggleOff),
	}
}

func (a *Audio) PublishPlayBytes(ctx context.Context, msg ontology.PlayBytes) error {
	if err := validateIdentifiers(msg.SiteId, msg.Id); err != nil {
		return err
	}
	t := topic.Encode(topic.HermesTopic{Kind: topic.KindAudioServerPlayBytes, SiteId: msg.SiteId, RequestId: msg.Id})
	return publishBinary(a.Base, ctx, t, msg.WavBytes)
}

func (a *Audio) SubscribePlayBytes(siteId string, cb func(requestId string, wavBytes []byte)) error {
	filter := topic.Encode(topic.HermesTopic{Kind: topic.KindAudioServerPlayBytes, SiteId: siteId, RequestId: "+"})
	return a.t.Subscribe(filter, func(topicStr string, payload []byte) {
		parsed, ok := topic.Parse(topicStr)
		if !ok {
			return
		}
		cb(parsed.RequestId, payload)
	})
}

func (a *Audio) SubscribeAllPlayBytes(cb func(siteId, requestId string, wavBytes []byte)) error {
	filter := topic.Encode(topic.HermesTopic{Kind: topic.KindAudioServerPlayBytes, SiteId: "+", RequestId: "+"})
	return a.t.Subscribe(filter, func(topicStr string, payload []byte) {
		parsed, ok := topic.Parse(topicStr)
		if !ok {
			return
		}
		cb(parsed.SiteId, parsed.RequestId, payload)
	})
}

func (a *Audio) PublishReplayRequest(ctx context.Context, msg ontology.ReplayRequest) error {
	if err := validateIdentifiers(msg.SiteId); err != nil {
		return err
	}
	return publishJSON(a.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindAudioServerReplayRequest, SiteId: msg.SiteId}), msg)
}

func (a *Audio) SubscribeReplayRequest(cb func(ontology.ReplayRequest)) error {
	filter := topic.Encode(topic.HermesTopic{Kind: topic.KindAudioServerReplayRequest, SiteId: "+"})
	return subscribeJSON(a.Base, filter, cb)
}

func (a *Audio) PublishStreamBytes(ctx context.Context, msg ontology.StreamBytes) error {
	if err := validateIdentifiers(msg.SiteId, msg.StreamId); err != nil {
		return err
	}
	t := topic.Encode(topic.HermesTopic{
		Kind: topic.KindAudioServerStreamBytes, SiteId: msg.SiteId, StreamId: msg.StreamId,
		ChunkNumber: msg.ChunkNumber, IsLastChunk: msg.IsLastChunk,
	})
	return publishBinary(a.Base, ctx, t, msg.Bytes)
}

func (a *Audio) streamBytesSubscribe(filter string, cb func(ontology.StreamBytes)) error {
	return a.t.Subscribe(filter, func(topicStr string, payload []byte) {
		parsed, ok := topic.Parse(topicStr)
		if !ok {
			return
		}
		cb(ontology.StreamBytes{
			SiteId: parsed.SiteId, StreamId: parsed.StreamId,
			ChunkNumber: parsed.ChunkNumber, IsLastChunk: parsed.IsLastChunk, Bytes: payload,
		})
	})
}

func (a *Audio) SubscribeStreamBytes(siteId string, cb func(ontology.StreamBytes)) error {
	filter := topic.Encode(topic.HermesTopic{Kind: topic.KindAudioServerStreamBytes, SiteId: siteId, StreamId: "+", ChunkNumber: 0, IsLastChunk: false})
	filter = withStreamWildcard(filter)
	return a.streamBytesSubscribe(filter, cb)
}

func (a *Audio) SubscribeAllStreamBytes(cb func(ontology.StreamBytes)) error {
	filter := topic.Encode(topic.HermesTopic{Kind: topic.KindAudioServerStreamBytes, SiteId: "+", StreamId: "+", ChunkNumber: 0, IsLastChunk: false})
	filter = withStreamWildcard(filter)
	return a.streamBytesSubscribe(filter, cb)
}

// withStreamWildcard replaces the encoded chunk-number and isLastChunk
// leaf segments of a streamBytes topic with single-segment wildcards,
// since those two fields have no free-form encoding of their own.
func withStreamWildcard(encoded string) string {
	return replaceLastTwoSegments(encoded, "+", "+")
}

func replaceLastTwoSegments(s, a, b string) string {
	segs := strings.Split(s, "/")
	if len(segs) < 2 {
		return s
	}
	segs[len(segs)-2] = a
	segs[len(segs)-1] = b
	return strings.Join(segs, "/")
}

func (a *Audio) SubscribeAudioFrame(siteId string, cb func(ontology.AudioFrame)) error {
	filter := topic.Encode(topic.HermesTopic{Kind: topic.KindAudioServerAudioFrame, SiteId: siteId})
	return a.audioFrameSubscribe(filter, cb)
}

func (a *Audio) SubscribeAllAudioFrame(cb func(ontology.AudioFrame)) error {
	filter := topic.Encode(topic.HermesTopic{Kind: topic.KindAudioServerAudioFrame, SiteId: "+"})
	return a.audioFrameSubscribe(filter, cb)
}

func (a *Audio) audioFrameSubscribe(filter string, cb func(ontology.AudioFrame)) error {
	return a.t.Subscribe(filter, func(topicStr string, payload []byte) {
		parsed, ok := topic.Parse(topicStr)
		if !ok {
			return
		}
		cb(ontology.AudioFrame{SiteId: parsed.SiteId, WavFrame: payload})
	})
}

func (a *Audio) PublishAudioFrame(ctx context.Context, msg ontology.AudioFrame) error {
	if err := validateIdentifiers(msg.SiteId); err != nil {
		return err
	}
	return publishBinary(a.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindAudioServerAudioFrame, SiteId: msg.SiteId}), msg.WavFrame)
}

func (a *Audio) SubscribeReplayResponse(siteId string, cb func(ontology.AudioFrame)) error {
	filter := topic.Encode(topic.HermesTopic{Kind: topic.KindAudioServerReplayResponse, SiteId: siteId})
	return a.audioFrameReplaySubscribe(filter, cb)
}

func (a *Audio) SubscribeAllReplayResponse(cb func(ontology.AudioFrame)) error {
	filter := topic.Encode(topic.HermesTopic{Kind: topic.KindAudioServerReplayResponse, SiteId: "+"})
	return a.audioFrameReplaySubscribe(filter, cb)
}

func (a *Audio) audioFrameReplaySubscribe(filter string, cb func(ontology.AudioFrame)) error {
	return a.t.Subscribe(filter, func(topicStr string, payload []byte) {
		parsed, ok := topic.Parse(topicStr)
		if !ok {
			return
		}
		cb(ontology.AudioFrame{SiteId: parsed.SiteId, WavFrame: payload})
	})
}

func (a *Audio) PublishReplayResponse(ctx context.Context, msg ontology.AudioFrame) error {
	if err := validateIdentifiers(msg.SiteId); err != nil {
		return err
	}
	return publishBinary(a.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindAudioServerReplayResponse, SiteId: msg.SiteId}), msg.WavFrame)
}

func (a *Audio) SubscribePlayFinished(siteId string, cb func(ontology.PlayFinished)) error {
	return subscribeJSON(a.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindAudioServerPlayFinished, SiteId: siteId}), cb)
}

func (a *Audio) SubscribeAllPlayFinished(cb func(ontology.PlayFinished)) error {
	return subscribeJSON(a.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindAudioServerPlayFinished, SiteId: "+"}), cb)
}

func (a *Audio) PublishPlayFinished(ctx context.Context, msg ontology.PlayFinished) error {
	if err := validateIdentifiers(msg.SiteId); err != nil {
		return err
	}
	return publishJSON(a.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindAudioServerPlayFinished, SiteId: msg.SiteId}), msg)
}

func (a *Audio) SubscribeStreamFinished(siteId string, cb func(ontology.StreamFinished)) error {
	return subscribeJSON(a.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindAudioServerStreamFinished, SiteId: siteId}), cb)
}

func (a *Audio) SubscribeAllStreamFinished(cb func(ontology.StreamFinished)) error {
	return subscribeJSON(a.Base, topic.Encode(topic.HermesTopic{Kind: topic.KindAudioServerStreamFinished, SiteId: "+"}), cb)
}

func (a *Audio) PublishStreamFinished(ctx context.Context, msg ontology.StreamFinished) error {
	if err := validateIdentifiers(msg.SiteId); err != nil {
		return err
	}
	return publishJSON(a.Base, ctx, topic.Encode(topic.HermesTopic{Kind: topic.KindAudioServerStreamFinished, SiteId: msg.SiteId}), msg)
}

var (
	_ AudioClient  = (*Audio)(nil)
	_ AudioBackend = (*Audio)(nil)
)
