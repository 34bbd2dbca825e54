package facade

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/hermesvox/hermesvox/internal/observe"
	"github.com/hermesvox/hermesvox/pkg/ontology"
	"github.com/hermesvox/hermesvox/pkg/topic"
	"github.com/hermesvox/hermesvox/pkg/transport"
)

// Base is the shared plumbing every per-component facade embeds: a
// transport to publish/subscribe through, plus the logger and metrics
// sink used to report decode failures on the inbound path. It is not
// meant to be used directly; construct one of the per-component facade
// types instead (e.g. [NewHotword]).
type Base struct {
	t       transport.Transport
	metrics *observe.Metrics
	logger  *slog.Logger
}

// Option configures a [Base] at construction time.
type Option func(*Base)

// WithMetrics attaches an observability sink. When omitted,
// [observe.DefaultMetrics] is used.
func WithMetrics(m *observe.Metrics) Option {
	return func(b *Base) { b.metrics = m }
}

// WithLogger attaches a structured logger. When omitted, [slog.Default]
// is used.
func WithLogger(l *slog.Logger) Option {
	return func(b *Base) { b.logger = l }
}

// NewBase wraps t (an *mqtt.Client or an *inprocess.Bus) with the facade
// plumbing. Every per-component facade constructor in this package takes
// the same options and forwards them here.
func NewBase(t transport.Transport, opts ...Option) *Base {
	b := &Base{t: t}
	for _, o := range opts {
		o(b)
	}
	if b.metrics == nil {
		b.metrics = observe.DefaultMetrics()
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	return b
}

// validateIdentifiers checks every id against [topic.ValidateIdentifier],
// returning the first violation wrapped in [topic.ErrMalformedTopic].
// Every facade publish that embeds a user-controlled identifier (siteId,
// requestId, modelId, soundId, streamId, intentName) into a topic string
// calls this before encoding, per §4.2's MUST-refuse invariant.
func validateIdentifiers(ids ...string) error {
	for _, id := range ids {
		if err := topic.ValidateIdentifier(id); err != nil {
			return err
		}
	}
	return nil
}

// publishJSON encodes record and publishes it to topic, wrapped in a span
// so every facade publish is traceable end to end (SPEC_FULL.md's
// observability section).
func publishJSON[T any](b *Base, ctx context.Context, topic string, record T) error {
	ctx, span := observe.StartSpan(ctx, "facade.publish")
	defer span.End()
	err := b.t.PublishJSON(ctx, topic, record)
	recordSpanError(span, err)
	return err
}

// publishEmpty publishes a zero-length payload to topic.
func publishEmpty(b *Base, ctx context.Context, topic string) error {
	ctx, span := observe.StartSpan(ctx, "facade.publish")
	defer span.End()
	err := b.t.PublishEmpty(ctx, topic)
	recordSpanError(span, err)
	return err
}

// publishBinary publishes payload verbatim to topic.
func publishBinary(b *Base, ctx context.Context, topic string, payload []byte) error {
	ctx, span := observe.StartSpan(ctx, "facade.publish")
	defer span.End()
	err := b.t.PublishBinary(ctx, topic, payload)
	recordSpanError(span, err)
	return err
}

// recordSpanError marks span as failed when err is non-nil. It is a no-op
// for the default (noop) tracer, and only does real work once an
// application has installed an SDK tracer provider via
// [observe.InitProvider].
func recordSpanError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// subscribeJSON registers cb to be invoked, decoded as T, for every
// message matching filter. A message that fails to decode is logged and
// dropped rather than delivered (§4.3, §7): it never panics or blocks the
// transport's dispatch path.
func subscribeJSON[T any](b *Base, filter string, cb func(T)) error {
	return b.t.Subscribe(filter, func(topic string, payload []byte) {
		ctx, span := observe.StartSpan(context.Background(), "facade.subscribe")
		defer span.End()

		v, err := ontology.Decode[T](payload)
		if err != nil {
			recordSpanError(span, err)
			b.metrics.RecordMessageDropped(ctx, topic)
			b.logger.Warn("dropping message with malformed payload",
				"topic", topic, "error", err, "trace_id", observe.CorrelationID(ctx))
			return
		}
		cb(v)
	})
}

// subscribeEmpty registers cb to be invoked on every message matching
// filter, ignoring the (expected zero-length) payload.
func subscribeEmpty(b *Base, filter string, cb func()) error {
	return b.t.Subscribe(filter, func(string, []byte) {
		_, span := observe.StartSpan(context.Background(), "facade.subscribe")
		defer span.End()
		cb()
	})
}

// subscribeBinary registers cb to be invoked with the raw payload of
// every message matching filter.
func subscribeBinary(b *Base, filter string, cb func([]byte)) error {
	return b.t.Subscribe(filter, func(_ string, payload []byte) {
		_, span := observe.StartSpan(context.Background(), "facade.subscribe")
		defer span.End()
		cb(payload)
	})
}
