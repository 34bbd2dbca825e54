// Package observe provides application-wide observability primitives for
// hermesvox: OpenTelemetry metrics, distributed tracing, and structured
// logging glue.
//
// Metrics are recorded through the OpenTelemetry Metrics API. A Prometheus
// exporter bridge is available via [InitProvider] so that metrics can still be
// scraped via the standard /metrics endpoint. A package-level default
// [Metrics] instance ([DefaultMetrics]) is provided for convenience; tests
// should use [NewMetrics] with a custom [metric.MeterProvider] to avoid
// cross-test pollution.
package observe

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name used for all hermesvox metrics.
const meterName = "github.com/hermesvox/hermesvox"

// Metrics holds all OpenTelemetry metric instruments used by the transport
// and facade layers. All fields are safe for concurrent use — the underlying
// OTel types handle their own synchronisation.
type Metrics struct {
	// DispatchDuration tracks the time spent delivering an inbound message to
	// every matching subscriber callback.
	DispatchDuration metric.Float64Histogram

	// PublishTotal counts every accepted publish, by component and topic kind.
	PublishTotal metric.Int64Counter

	// PublishErrors counts publishes that failed before being handed to the
	// transport (encode failure, malformed topic, transport unavailable).
	PublishErrors metric.Int64Counter

	// SubscribeTotal counts every successfully registered subscription.
	SubscribeTotal metric.Int64Counter

	// MessagesDropped counts inbound messages dropped because decoding failed
	// (§4.3: decode failures are logged and swallowed, never surfaced).
	MessagesDropped metric.Int64Counter

	// ActiveSubscriptions tracks the number of live handler-registry entries.
	ActiveSubscriptions metric.Int64UpDownCounter

	// MQTTReconnects counts paho OnReconnecting/OnConnectionLost events,
	// recovered from the original implementation's reconnection_counter
	// (see SPEC_FULL.md, Supplemented features). Observation only — it never
	// gates behaviour.
	MQTTReconnects metric.Int64Counter
}

// latencyBuckets defines histogram bucket boundaries (in seconds) for
// dispatch latency, which is expected to be sub-millisecond to low-millisecond.
var latencyBuckets = []float64{
	0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1,
}

// NewMetrics creates a fully initialised [Metrics] struct using the given
// [metric.MeterProvider]. Returns an error if any instrument creation fails.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.DispatchDuration, err = m.Float64Histogram("hermesvox.dispatch.duration",
		metric.WithDescription("Latency of delivering one inbound message to its matching subscribers."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.PublishTotal, err = m.Int64Counter("hermesvox.publish.total",
		metric.WithDescription("Total accepted publishes by component and topic kind."),
	); err != nil {
		return nil, err
	}
	if met.PublishErrors, err = m.Int64Counter("hermesvox.publish.errors",
		metric.WithDescription("Total publish failures by component and error kind."),
	); err != nil {
		return nil, err
	}
	if met.SubscribeTotal, err = m.Int64Counter("hermesvox.subscribe.total",
		metric.WithDescription("Total successfully registered subscriptions by component."),
	); err != nil {
		return nil, err
	}
	if met.MessagesDropped, err = m.Int64Counter("hermesvox.messages.dropped",
		metric.WithDescription("Total inbound messages dropped due to decode failure."),
	); err != nil {
		return nil, err
	}
	if met.ActiveSubscriptions, err = m.Int64UpDownCounter("hermesvox.subscriptions.active",
		metric.WithDescription("Number of currently registered handler-registry entries."),
	); err != nil {
		return nil, err
	}
	if met.MQTTReconnects, err = m.Int64Counter("hermesvox.mqtt.reconnects",
		metric.WithDescription("Total MQTT reconnect attempts observed by the transport adapter."),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// defaultMetrics is the lazily-initialised package-level Metrics instance.
var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level [Metrics] instance, creating it on
// first call using [otel.GetMeterProvider]. Subsequent calls return the same
// pointer. Panics if instrument creation fails (should not happen with the
// global provider).
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// Attr is a convenience alias for [attribute.String] to reduce verbosity at
// call sites.
func Attr(key, value string) attribute.KeyValue {
	return attribute.String(key, value)
}

// RecordPublish is a convenience method that records a successful publish.
func (m *Metrics) RecordPublish(ctx context.Context, component, topicKind string) {
	m.PublishTotal.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("component", component),
			attribute.String("topic_kind", topicKind),
		),
	)
}

// RecordPublishError is a convenience method that records a failed publish.
func (m *Metrics) RecordPublishError(ctx context.Context, component, kind string) {
	m.PublishErrors.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("component", component),
			attribute.String("kind", kind),
		),
	)
}

// RecordSubscribe is a convenience method that records a successful subscribe
// and increments the active-subscription gauge.
func (m *Metrics) RecordSubscribe(ctx context.Context, component string) {
	m.SubscribeTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("component", component)))
	m.ActiveSubscriptions.Add(ctx, 1)
}

// RecordMessageDropped is a convenience method that records an inbound
// decode failure.
func (m *Metrics) RecordMessageDropped(ctx context.Context, topic string) {
	m.MessagesDropped.Add(ctx, 1, metric.WithAttributes(attribute.String("topic", topic)))
}
