package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/hermesvox/hermesvox/internal/observe"
	"github.com/hermesvox/hermesvox/pkg/topic"
	"github.com/hermesvox/hermesvox/pkg/transport"
)

const component = "mqtt"

// Client is a [transport.Transport] backed by a single paho MQTT
// connection (§4.3). The underlying connection's dial, keep-alive, and
// reconnect behaviour are entirely owned by paho; Client only adds
// routing, size-aware logging, and the publish/subscribe primitives.
type Client struct {
	metrics *observe.Metrics
	logger  *slog.Logger

	paho paho.Client

	mu   sync.RWMutex
	subs []handlerEntry
}

type handlerEntry struct {
	filterStr string
	filter    topic.Filter
	handler   transport.Handler
}

// ClientOption configures a [Client] at construction time.
type ClientOption func(*Client)

// WithMetrics attaches an observability sink. When omitted,
// [observe.DefaultMetrics] is used.
func WithMetrics(m *observe.Metrics) ClientOption {
	return func(c *Client) { c.metrics = m }
}

// WithLogger attaches a structured logger. When omitted, [slog.Default]
// is used.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) { c.logger = l }
}

// NewClient validates opts, dials the configured broker, and returns a
// ready-to-use Client. The dial itself is performed asynchronously by
// paho; NewClient waits for the initial connect attempt to complete (or
// fail) before returning.
func NewClient(opts Options, clientOpts ...ClientOption) (*Client, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	c := &Client{}
	for _, o := range clientOpts {
		o(c)
	}
	if c.metrics == nil {
		c.metrics = observe.DefaultMetrics()
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}

	pahoOpts := paho.NewClientOptions()
	pahoOpts.AddBroker(opts.BrokerAddress)
	pahoOpts.SetClientID(generateClientID())
	pahoOpts.SetCleanSession(true)
	pahoOpts.SetAutoReconnect(true)
	pahoOpts.SetOrderMatters(false)

	if opts.Username != "" {
		pahoOpts.SetUsername(opts.Username)
		pahoOpts.SetPassword(opts.Password)
	}
	if opts.tlsEnabled() {
		tlsCfg, err := opts.tlsConfig()
		if err != nil {
			return nil, err
		}
		pahoOpts.SetTLSConfig(tlsCfg)
	}

	pahoOpts.SetDefaultPublishHandler(c.dispatch)
	pahoOpts.SetOnConnectHandler(func(paho.Client) {
		c.logger.Info("mqtt connected", "broker", opts.BrokerAddress)
	})
	pahoOpts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		c.metrics.MQTTReconnects.Add(context.Background(), 1)
		c.logger.Warn("mqtt connection lost", "error", err)
	})
	pahoOpts.SetReconnectingHandler(func(paho.Client, *paho.ClientOptions) {
		c.metrics.MQTTReconnects.Add(context.Background(), 1)
		c.logger.Info("mqtt reconnecting")
	})

	client := paho.NewClient(pahoOpts)
	token := client.Connect()
	token.Wait()
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt: connect %q: %w", opts.BrokerAddress, err)
	}
	c.paho = client

	return c, nil
}

// dispatch is paho's single global message handler: it fans an inbound
// message out to every registered filter that matches its topic, in
// registration order (§4.3).
func (c *Client) dispatch(_ paho.Client, m paho.Message) {
	t := m.Topic()
	payload := m.Payload()

	ctx, span := observe.StartSpan(context.Background(), "mqtt.dispatch")
	defer span.End()

	c.logMessage(ctx, t, payload)

	c.mu.RLock()
	matched := make([]handlerEntry, 0, len(c.subs))
	for _, e := range c.subs {
		if e.filter.Match(t) {
			matched = append(matched, e)
		}
	}
	c.mu.RUnlock()

	for _, e := range matched {
		e.handler(t, payload)
	}
}

// logMessage implements §4.3's per-topic logging policy: audio-frame
// topics log at trace level (modeled here as slog.LevelDebug-4, since
// log/slog has no native trace level), everything else at debug; payloads
// over truncateLogBytes are summarized rather than logged in full. The
// logger is pulled from ctx via [observe.Logger] so every line carries the
// dispatch span's trace and span IDs for correlation against the broker's
// own logs.
func (c *Client) logMessage(ctx context.Context, t string, payload []byte) {
	level := slog.LevelDebug
	if parsed, ok := topic.Parse(t); ok && parsed.Kind == topic.KindAudioServerAudioFrame {
		level = slog.LevelDebug - 4
	}
	logger := observe.Logger(ctx)

	if len(payload) > truncateLogBytes {
		end := 128
		if end > len(payload) {
			end = len(payload)
		}
		logger.Log(ctx, level, "inbound message", "topic", t, "size", len(payload), "start", payload[:end])
		return
	}
	logger.Log(ctx, level, "inbound message", "topic", t, "payload", payload)
}

func (c *Client) checkSize(payload []byte) error {
	if len(payload) > maxPacketBytes {
		return fmt.Errorf("mqtt: payload of %d bytes exceeds the %d byte ceiling: %w", len(payload), maxPacketBytes, transport.ErrInvalidOption)
	}
	return nil
}

// PublishEmpty implements [transport.Publisher].
func (c *Client) PublishEmpty(ctx context.Context, t string) error {
	return c.publish(ctx, t, nil)
}

// PublishJSON implements [transport.Publisher].
func (c *Client) PublishJSON(ctx context.Context, t string, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		c.metrics.RecordPublishError(ctx, component, "encode")
		return fmt.Errorf("mqtt: encode payload for %q: %w", t, err)
	}
	return c.publish(ctx, t, data)
}

// PublishBinary implements [transport.Publisher].
func (c *Client) PublishBinary(ctx context.Context, t string, payload []byte) error {
	return c.publish(ctx, t, payload)
}

func (c *Client) publish(ctx context.Context, t string, payload []byte) error {
	ctx, span := observe.StartSpan(ctx, "mqtt.publish")
	defer span.End()

	if err := c.checkSize(payload); err != nil {
		c.metrics.RecordPublishError(ctx, component, "size")
		return err
	}
	if !c.paho.IsConnectionOpen() {
		c.metrics.RecordPublishError(ctx, component, "disconnected")
		return fmt.Errorf("mqtt: publish to %q: %w", t, transport.ErrTransportUnavailable)
	}
	token := c.paho.Publish(t, 0, false, payload)
	token.Wait()
	if err := token.Error(); err != nil {
		c.metrics.RecordPublishError(ctx, component, "publish")
		return fmt.Errorf("mqtt: publish to %q: %w", t, err)
	}
	c.metrics.RecordPublish(ctx, component, t)
	return nil
}

// Subscribe implements [transport.Subscriber].
func (c *Client) Subscribe(filter string, h transport.Handler) error {
	if h == nil {
		return fmt.Errorf("mqtt: subscribe %q: %w", filter, transport.ErrCallbackMissing)
	}
	f, err := topic.CompileFilter(filter)
	if err != nil {
		return fmt.Errorf("mqtt: subscribe %q: %w", filter, err)
	}
	if !c.paho.IsConnectionOpen() {
		return fmt.Errorf("mqtt: subscribe %q: %w", filter, transport.ErrTransportUnavailable)
	}

	token := c.paho.Subscribe(filter, 0, nil)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt: subscribe %q: %w", filter, err)
	}

	c.mu.Lock()
	c.subs = append(c.subs, handlerEntry{filterStr: filter, filter: f, handler: h})
	c.mu.Unlock()
	c.metrics.RecordSubscribe(context.Background(), component)
	return nil
}

// Unsubscribe implements [transport.Subscriber].
func (c *Client) Unsubscribe(filter string) error {
	c.mu.Lock()
	kept := c.subs[:0]
	removed := 0
	for _, e := range c.subs {
		if e.filterStr == filter {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	c.subs = kept
	c.mu.Unlock()

	if removed > 0 {
		c.metrics.ActiveSubscriptions.Add(context.Background(), int64(-removed))
	}

	token := c.paho.Unsubscribe(filter)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt: unsubscribe %q: %w", filter, err)
	}
	return nil
}

// Close disconnects from the broker, waiting up to 250ms for in-flight
// publishes to drain (§5).
func (c *Client) Close() error {
	c.paho.Disconnect(250)
	return nil
}
