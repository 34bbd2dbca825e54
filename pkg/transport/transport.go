// Package transport defines the primitives every hermesvox transport
// adapter implements (§4.3, §4.4): publishing empty/JSON/binary payloads
// to a topic string, and subscribing a handler to every topic matching a
// filter. The two concrete implementations — [mqtt] and [inprocess] — both
// satisfy [Transport], so a facade built against this interface works
// unmodified against either.
package transport

import "context"

// Handler is invoked once per inbound message whose topic matches a
// registered filter. payload is the raw message body; JSON decoding (and
// decode-failure handling per §4.3) is the caller's responsibility, since
// the transport layer itself is payload-format agnostic.
type Handler func(topic string, payload []byte)

// Publisher is the write side of a transport: three primitive operations
// corresponding to the three payload shapes the wire format supports
// (§4.3, §6.1). None of them block the caller on broker acknowledgement;
// they return once the transport has accepted the message for delivery.
type Publisher interface {
	// PublishEmpty publishes a zero-length payload to topic (toggle and
	// request messages carry no body).
	PublishEmpty(ctx context.Context, topic string) error

	// PublishJSON encodes record and publishes the result to topic.
	PublishJSON(ctx context.Context, topic string, record any) error

	// PublishBinary publishes payload verbatim to topic, with no encoding.
	PublishBinary(ctx context.Context, topic string, payload []byte) error
}

// Subscriber is the read side of a transport: register and deregister a
// [Handler] against a topic filter (§4.2's `+`/`#` grammar).
type Subscriber interface {
	// Subscribe registers h against every inbound topic matching filter.
	// Returns [ErrCallbackMissing] if h is nil.
	Subscribe(filter string, h Handler) error

	// Unsubscribe removes every handler previously registered for filter.
	// It is not an error to unsubscribe a filter with no registered
	// handler.
	Unsubscribe(filter string) error
}

// Transport is the full adapter surface a facade implementation is built
// against.
type Transport interface {
	Publisher
	Subscriber

	// Close tears down the adapter: the MQTT connection, or the
	// in-process bus's dispatch workers. In-flight callbacks are allowed
	// to complete; subsequent Publish/Subscribe calls return
	// [ErrTransportUnavailable].
	Close() error
}
