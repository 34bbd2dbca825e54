package inprocess

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hermesvox/hermesvox/internal/observe"
	"github.com/hermesvox/hermesvox/pkg/topic"
	"github.com/hermesvox/hermesvox/pkg/transport"
)

// component is the fixed observe.Metrics "component" label for every
// instrument this bus records.
const component = "inprocess"

// handlerEntry is one registered subscription: the compiled filter it was
// registered under (for Unsubscribe) and the callback to invoke.
type handlerEntry struct {
	filterStr string
	filter    topic.Filter
	handler   transport.Handler
}

// Bus is an in-process implementation of [transport.Transport]. It never
// dials a network connection: publishes are delivered to matching
// subscribers entirely within the process, one dedicated goroutine per
// exact topic string so that a slow handler on one topic cannot delay
// delivery on another (§4.4, §5).
type Bus struct {
	metrics *observe.Metrics

	mu     sync.RWMutex
	subs   []handlerEntry
	queues map[string]*queue
	closed bool

	wg errgroup.Group
}

// Option configures a [Bus] at construction time.
type Option func(*Bus)

// WithMetrics attaches an observability sink. When omitted, [observe.DefaultMetrics] is used.
func WithMetrics(m *observe.Metrics) Option {
	return func(b *Bus) { b.metrics = m }
}

// NewBus constructs a ready-to-use in-process bus.
func NewBus(opts ...Option) *Bus {
	b := &Bus{
		queues: make(map[string]*queue),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.metrics == nil {
		b.metrics = observe.DefaultMetrics()
	}
	return b
}

// queueFor returns (creating if necessary) the dispatch queue for topic,
// starting its worker goroutine on first use.
func (b *Bus) queueFor(t string) *queue {
	b.mu.Lock()
	defer b.mu.Unlock()
	if q, ok := b.queues[t]; ok {
		return q
	}
	q := newQueue()
	b.queues[t] = q
	b.wg.Go(func() error {
		b.drain(q)
		return nil
	})
	return q
}

// drain runs on a dedicated goroutine per topic, delivering jobs to their
// matched handlers strictly in publish order until the queue is closed and
// empty.
func (b *Bus) drain(q *queue) {
	for {
		j, ok := q.pop()
		if !ok {
			return
		}
		for _, h := range j.handlers {
			h.handler(j.topic, j.payload)
		}
	}
}

func (b *Bus) publish(ctx context.Context, t string, payload []byte) error {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return fmt.Errorf("inprocess: publish to %q: %w", t, transport.ErrTransportUnavailable)
	}
	var matched []handlerEntry
	for _, e := range b.subs {
		if e.filter.Match(t) {
			matched = append(matched, e)
		}
	}
	b.mu.RUnlock()

	if len(matched) == 0 {
		b.metrics.RecordPublish(ctx, component, t)
		return nil
	}

	q := b.queueFor(t)
	q.push(job{topic: t, payload: payload, handlers: matched})
	b.metrics.RecordPublish(ctx, component, t)
	return nil
}

// PublishEmpty implements [transport.Publisher].
func (b *Bus) PublishEmpty(ctx context.Context, t string) error {
	return b.publish(ctx, t, nil)
}

// PublishJSON implements [transport.Publisher].
func (b *Bus) PublishJSON(ctx context.Context, t string, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		b.metrics.RecordPublishError(ctx, component, "encode")
		return fmt.Errorf("inprocess: encode payload for %q: %w", t, err)
	}
	return b.publish(ctx, t, data)
}

// PublishBinary implements [transport.Publisher].
func (b *Bus) PublishBinary(ctx context.Context, t string, payload []byte) error {
	return b.publish(ctx, t, payload)
}

// Subscribe implements [transport.Subscriber].
func (b *Bus) Subscribe(filter string, h transport.Handler) error {
	if h == nil {
		return fmt.Errorf("inprocess: subscribe %q: %w", filter, transport.ErrCallbackMissing)
	}
	f, err := topic.CompileFilter(filter)
	if err != nil {
		return fmt.Errorf("inprocess: subscribe %q: %w", filter, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return fmt.Errorf("inprocess: subscribe %q: %w", filter, transport.ErrTransportUnavailable)
	}
	b.subs = append(b.subs, handlerEntry{filterStr: filter, filter: f, handler: h})
	b.metrics.RecordSubscribe(context.Background(), component)
	return nil
}

// Unsubscribe implements [transport.Subscriber]. It removes every handler
// previously registered under the exact filter string.
func (b *Bus) Unsubscribe(filter string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	kept := b.subs[:0]
	removed := 0
	for _, e := range b.subs {
		if e.filterStr == filter {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	b.subs = kept
	if removed > 0 {
		b.metrics.ActiveSubscriptions.Add(context.Background(), int64(-removed))
	}
	return nil
}

// Close stops accepting new publishes and subscriptions, waits for every
// in-flight and already-queued callback to finish, then returns. It is
// safe to call Close more than once.
func (b *Bus) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	queues := make([]*queue, 0, len(b.queues))
	for _, q := range b.queues {
		queues = append(queues, q)
	}
	b.mu.Unlock()

	for _, q := range queues {
		q.close()
	}
	return b.wg.Wait()
}
