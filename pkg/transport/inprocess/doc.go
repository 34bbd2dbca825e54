// Package inprocess implements the in-process transport adapter (§4.4): a
// typed message bus that delivers publishes between goroutines in the same
// process without a broker, for tests and same-process deployments.
//
// The bus preserves the ordering guarantees of §5: within one topic, every
// subscriber sees publishes in the order they were made, but publish never
// blocks waiting for delivery, and no ordering is promised across topics.
// Each topic is served by its own dispatch goroutine so that slow
// subscribers on one topic cannot delay delivery on another.
package inprocess
