package topic

import "strings"

// Filter is a compiled MQTT-style topic filter supporting the `+`
// (single-segment) and `#` (trailing multi-segment) wildcards (§4.2,
// §4.3). The zero value matches nothing; use [CompileFilter].
type Filter struct {
	segments []string
}

// CompileFilter parses filter into a [Filter]. `#` is only valid as the
// final segment; any other placement is rejected.
func CompileFilter(filter string) (Filter, error) {
	segs := strings.Split(filter, "/")
	for i, s := range segs {
		if s == "#" && i != len(segs)-1 {
			return Filter{}, ErrMalformedTopic
		}
	}
	return Filter{segments: segs}, nil
}

// Match reports whether topic satisfies f. Matching is exact-segment,
// case-sensitive (§4.3): `+` matches exactly one segment, `#` matches the
// remainder of the topic (one or more segments).
func (f Filter) Match(topic string) bool {
	segs := strings.Split(topic, "/")
	return matchSegments(f.segments, segs)
}

func matchSegments(filter, topic []string) bool {
	for i, fs := range filter {
		if fs == "#" {
			return i < len(topic)
		}
		if i >= len(topic) {
			return false
		}
		if fs != "+" && fs != topic[i] {
			return false
		}
	}
	return len(filter) == len(topic)
}
