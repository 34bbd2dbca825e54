package topic

import "errors"

// ErrMalformedTopic is returned when a topic string does not parse, or an
// identifier intended for embedding in a topic contains a character the
// grammar forbids (§7).
var ErrMalformedTopic = errors.New("topic: malformed topic")
