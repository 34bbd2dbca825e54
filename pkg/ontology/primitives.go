package ontology

import (
	"fmt"
	"time"
)

// SiteId identifies a physical endpoint (a speaker/microphone pair). It is
// an opaque, non-empty UTF-8 string; equality is bytewise.
type SiteId = string

// SessionId identifies a conversational turn or sequence of turns.
type SessionId = string

// RequestId correlates a request with its eventual response. Correlation
// itself is an application concern; the bus only carries the value.
type RequestId = string

// Version is a semantic-version triple.
type Version struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
	Patch int `json:"patch"`
}

// String renders v as "major.minor.patch".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Timestamp is a UTC instant carried on the wire as an RFC 3339 string and
// held in memory as a [time.Time]. Decoding normalizes any valid RFC 3339
// offset to UTC; encoding always emits the "Z" suffix form.
type Timestamp struct {
	time.Time
}

// NewTimestamp returns a Timestamp wrapping t, normalized to UTC.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t.UTC()}
}

// MarshalJSON implements [json.Marshaler], emitting RFC 3339 with a "Z"
// suffix in UTC.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	s := t.Time.UTC().Format(time.RFC3339)
	return []byte(`"` + s + `"`), nil
}

// UnmarshalJSON implements [json.Unmarshaler]. Any RFC 3339 offset is
// accepted and normalized to UTC.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s, err := unquoteString(data)
	if err != nil {
		return fmt.Errorf("ontology: decode timestamp: %w", ErrMalformedPayload)
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("ontology: decode timestamp %q: %w", s, ErrMalformedPayload)
	}
	t.Time = parsed.UTC()
	return nil
}
