package ontology

import "github.com/google/uuid"

// NewSessionId generates a fresh, globally unique session identifier. The
// dialogue manager uses this to populate SessionStarted.SessionId when
// starting a session that was not given an explicit id by the requester.
func NewSessionId() SessionId {
	return uuid.NewString()
}

// NewRequestId generates a fresh, globally unique request identifier for
// operations keyed by request id (e.g. playBytes, replayRequest).
func NewRequestId() RequestId {
	return uuid.NewString()
}
