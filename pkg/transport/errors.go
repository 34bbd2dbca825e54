package transport

import "errors"

// ErrTransportUnavailable is returned by a publish or subscribe call once
// the broker connection is down or the in-process bus has been closed
// (§7).
var ErrTransportUnavailable = errors.New("transport: unavailable")

// ErrInvalidOption is returned when a transport's configuration is
// internally inconsistent (e.g. TLS requested without a hostname, §6.3).
var ErrInvalidOption = errors.New("transport: invalid option")

// ErrLockPoisoned signals that an internal mutex is unusable. This is a
// process-fatal condition; the caller should not retry the operation that
// returned it.
var ErrLockPoisoned = errors.New("transport: lock poisoned")

// ErrCallbackMissing is returned by Subscribe when called with a nil
// handler.
var ErrCallbackMissing = errors.New("transport: callback missing")
