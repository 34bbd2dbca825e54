package mqtt

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
)

// clientIDCounter disambiguates multiple clients started from the same
// process (§4.3: "<exe>|<pid>-<hostname>-<counter>").
var clientIDCounter atomic.Uint64

// generateClientID produces a client identifier unique to this process and
// call, following the scheme of §4.3.
func generateClientID() string {
	exe := "hermesvox"
	if p, err := os.Executable(); err == nil {
		exe = filepath.Base(p)
	}
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	n := clientIDCounter.Add(1)
	return fmt.Sprintf("%s|%d-%s-%d", exe, os.Getpid(), host, n)
}
