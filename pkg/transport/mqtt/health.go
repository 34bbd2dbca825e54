package mqtt

import (
	"context"
	"fmt"

	"github.com/hermesvox/hermesvox/internal/health"
)

// Checker returns a readiness check reporting whether c's broker
// connection is currently open (§5: once a handler is torn down, further
// publishes fail with [transport.ErrTransportUnavailable] — this surfaces
// that same condition to a process supervisor before a caller ever
// publishes).
func (c *Client) Checker() health.Checker {
	return health.Checker{
		Name: "mqtt",
		Check: func(_ context.Context) error {
			if !c.paho.IsConnectionOpen() {
				return fmt.Errorf("mqtt: broker connection is not open")
			}
			return nil
		},
	}
}
