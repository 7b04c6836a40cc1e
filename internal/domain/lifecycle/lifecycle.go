// Package lifecycle holds shared start/stop bounds for long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop step (ping, shutdown, bucket close).
const DefaultTimeout = 10 * time.Second
