// Package lifecycle holds shared constants for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful start/stop of a delivery or infra component.
const DefaultTimeout = 10 * time.Second
