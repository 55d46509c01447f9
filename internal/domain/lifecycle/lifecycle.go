// Package lifecycle holds shared constants for process startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown steps (DB ping, HTTP drain).
const DefaultTimeout = 15 * time.Second
