// Package lifecycle holds shared timing constants for startup and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single startup or shutdown step.
const DefaultTimeout = 10 * time.Second
