// Package lifecycle holds shared start/stop settings for process-wide resources.
package lifecycle

import "time"

// DefaultTimeout bounds connect, ping and shutdown of long-lived clients.
const DefaultTimeout = 10 * time.Second
