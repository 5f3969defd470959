package repository

import (
	"time"

	"github.com/wb-go/wbf/retry"
)

// readStrategy retries idempotent reads once. Write transactions never
// retry; the capacity arbitration must observe exactly one count per write.
func readStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 2,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}
