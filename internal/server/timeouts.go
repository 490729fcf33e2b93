package server

import "time"

const (
	readTimeout        = 5 * time.Second
	idleTimeout        = 60 * time.Second
	minWriteTimeout    = 10 * time.Second
	writeTimeoutMargin = 5 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

// writeTimeoutFor sizes the response deadline so a request can finish one
// upstream store call of the given timeout and still write its body.
func writeTimeoutFor(upstream time.Duration) time.Duration {
	if upstream <= 0 {
		return minWriteTimeout
	}
	if d := upstream + writeTimeoutMargin; d > minWriteTimeout {
		return d
	}
	return minWriteTimeout
}
