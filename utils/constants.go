// File: utils/constants.go
package utils

import "time"

// RateLimitKeyPrefix is the prefix used for Redis booking rate-limit keys.
const RateLimitKeyPrefix = "ratelimit:booking:"

// ShutdownTimeout bounds graceful shutdown of the HTTP server and the janitor.
const ShutdownTimeout = 5 * time.Second

// GenericBookingFailure is the only message a caller sees for unexpected errors.
const GenericBookingFailure = "Failed to process booking. Please try again."
