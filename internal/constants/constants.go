package constants

import "time"

// Pagination bounds for feed listings.
const (
	MinPage         = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// DefaultHTTPTimeout bounds every remote API call. There are no automatic
// retries at this layer; a timeout surfaces as a single terminal error.
const DefaultHTTPTimeout = 15 * time.Second
