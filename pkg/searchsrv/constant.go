package searchsrv

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout for the search gateway.
	DefaultTimeout = 15 * time.Second
	// DefaultRetries is the default number of retries.
	DefaultRetries = 2
	// DefaultRetryWait is the default wait between retries.
	DefaultRetryWait = 500 * time.Millisecond
	// DefaultLimit is the default number of results requested.
	DefaultLimit = 20
)

// PathSearch is the search endpoint path.
const PathSearch = "/api/v1/listings/search"
