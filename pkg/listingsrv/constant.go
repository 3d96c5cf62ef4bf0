package listingsrv

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout for the listing service.
	DefaultTimeout = 15 * time.Second
	// DefaultRetries is the default number of retries.
	DefaultRetries = 2
	// DefaultRetryWait is the default wait between retries.
	DefaultRetryWait = 500 * time.Millisecond
)

// API paths.
const (
	PathExtract  = "/api/v1/listings/extract"
	PathAssess   = "/api/v1/listings/completeness"
	PathFinalize = "/api/v1/listings"
)
