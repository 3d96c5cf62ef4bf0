package intentsrv

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout for the intent service.
	DefaultTimeout = 10 * time.Second
	// DefaultRetries is the default number of retries.
	DefaultRetries = 2
	// DefaultRetryWait is the default wait between retries.
	DefaultRetryWait = 500 * time.Millisecond
)

// PathClassify is the classification endpoint path.
const PathClassify = "/api/v1/intent/classify"
