package http

import "time"

const (
	// DefaultTimeout bounds a single backend call. Turn handling waits on
	// these calls synchronously, so keep it well under the gateway timeout.
	DefaultTimeout = 15 * time.Second
	// DefaultRetries is the number of retries on transport errors and 5xx.
	DefaultRetries = 2
	// DefaultRetryWait is the wait between retries.
	DefaultRetryWait = 500 * time.Millisecond
)

// DefaultConfig returns the ClientConfig used by the backend service clients.
func DefaultConfig() ClientConfig {
	return ClientConfig{
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
	}
}
