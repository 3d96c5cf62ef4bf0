package intentsrv

import "context"

// IIntent defines the interface for the intent classification service client.
// Implementations are safe for concurrent use.
type IIntent interface {
	Classify(ctx context.Context, input ClassifyInput) (Classification, error)
}

// New creates a new intent service client. Returns the interface.
func New(cfg IntentConfig) IIntent {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = defaultHTTPClient()
	}
	return &intentImpl{
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}
}
