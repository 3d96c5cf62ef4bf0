package searchsrv

import "context"

// ISearch defines the interface for the property search gateway client.
// Implementations are safe for concurrent use.
type ISearch interface {
	Search(ctx context.Context, input SearchInput) ([]Listing, error)
}

// New creates a new search gateway client. Returns the interface.
func New(cfg SearchConfig) ISearch {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = defaultHTTPClient()
	}
	return &searchImpl{
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}
}
