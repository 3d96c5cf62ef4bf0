package listingsrv

import "context"

// IListing defines the interface for the listing master service client:
// attribute extraction, completeness scoring and posting finalization.
// Implementations are safe for concurrent use.
type IListing interface {
	ExtractAttributes(ctx context.Context, input ExtractInput) (ExtractOutput, error)
	AssessCompleteness(ctx context.Context, input AssessInput) (Assessment, error)
	PostListing(ctx context.Context, input PostInput) (PostOutput, error)
}

// New creates a new listing service client. Returns the interface.
func New(cfg ListingConfig) IListing {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = defaultHTTPClient()
	}
	return &listingImpl{
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}
}
