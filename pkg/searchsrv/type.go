package searchsrv

import pkghttp "assistant-srv/pkg/http"

// SearchConfig holds configuration for the search gateway client.
type SearchConfig struct {
	BaseURL    string
	HTTPClient pkghttp.IClient
}

// SearchInput is one search request.
type SearchInput struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

// Listing is one candidate property returned by the gateway. Schemas vary per
// source site, so unknown attributes are kept loose.
type Listing struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Location     string         `json:"location"`
	District     string         `json:"district"`
	PropertyType string         `json:"property_type"`
	Bedrooms     int            `json:"bedrooms"`
	Price        float64        `json:"price"`
	Attributes   map[string]any `json:"attributes,omitempty"`
}

// searchResponse is the gateway response envelope.
type searchResponse struct {
	Results []Listing `json:"results"`
}

// searchImpl implements ISearch.
type searchImpl struct {
	baseURL    string
	httpClient pkghttp.IClient
}
