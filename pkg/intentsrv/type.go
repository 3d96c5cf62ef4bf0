package intentsrv

import pkghttp "assistant-srv/pkg/http"

// IntentConfig holds configuration for the intent service client.
type IntentConfig struct {
	BaseURL    string
	HTTPClient pkghttp.IClient
}

// ClassifyInput is one classification request.
type ClassifyInput struct {
	Text    string   `json:"text"`
	History []string `json:"history,omitempty"`
}

// Classification is the service verdict for one text.
type Classification struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

// intentImpl implements IIntent.
type intentImpl struct {
	baseURL    string
	httpClient pkghttp.IClient
}
