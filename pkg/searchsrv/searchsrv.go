package searchsrv

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	pkghttp "assistant-srv/pkg/http"
)

func defaultHTTPClient() pkghttp.IClient {
	return pkghttp.NewClient(pkghttp.ClientConfig{
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
	})
}

// Search runs a query against the gateway and returns candidate listings.
// An empty result set is a valid response, not an error.
func (c *searchImpl) Search(ctx context.Context, input SearchInput) ([]Listing, error) {
	if input.Limit <= 0 {
		input.Limit = DefaultLimit
	}
	url := c.baseURL + PathSearch

	body, statusCode, err := c.httpClient.Post(ctx, url, input, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to search listings: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", statusCode)
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal search response: %w", err)
	}
	return resp.Results, nil
}
