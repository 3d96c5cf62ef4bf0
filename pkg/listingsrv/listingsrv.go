package listingsrv

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

// ExtractAttributes maps free text to canonical structured listing fields.
// The service reports malformed content via an empty Fields, never an error body.
func (c *listingImpl) ExtractAttributes(ctx context.Context, input ExtractInput) (ExtractOutput, error) {
	url := c.baseURL + PathExtract

	body, statusCode, err := c.httpClient.Post(ctx, url, input, nil)
	if err != nil {
		return ExtractOutput{}, fmt.Errorf("failed to extract attributes: %w", err)
	}
	if statusCode != http.StatusOK {
		return ExtractOutput{}, fmt.Errorf("unexpected status code: %d", statusCode)
	}

	var out ExtractOutput
	if err := json.Unmarshal(body, &out); err != nil {
		return ExtractOutput{}, fmt.Errorf("failed to unmarshal extract response: %w", err)
	}
	return out, nil
}

// AssessCompleteness scores the accumulated fields.
func (c *listingImpl) AssessCompleteness(ctx context.Context, input AssessInput) (Assessment, error) {
	url := c.baseURL + PathAssess

	body, statusCode, err := c.httpClient.Post(ctx, url, input, nil)
	if err != nil {
		return Assessment{}, fmt.Errorf("failed to assess completeness: %w", err)
	}
	if statusCode != http.StatusOK {
		return Assessment{}, fmt.Errorf("unexpected status code: %d", statusCode)
	}

	var out Assessment
	if err := json.Unmarshal(body, &out); err != nil {
		return Assessment{}, fmt.Errorf("failed to unmarshal assessment: %w", err)
	}
	return out, nil
}

// PostListing finalizes a listing and returns its reference id.
func (c *listingImpl) PostListing(ctx context.Context, input PostInput) (PostOutput, error) {
	url := c.baseURL + PathFinalize

	body, statusCode, err := c.httpClient.Post(ctx, url, input, nil)
	if err != nil {
		return PostOutput{}, fmt.Errorf("failed to post listing: %w", err)
	}
	if statusCode != http.StatusOK && statusCode != http.StatusCreated {
		return PostOutput{}, fmt.Errorf("unexpected status code: %d", statusCode)
	}

	var out PostOutput
	if err := json.Unmarshal(body, &out); err != nil {
		return PostOutput{}, fmt.Errorf("failed to unmarshal post response: %w", err)
	}
	return out, nil
}
