package intentsrv

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

// Classify returns the intent label and confidence for a text.
func (c *intentImpl) Classify(ctx context.Context, input ClassifyInput) (Classification, error) {
	url := c.baseURL + PathClassify

	body, statusCode, err := c.httpClient.Post(ctx, url, input, nil)
	if err != nil {
		return Classification{}, fmt.Errorf("failed to classify intent: %w", err)
	}
	if statusCode != http.StatusOK {
		return Classification{}, fmt.Errorf("unexpected status code: %d", statusCode)
	}

	var out Classification
	if err := json.Unmarshal(body, &out); err != nil {
		return Classification{}, fmt.Errorf("failed to unmarshal classification: %w", err)
	}
	return out, nil
}
