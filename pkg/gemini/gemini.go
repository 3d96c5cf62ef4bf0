package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Generate runs a chat completion against the Generate Content API.
func (g *geminiImpl) Generate(ctx context.Context, input GenerateInput) (string, error) {
	url := fmt.Sprintf("%s/%s:generateContent?key=%s", BaseURL, g.model, g.apiKey)

	req := Request{
		Contents: buildContents(input.Messages),
	}
	if input.System != "" {
		req.SystemInstruction = &Content{Parts: []Part{{Text: input.System}}}
	}
	temperature := input.Temperature
	if temperature <= 0 {
		temperature = DefaultTemperature
	}
	req.GenerationConfig = &GenerationConfig{Temperature: temperature}

	body, statusCode, err := g.httpClient.Post(ctx, url, req, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCallFailed, err)
	}
	if statusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", ErrCallFailed, statusCode, truncate(string(body), 200))
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: unmarshal response: %v", ErrCallFailed, err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return b.String(), nil
}

// buildContents maps chat messages to Gemini contents. The API uses "model"
// for assistant turns.
func buildContents(messages []Message) []Content {
	contents := make([]Content, 0, len(messages))
	for _, m := range messages {
		role := "user"
		if m.Role == "assistant" {
			role = "model"
		}
		contents = append(contents, Content{
			Role:  role,
			Parts: []Part{{Text: m.Content}},
		})
	}
	return contents
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
