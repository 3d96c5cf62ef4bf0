package gemini

import pkghttp "assistant-srv/pkg/http"

// GeminiConfig holds the configuration for the Gemini client.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// GenerateInput is a chat completion request.
type GenerateInput struct {
	System      string
	Messages    []Message
	Temperature float64
}

// Message is one turn in a chat completion request.
type Message struct {
	Role    string // "user" | "assistant"
	Content string
}

// geminiImpl implements IGemini using the Google Gemini API.
type geminiImpl struct {
	apiKey     string
	model      string
	httpClient pkghttp.IClient
}

// Request defines the request body for the Generate Content API.
type Request struct {
	Contents          []Content         `json:"contents"`
	SystemInstruction *Content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

// Content represents a single content block.
type Content struct {
	Parts []Part `json:"parts"`
	Role  string `json:"role,omitempty"`
}

// Part represents a part of the content.
type Part struct {
	Text string `json:"text,omitempty"`
}

// GenerationConfig tunes generation.
type GenerationConfig struct {
	Temperature float64 `json:"temperature,omitempty"`
}

// Response defines the response body from the Generate Content API.
type Response struct {
	Candidates    []Candidate   `json:"candidates"`
	UsageMetadata UsageMetadata `json:"usageMetadata"`
}

// Candidate represents a generated candidate.
type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason"`
	Index        int     `json:"index"`
}

// UsageMetadata represents token usage.
type UsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}
