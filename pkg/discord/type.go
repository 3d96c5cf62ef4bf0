package discord

import (
	"net/http"
	"time"
)

const (
	defaultTimeout  = 10 * time.Second
	defaultUsername = "assistant-srv"

	colorError = 0xE74C3C
)

// webhook contains webhook information for the Discord API.
type webhook struct {
	ID    string
	Token string
}

// discordImpl implements IDiscord.
type discordImpl struct {
	webhook webhook
	client  *http.Client
}

// embedField represents a field in a Discord embed.
type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// embed represents a Discord embed message.
type embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Fields      []embedField `json:"fields,omitempty"`
}

// webhookPayload represents the payload sent to the Discord webhook.
type webhookPayload struct {
	Content  string  `json:"content,omitempty"`
	Username string  `json:"username,omitempty"`
	Embeds   []embed `json:"embeds,omitempty"`
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
