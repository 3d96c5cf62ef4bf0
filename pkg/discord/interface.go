package discord

import "context"

// IDiscord defines the interface for Discord webhook alerting.
// Implementations are safe for concurrent use.
type IDiscord interface {
	SendMessage(ctx context.Context, content string) error
	SendError(ctx context.Context, title, description string) error
	GetWebhookURL() string
	Close() error
}

// New creates a new Discord webhook client. Returns the interface.
func New(webhookID, webhookToken string) (IDiscord, error) {
	if webhookID == "" || webhookToken == "" {
		return nil, errWebhookRequired
	}
	return &discordImpl{
		webhook: webhook{ID: webhookID, Token: webhookToken},
		client:  newHTTPClient(defaultTimeout),
	}, nil
}
