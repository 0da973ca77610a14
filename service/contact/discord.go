package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"discord-webhook-relay/config"
	"discord-webhook-relay/logger"
	"discord-webhook-relay/model"
)

var log = logger.New("contact")

var ErrWebhookURLMissing = errors.New("discord webhook URL is missing")

type IDiscordSender interface {
	SendDiscordMessage(ctx context.Context, message *model.DiscordMessage) ([]byte, error)
}

// DiscordSender executes a Discord webhook once per message.
type DiscordSender struct {
	WebhookURL string
	Username   string
	AvatarURL  string
	Client     *http.Client
}

func NewDiscordSender(cfg *config.Config) (*DiscordSender, error) {
	client := &http.Client{
		Timeout: cfg.DeliveryTimeout,
	}

	if cfg.ProxyURL != "" {
		transport, err := createProxyTransport(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create proxy transport: %w", err)
		}
		client.Transport = transport
	}

	return &DiscordSender{
		WebhookURL: cfg.DiscordWebhookURL,
		Username:   cfg.DiscordUsername,
		AvatarURL:  cfg.DiscordAvatarURL,
		Client:     client,
	}, nil
}

func (d *DiscordSender) SendDiscordMessage(ctx context.Context, message *model.DiscordMessage) ([]byte, error) {
	if d.WebhookURL == "" {
		return nil, ErrWebhookURLMissing
	}

	out := *message
	if out.Username == "" {
		out.Username = d.Username
	}
	if out.AvatarURL == "" {
		out.AvatarURL = d.AvatarURL
	}

	body := new(bytes.Buffer)
	if err := json.NewEncoder(body).Encode(&out); err != nil {
		return nil, fmt.Errorf("failed to encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.WebhookURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	resp, err := d.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send HTTP request: %w", err)
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return text, fmt.Errorf("discord webhook returned %s: %s", resp.Status, text)
	}

	log.Debugf("discord webhook accepted message: %s", resp.Status)
	return text, nil
}
