package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

const (
	defaultAPIURL = "https://api.telegram.org"

	// HeaderSecretToken carries the secret registered with SetWebhook on every update.
	HeaderSecretToken = "X-Telegram-Bot-Api-Secret-Token"
)

var ErrTokenRequired = errors.New("telegram: bot token is required")

// APIError is returned when the Bot API answers with ok=false.
type APIError struct {
	Method      string
	StatusCode  int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram %s failed (%d): %s", e.Method, e.StatusCode, e.Description)
}

// Bot is the Telegram Bot API client.
type Bot struct {
	apiURL     string
	httpClient *http.Client
}

// Config holds bot settings. APIURL and HTTPClient are optional.
type Config struct {
	Token      string
	APIURL     string
	HTTPClient *http.Client
}

// NewBot creates a new Telegram Bot client.
func NewBot(cfg Config) (*Bot, error) {
	if cfg.Token == "" {
		return nil, ErrTokenRequired
	}
	base := cfg.APIURL
	if base == "" {
		base = defaultAPIURL
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	return &Bot{
		apiURL:     fmt.Sprintf("%s/bot%s", base, cfg.Token),
		httpClient: hc,
	}, nil
}

// SetWebhook registers the webhook URL with Telegram. Only message updates are requested.
func (b *Bot) SetWebhook(ctx context.Context, webhookURL, secretToken string) error {
	return b.call(ctx, "setWebhook", setWebhookRequest{
		URL:            webhookURL,
		SecretToken:    secretToken,
		AllowedUpdates: []string{"message"},
	})
}

// SendMessage sends a plain text reply to a Telegram chat.
func (b *Bot) SendMessage(ctx context.Context, chatID, replyTo int64, text string) error {
	return b.call(ctx, "sendMessage", sendMessageRequest{
		ChatID:           chatID,
		Text:             text,
		ReplyToMessageID: replyTo,
	})
}

func (b *Bot) call(ctx context.Context, method string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("telegram %s: marshal: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.apiURL+"/"+method, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, err)
	}
	defer resp.Body.Close()

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return &APIError{Method: method, StatusCode: resp.StatusCode, Description: "undecodable response"}
	}
	if !apiResp.OK {
		return &APIError{Method: method, StatusCode: resp.StatusCode, Description: apiResp.Description}
	}
	return nil
}
