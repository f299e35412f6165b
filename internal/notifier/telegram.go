// Package notifier pushes watchlist alerts to Telegram and formats
// analysis snapshots for delivery.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"stockdash/internal/util"
)

const (
	telegramAPI  = "https://api.telegram.org"
	sendAttempts = 3
	sendBackoff  = 2 * time.Second
)

// TelegramNotifier sends messages via the Telegram Bot API. An empty bot
// token disables sending, so callers never need to branch on configuration.
type TelegramNotifier struct {
	BotToken string
	ChatID   string
	BaseURL  string
	Client   *http.Client
}

// NewTelegramNotifier creates a notifier with optional proxy support.
func NewTelegramNotifier(botToken, chatID, proxyURL string) *TelegramNotifier {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &TelegramNotifier{
		BotToken: botToken,
		ChatID:   chatID,
		BaseURL:  telegramAPI,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

// Enabled reports whether a bot token is configured.
func (t *TelegramNotifier) Enabled() bool { return t.BotToken != "" }

// Send delivers one message to the configured chat. Disabled notifiers
// return nil immediately.
func (t *TelegramNotifier) Send(ctx context.Context, text string) error {
	if !t.Enabled() {
		return nil
	}

	body, err := json.Marshal(map[string]string{
		"chat_id":    t.ChatID,
		"text":       text,
		"parse_mode": "HTML",
	})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", t.BaseURL, t.BotToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.Client.Do(req)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram API status %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

// SendWithRetry delivers a message, retrying transient failures with
// doubling backoff.
func (t *TelegramNotifier) SendWithRetry(ctx context.Context, text string) error {
	err := util.Retry(ctx, sendAttempts, sendBackoff, func() error {
		return t.Send(ctx, text)
	})
	if err != nil {
		log.Warn().Err(err).Msg("telegram send gave up")
	}
	return err
}
