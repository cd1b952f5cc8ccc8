package telegram_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clinic-support-router/pkg/telegram"
)

func TestBot(t *testing.T) {
	var lastPath string
	var lastBody map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastPath = r.URL.Path
		lastBody = map[string]any{}
		json.NewDecoder(r.Body).Decode(&lastBody)

		if lastBody["url"] == "cause_error" || lastBody["text"] == "cause_error" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"ok": false, "error_code": 400, "description": "bad request"}`))
			return
		}
		if lastBody["text"] == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"ok": true}`))
	}))
	defer ts.Close()

	bot, err := telegram.NewBot(telegram.Config{Token: "test-token", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	t.Run("SetWebhook Success", func(t *testing.T) {
		if err := bot.SetWebhook(ctx, "https://example.com/webhook/telegram", "s3cret"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lastPath != "/bottest-token/setWebhook" {
			t.Errorf("path = %q", lastPath)
		}
		if lastBody["secret_token"] != "s3cret" {
			t.Errorf("secret_token = %v", lastBody["secret_token"])
		}
	})

	t.Run("SetWebhook API Failed", func(t *testing.T) {
		err := bot.SetWebhook(ctx, "cause_error", "")
		var apiErr *telegram.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got: %v", err)
		}
		if apiErr.StatusCode != http.StatusBadRequest || apiErr.Description != "bad request" {
			t.Errorf("unexpected api error: %+v", apiErr)
		}
	})

	t.Run("SendMessage Success", func(t *testing.T) {
		if err := bot.SendMessage(ctx, 12345, 7, "Hello"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasSuffix(lastPath, "/sendMessage") {
			t.Errorf("path = %q", lastPath)
		}
		if lastBody["chat_id"] != float64(12345) || lastBody["reply_to_message_id"] != float64(7) {
			t.Errorf("unexpected payload: %v", lastBody)
		}
	})

	t.Run("SendMessage HTTP Failed", func(t *testing.T) {
		err := bot.SendMessage(ctx, 12345, 0, "cause_500")
		var apiErr *telegram.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusInternalServerError {
			t.Fatalf("expected 500 APIError, got: %v", err)
		}
	})

	t.Run("Unreachable API", func(t *testing.T) {
		badBot, _ := telegram.NewBot(telegram.Config{Token: "test", APIURL: "http://127.0.0.1:1"})
		if err := badBot.SendMessage(ctx, 12345, 0, "fail"); err == nil {
			t.Errorf("expected network failure")
		}
	})
}

func TestNewBotRequiresToken(t *testing.T) {
	if _, err := telegram.NewBot(telegram.Config{}); !errors.Is(err, telegram.ErrTokenRequired) {
		t.Fatalf("expected ErrTokenRequired, got %v", err)
	}
}
