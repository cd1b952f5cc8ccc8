package telegram

import (
	"context"
	"crypto/subtle"
	"strings"

	"clinic-support-router/pkg/response"
	pkgTelegram "clinic-support-router/pkg/telegram"

	"github.com/gin-gonic/gin"
)

// HandleWebhook acknowledges the update immediately and answers it in the
// background, since an LLM round trip can outlast Telegram's webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if !h.authorized(c.GetHeader(pkgTelegram.HeaderSecretToken)) {
		h.l.Warnf(ctx, "%s: rejected update with bad secret token", LogPrefixWebhook)
		response.Unauthorized(c)
		return
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "%s: failed to parse update: %v", LogPrefixWebhook, err)
		response.Error(c, err, nil)
		return
	}

	msg := update.Message
	if msg == nil || msg.Chat == nil || strings.TrimSpace(msg.Text) == "" {
		response.OK(c, map[string]string{"status": "ignored"})
		return
	}

	select {
	case h.inFlight <- struct{}{}:
	default:
		h.l.Warnf(ctx, "%s: %d updates in flight, refusing update %d", LogPrefixWebhook, cap(h.inFlight), update.UpdateID)
		response.TooManyRequests(c)
		return
	}

	// The request context is cancelled once the response is written.
	bgCtx := context.WithoutCancel(ctx)
	h.wg.Add(1)
	go func() {
		defer func() {
			<-h.inFlight
			h.wg.Done()
		}()
		h.processMessage(bgCtx, msg)
	}()

	response.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *handler) authorized(token string) bool {
	if h.secret == "" {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) == 1
}

func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) {
	text := strings.TrimSpace(msg.Text)

	var reply string
	switch strings.ToLower(strings.Fields(text)[0]) {
	case commandStart:
		reply = msgWelcome
	case commandHelp:
		reply = msgHelp
	default:
		reply = h.uc.Route(ctx, text)
	}

	if err := h.bot.SendMessage(ctx, msg.Chat.ID, msg.MessageID, reply); err != nil {
		h.l.Errorf(ctx, "%s: send to chat %d failed: %v", LogPrefixProcess, msg.Chat.ID, err)
	}
}
