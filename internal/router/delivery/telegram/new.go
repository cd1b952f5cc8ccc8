package telegram

import (
	"context"
	"sync"

	"clinic-support-router/internal/router"
	"clinic-support-router/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
	// Drain waits for replies still being processed, or for ctx to end.
	Drain(ctx context.Context) error
}

// Sender delivers a reply to a chat. *telegram.Bot implements it.
type Sender interface {
	SendMessage(ctx context.Context, chatID, replyTo int64, text string) error
}

type handler struct {
	l      log.Logger
	uc     router.Router
	bot    Sender
	secret string

	wg       sync.WaitGroup
	inFlight chan struct{}
}

// New creates a new Telegram delivery handler. An empty secret disables the
// secret token check.
func New(l log.Logger, uc router.Router, bot Sender, secret string) Handler {
	return newHandler(l, uc, bot, secret, maxInFlight)
}

func newHandler(l log.Logger, uc router.Router, bot Sender, secret string, limit int) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		bot:      bot,
		secret:   secret,
		inFlight: make(chan struct{}, limit),
	}
}
