package main

import (
	"context"
	"fmt"

	_ "clinic-support-router/docs" // Swagger docs
	"clinic-support-router/internal/httpserver"
	"clinic-support-router/internal/router"
	routerHTTP "clinic-support-router/internal/router/delivery/http"
	routerTelegram "clinic-support-router/internal/router/delivery/telegram"
	"clinic-support-router/pkg/telegram"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the router over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap()
			if err != nil {
				return err
			}
			if port != 0 {
				a.cfg.HTTPServer.Port = port
			}

			ctx := cmd.Context()
			a.l.Info(ctx, "Starting clinic support router...")
			a.l.Infof(ctx, "Environment: %s", a.cfg.Environment.Name)

			r, backend, err := a.router(ctx)
			if err != nil {
				return err
			}

			tgHandler, err := a.telegram(ctx, r)
			if err != nil {
				return err
			}

			srv, err := httpserver.New(a.l, httpserver.Config{
				Port:            a.cfg.HTTPServer.Port,
				Mode:            a.cfg.HTTPServer.Mode,
				Environment:     a.cfg.Environment.Name,
				RateLimitPerMin: a.cfg.RateLimit.PerMin,
				RouterHandler:   routerHTTP.New(a.l, r),
				TelegramHandler: tgHandler,
				Backend:         fmt.Sprintf("%s (%s)", backend.Name(), backend.Model()),
			})
			if err != nil {
				return fmt.Errorf("init HTTP server: %w", err)
			}

			if err := srv.Run(ctx); err != nil {
				return err
			}
			a.l.Info(ctx, "Server stopped gracefully")
			return nil
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "listen port (default: http_server.port)")
	return cmd
}

// telegram builds the Telegram channel handler, or nil when no bot token is configured.
func (a *app) telegram(ctx context.Context, r router.Router) (routerTelegram.Handler, error) {
	tc := a.cfg.Telegram
	if tc.BotToken == "" {
		return nil, nil
	}

	bot, err := telegram.NewBot(telegram.Config{Token: tc.BotToken})
	if err != nil {
		return nil, err
	}

	if tc.WebhookURL != "" {
		if err := bot.SetWebhook(ctx, tc.WebhookURL, tc.SecretToken); err != nil {
			return nil, fmt.Errorf("register telegram webhook: %w", err)
		}
		a.l.Infof(ctx, "Telegram webhook set to %s", tc.WebhookURL)
	}
	return routerTelegram.New(a.l, r, bot, tc.SecretToken), nil
}
