package main

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"clinic-support-router/config"
	"clinic-support-router/internal/evaluation"
	"clinic-support-router/internal/responder"
	"clinic-support-router/internal/router"
	"clinic-support-router/pkg/llmprovider"
	"clinic-support-router/pkg/log"
)

type app struct {
	cfg *config.Config
	l   log.Logger
}

func bootstrap() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	l := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	return &app{cfg: cfg, l: l}, nil
}

// backend returns the provider named by router.provider, or the whole
// priority-ordered chain when none is named.
func (a *app) backend(ctx context.Context) (llmprovider.Provider, error) {
	providers, err := llmprovider.InitializeProviders(ctx, &a.cfg.LLM, a.l)
	if err != nil {
		return nil, err
	}

	if name := strings.ToLower(a.cfg.Router.Provider); name != "" {
		for _, p := range providers {
			if p.Name() == name {
				return p, nil
			}
		}
		return nil, fmt.Errorf("router.provider %q is not an enabled, initialized provider", a.cfg.Router.Provider)
	}

	mcfg, err := llmprovider.NewConfig(a.cfg.LLM)
	if err != nil {
		return nil, err
	}
	return llmprovider.NewManager(providers, mcfg, a.l), nil
}

func (a *app) router(ctx context.Context) (*router.SupportRouter, llmprovider.Provider, error) {
	backend, err := a.backend(ctx)
	if err != nil {
		return nil, nil, err
	}

	catalog, err := responder.LoadCatalog(a.cfg.Responder.CatalogFile)
	if err != nil {
		return nil, nil, err
	}

	r := router.New(a.l, backend,
		responder.NewFAQ(a.l, catalog),
		responder.NewOrderStatus(a.l, catalog),
		router.MatchMode(a.cfg.Router.MatchMode))
	return r, backend, nil
}

// targets builds the evaluation backends. Named providers are used even when
// disabled for routing; with no names, every enabled provider is evaluated.
func (a *app) targets(ctx context.Context) ([]evaluation.Target, error) {
	names := a.cfg.Evaluation.Providers

	var targets []evaluation.Target
	for _, pc := range a.cfg.LLM.Providers {
		selected := pc.Enabled
		if len(names) > 0 {
			selected = slices.ContainsFunc(names, func(n string) bool {
				return strings.EqualFold(n, pc.Name) || strings.EqualFold(n, pc.Label)
			})
		}
		if !selected {
			continue
		}

		p, err := llmprovider.NewProvider(pc)
		if err != nil {
			a.l.Warnf(ctx, "cmd.supportbot.targets: skipping %s: %v", pc.Name, err)
			continue
		}
		targets = append(targets, evaluation.Target{Name: displayName(pc), Backend: p})
	}

	if len(targets) == 0 {
		return nil, llmprovider.ErrNoProvidersConfigured
	}
	return targets, nil
}

func displayName(pc config.ProviderConfig) string {
	if pc.Label != "" {
		return pc.Label
	}
	return pc.Model
}
