package server

import (
	"context"
	"fmt"
	"time"

	"github.com/etbcor/tomo/internal/analytics"
	"github.com/etbcor/tomo/internal/app"
	"github.com/etbcor/tomo/internal/config"
	"github.com/etbcor/tomo/internal/content"
	"github.com/etbcor/tomo/internal/sysinfo"
)

// Runtime holds what every desktop served by one process shares: the
// configuration, the content store, the beacon and the status sampler.
type Runtime struct {
	Config  *config.UserConfig
	Store   *content.Store
	Beacon  *analytics.Beacon
	Sampler *sysinfo.Sampler
	// Path is the page new desktops open on.
	Path string
}

// NewRuntime loads the content store and the beacon described by cfg.
func NewRuntime(cfg *config.UserConfig, path string) (*Runtime, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	store, err := content.New(cfg.Content.Dir)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	timeout := time.Duration(cfg.Analytics.TimeoutMS) * time.Millisecond
	beacon, err := analytics.New(cfg.Analytics.Endpoint, timeout)
	if err != nil {
		return nil, fmt.Errorf("analytics: %w", err)
	}
	return &Runtime{
		Config:  cfg,
		Store:   store,
		Beacon:  beacon,
		Sampler: sysinfo.New(),
		Path:    path,
	}, nil
}

// Start runs the work shared by every desktop until ctx is done: one
// content watcher and one status sampler. Desktops only read their results.
func (r *Runtime) Start(ctx context.Context) {
	if config.ShowStatus && r.Sampler != nil {
		go r.Sampler.Run(ctx, config.StatusInterval)
	}
	if !r.Config.Content.Watch || r.Store.Dir() == "" {
		return
	}
	go func() {
		if err := r.Store.Watch(ctx, nil); err != nil {
			logger.Warn("content watch stopped", "err", err, "dir", r.Store.Dir())
		}
	}()
}

// NewDesk creates a desktop of the given size. path overrides the
// runtime's start page when not empty.
func (r *Runtime) NewDesk(ctx context.Context, width, height int, sessionID, path string) *app.Desk {
	if path == "" {
		path = r.Path
	}
	d := app.New(app.Options{
		Context:   ctx,
		Store:     r.Store,
		Config:    r.Config,
		Path:      path,
		Beacon:    r.Beacon,
		Sampler:   r.Sampler,
		SessionID: sessionID,
	})
	d.Width, d.Height = width, height
	return d
}
