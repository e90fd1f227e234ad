// Package app wires configuration, persistence, and the state stores
// together and boots the UI.
package app

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/airvista/vista/internal/config"
	"github.com/airvista/vista/internal/flights"
	"github.com/airvista/vista/internal/prefs"
	"github.com/airvista/vista/internal/session"
	"github.com/airvista/vista/internal/state"
	"github.com/airvista/vista/internal/ui"
)

// Options configure the vista application.
type Options struct {
	ConfigPath  string
	PrefsPath   string // empty uses default ~/.config/vista/prefs.toml
	SessionPath string // empty uses config, then the default
}

// Run boots the vista TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	sessionPath := opts.SessionPath
	if sessionPath == "" {
		sessionPath = cfg.SessionPath
	}
	sessionFile := session.NewFileStore(sessionPath)

	// The generator's random source is injectable; a non-zero configured
	// seed makes demo runs reproducible.
	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	uiOpts := ui.Options{
		Context:   ctx,
		Config:    cfg,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		Search:    state.NewSearchStore(),
		Results:   state.NewResultsStore(),
		Booking:   state.NewBookingStore(),
		Session:   state.NewSessionStore(sessionFile.Load(), sessionFile),
		UI:        state.NewUIStore(),
		Generator: flights.NewGenerator(rng, cfg.Currency),
	}
	return ui.Run(uiOpts)
}
