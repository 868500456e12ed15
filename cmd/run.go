package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathquest/internal/config"
	"github.com/abhisek/mathquest/internal/session"
	"github.com/abhisek/mathquest/internal/sound"
	"github.com/abhisek/mathquest/internal/store"
)

// appEnv bundles the dependencies every interactive command needs.
type appEnv struct {
	st       *store.Store
	manager  *session.Manager
	sounds   sound.Player
	settings config.Settings
}

// openEnv opens the store, loads the config file, and builds a session
// manager. A missing or broken config file falls back to defaults.
func openEnv(cmd *cobra.Command) (*appEnv, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	cfg, err := config.Load(configPath(cmd))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Ignoring config file:", err)
	}
	settings := cfg.Resolve()

	var sounds sound.Player = sound.Nop{}
	if settings.SoundEnabled {
		sounds = sound.NewBell(os.Stdout)
	}

	manager := session.NewManager(cmd.Context(), st.ProgressRepo(),
		session.WithEventRepo(st.EventRepo()),
		session.WithSound(sounds),
	)

	return &appEnv{
		st:       st,
		manager:  manager,
		sounds:   sounds,
		settings: settings,
	}, nil
}

func (e *appEnv) Close() {
	e.manager.Close()
	e.st.Close()
}
