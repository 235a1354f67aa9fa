package cmd

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/knightsbridge/faqsite/internal/attempts"
	"github.com/knightsbridge/faqsite/internal/config"
	"github.com/knightsbridge/faqsite/internal/db"
	"github.com/knightsbridge/faqsite/internal/extension"
	"github.com/knightsbridge/faqsite/internal/progress"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `faqsite init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// openLedger opens the download attempt ledger under the data directory.
func openLedger(cfg *config.Config) (*db.DB, *attempts.Store, error) {
	dbPath := filepath.Join(cfg.DataDir, "faqsite.db")
	database, err := db.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return database, attempts.NewStore(database), nil
}

// buildOrchestrator wires the configured strategies. recorder and rep may be
// nil.
func buildOrchestrator(cfg *config.Config, recorder extension.Recorder, rep progress.Reporter) *extension.Orchestrator {
	e := cfg.Extension
	fetch := &extension.FetchStrategy{
		Client:   &http.Client{Timeout: e.FetchTimeout},
		MinBytes: e.MinPayloadBytes,
		MaxBytes: e.MaxPayloadBytes,
		Progress: rep,
	}
	return extension.NewOrchestrator(e.Source(), recorder,
		extension.Strategies(fetch, extension.Fallback(e.Fallback), e.FrameLinger)...)
}
