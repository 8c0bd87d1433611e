package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/jonathan/resume-matcher/internal/catalog"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/server"
)

const defaultCatalogPath = "data/sample_jobs.json"

func loadConfig() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if err := cfg.Validate(); err != nil {
		return nil, zerolog.Nop(), err
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	return cfg, log, nil
}

// openStore resolves the job store from config: PostgreSQL when a database
// URL is set, otherwise an in-memory catalog loaded from a JSON file. The
// returned closer releases the database pool when one was opened.
func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (server.JobStore, func(), error) {
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := database.Migrate(ctx); err != nil {
			database.Close()
			return nil, nil, err
		}
		log.Debug().Msg("using PostgreSQL job store")
		return database, database.Close, nil
	}

	path := cfg.CatalogPath
	if path == "" {
		if _, err := os.Stat(defaultCatalogPath); err == nil {
			path = defaultCatalogPath
		}
	}
	if path == "" {
		log.Debug().Msg("no catalog configured, starting with an empty job store")
		return catalog.NewMemoryStore(nil), func() {}, nil
	}

	jobs, err := catalog.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load job catalog: %w", err)
	}
	log.Debug().Str("path", path).Int("jobs", len(jobs)).Msg("loaded job catalog")
	return catalog.NewMemoryStore(jobs), func() {}, nil
}
