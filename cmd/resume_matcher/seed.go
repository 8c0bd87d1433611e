package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/catalog"
	"github.com/jonathan/resume-matcher/internal/db"
)

var seedCatalogPath string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with a job catalog",
	Long:  "Load a JSON job catalog file and insert its postings into PostgreSQL. Seeding is skipped when the table already has rows.",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedCatalogPath, "catalog", defaultCatalogPath, "Path to the JSON catalog file")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(_ *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required for seeding")
	}

	jobs, err := catalog.Load(seedCatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load job catalog: %w", err)
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		return err
	}

	inserted, err := database.SeedJobPostings(ctx, jobs)
	if err != nil {
		return fmt.Errorf("failed to seed job postings: %w", err)
	}

	if inserted == 0 {
		log.Info().Msg("job postings already present, nothing to seed")
	} else {
		log.Info().Int("inserted", inserted).Msg("seeded job postings")
	}
	return nil
}
