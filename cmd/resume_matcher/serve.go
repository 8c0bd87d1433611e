package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resume analysis, job matching and market trends.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	store, closeStore, err := openStore(context.Background(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to open job store: %w", err)
	}
	defer closeStore()

	srv := server.New(server.Config{Port: cfg.Port, MatchLimit: cfg.MatchLimit}, store, log)
	return srv.Start()
}
