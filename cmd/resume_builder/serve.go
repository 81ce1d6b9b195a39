package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/draft"
	"github.com/jonathan/resume-builder/internal/server"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resume storage, section editing, and job description matching.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Postgres is optional: without it the server still serves the
	// stateless analysis endpoints.
	var database *db.DB
	if cfg.DatabaseURL != "" {
		database, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()
		if err := database.Migrate(ctx); err != nil {
			return err
		}
	} else {
		log.Println("DATABASE_URL not set, storage endpoints disabled")
	}

	var drafts *draft.Store
	if cfg.DraftDBPath != "" {
		drafts, err = draft.Open(cfg.DraftDBPath)
		if err != nil {
			return fmt.Errorf("failed to open draft store: %w", err)
		}
		defer drafts.Close()
	}

	return server.New(cfg.Port, database, drafts).Start()
}

// loadConfig reads the config file when given, falling back to environment
// variables merged in as defaults.
func loadConfig(path string) (*config.Config, error) {
	env := config.FromEnv()
	if path == "" {
		return env, nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	merged := cfg.MergeWithDefaults(*env)
	return &merged, nil
}
