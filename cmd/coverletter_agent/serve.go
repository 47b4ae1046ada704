package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/coverletter-agent/internal/config"
	"github.com/jonathan/coverletter-agent/internal/llm"
	"github.com/jonathan/coverletter-agent/internal/logging"
	"github.com/jonathan/coverletter-agent/internal/profile"
	"github.com/jonathan/coverletter-agent/internal/search"
	"github.com/jonathan/coverletter-agent/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  `Start an HTTP server that accepts a resume and a job target and streams back a generated cover letter.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides SERVER_PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.ServerPort = servePort
	}

	logger := logging.New(cfg.GCPProject)

	client, err := llm.NewClient(cmd.Context(), llm.DefaultConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}

	deps := server.Deps{LLM: client, Logger: logger}

	if cfg.ProfileAPIKey != "" {
		profiles, err := profile.NewClient(cfg.ProfileAPIURL, cfg.ProfileAPIKey)
		if err != nil {
			return fmt.Errorf("failed to create profile client: %w", err)
		}
		deps.Profiles = profiles
	} else {
		logger.InfoContext(context.Background(), "PROFILE_API_KEY not set, profile lookups disabled")
	}

	if cfg.SearchAPIKey != "" && cfg.SearchAPIURL != "" {
		searcher, err := search.NewClient(cfg.SearchAPIURL, cfg.SearchAPIKey)
		if err != nil {
			return fmt.Errorf("failed to create search client: %w", err)
		}
		deps.Search = searcher
	} else {
		logger.InfoContext(context.Background(), "search API not configured, company search disabled")
	}

	return server.New(cfg, deps).Start()
}
