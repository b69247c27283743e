package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/server"
	"github.com/jonathan/resume-analyzer/internal/store"
	"github.com/spf13/cobra"
)

var (
	serveConfigPath string
	servePort       int
	serveSQLitePath string
	serveMaxItems   int
	serveRateLimit  int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for analyzing resumes against job descriptions.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveSQLitePath, "sqlite", "analyzer.db", "SQLite database file (used when DATABASE_URL is not set)")
	serveCmd.Flags().IntVar(&serveMaxItems, "max-items", 0, "Cap on keyword lists in results (0 uses the default)")
	serveCmd.Flags().IntVar(&serveRateLimit, "rate-limit", 0, "Requests per minute per client (0 disables limiting)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	var cfg config.Config
	if serveConfigPath != "" {
		loadedCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	if cmd.Flags().Changed("port") || cfg.Port == 0 {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("sqlite") || cfg.SQLitePath == "" {
		cfg.SQLitePath = serveSQLitePath
	}
	if cmd.Flags().Changed("max-items") {
		cfg.MaxItems = serveMaxItems
	}
	if cmd.Flags().Changed("rate-limit") {
		cfg.RateLimit = serveRateLimit
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	st, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	srv := server.New(server.Config{
		Port:           cfg.Port,
		Store:          st,
		MaxItems:       cfg.MaxItems,
		UploadMaxBytes: int64(cfg.UploadMaxBytes),
		RateLimit:      cfg.RateLimit,
	})

	return srv.Start()
}

// openStore prefers PostgreSQL when a connection URL is configured and
// falls back to the local SQLite file.
func openStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	if cfg.DatabaseURL != "" {
		return store.ConnectPostgres(ctx, cfg.DatabaseURL)
	}
	return store.OpenSQLite(ctx, cfg.SQLitePath)
}
