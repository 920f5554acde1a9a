package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/JonMunkholm/nftmeta/internal/config"
	"github.com/JonMunkholm/nftmeta/internal/core"
	"github.com/JonMunkholm/nftmeta/internal/logging"
	"github.com/JonMunkholm/nftmeta/internal/web"
)

// newRootCmd builds the command tree. Running the root command with no
// subcommand starts the HTTP server.
func newRootCmd() *cobra.Command {
	var (
		envFile string
		cfg     *config.Config
	)

	root := &cobra.Command{
		Use:           "server",
		Short:         "NFT metadata server",
		Long:          "Serves NFT metadata JSON for Land and Power Cube tokens from ids.txt and the Power Cube CSV.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loadEnvFile(envFile)

			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cfg)
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP server (default)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(cmd.Context(), cfg)
			},
		},
		&cobra.Command{
			Use:   "ids",
			Short: "Print the valid NFT ids, creating the ids file if missing",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				ids := core.NewIdentifierStore(cfg.Data.IDsFile).Load(cmd.Context())
				return printJSON(cmd, web.IDListResponse{ValidIDs: ids, Count: len(ids)})
			},
		},
		&cobra.Command{
			Use:   "lookup <id>",
			Short: "Print the Power Cube metadata for a token id",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runLookup(cmd, cfg, args[0])
			},
		},
		&cobra.Command{
			Use:   "check",
			Short: "Report how many rows of the metadata CSV produce records",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				stats := core.NewMetadataLoader(cfg.Data.MetadataFile).Stats(cmd.Context())
				return printJSON(cmd, stats)
			},
		},
	)

	return root
}

// loadEnvFile loads a dotenv file without overriding variables that are
// already set by the process manager.
func loadEnvFile(path string) {
	if path == "" {
		return
	}
	if err := godotenv.Load(path); err != nil {
		slog.Debug("no env file loaded, using environment variables", "file", path)
		return
	}
	slog.Info("loaded env file", "file", path)
}

// runServe starts the server and blocks until ctx is cancelled or the
// listener fails.
func runServe(ctx context.Context, cfg *config.Config) error {
	server := web.NewServer(cfg)

	slog.Info("configuration loaded", "config", cfg.String())
	slog.Info("valid ids loaded", "count", len(server.Identifiers().Load(ctx)))

	stats := server.Metadata().Stats(ctx)
	slog.Info("power cube metadata loaded",
		"records", stats.Keys,
		"rejected_rows", stats.Rejected,
	)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Server.Addr())
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil {
		return fmt.Errorf("server: %w", err)
	}
	slog.Info("server stopped")
	return nil
}

// runLookup prints the record for id or the reason there is none.
func runLookup(cmd *cobra.Command, cfg *config.Config, id string) error {
	loader := core.NewMetadataLoader(cfg.Data.MetadataFile)

	record, err := loader.PowerCube(cmd.Context(), id)
	switch {
	case err == nil:
		return printJSON(cmd, record)
	case errors.Is(err, core.ErrTokenOutOfRange):
		return fmt.Errorf("id %q must be a number between %d and %d", id, core.PowerCubeMinID, core.PowerCubeMaxID)
	case errors.Is(err, core.ErrMetadataNotFound):
		return fmt.Errorf("no metadata for id %q in %s", id, loader.Path())
	default:
		return err
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
