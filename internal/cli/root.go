// ABOUTME: Root command definition and CLI setup
// ABOUTME: Handles global flags and opens the App for subcommands
package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/harper/wordbook/internal/app"
	"github.com/harper/wordbook/internal/config"
	"github.com/harper/wordbook/internal/logging"
	"github.com/harper/wordbook/internal/store"
)

var (
	dataDirFlag    string
	configPathFlag string
	logLevelFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "wordbook",
	Short: "Vocabulary notebook",
	Long: `Wordbook keeps a vocabulary list and daily study counters in JSON files
under your data directory (words.json and date.json).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "Data directory (overrides config and "+config.DataDirEnv+")")
	rootCmd.PersistentFlags().StringVar(&configPathFlag, "config", "", "Config file (default $XDG_CONFIG_HOME/wordbook/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error)")
}

// loadConfig resolves config from file, environment, and flags.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPathFlag == "" {
		cfg, err = config.Load()
	} else {
		cfg, err = config.LoadFile(configPathFlag)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if dataDirFlag != "" {
		cfg.DataDir = dataDirFlag
	}
	if logLevelFlag != "" {
		cfg.LogLevel = logLevelFlag
	}
	return cfg, nil
}

// openApp loads config and opens the App, with both files fully loaded.
func openApp(cmd *cobra.Command) (*app.App, *config.Config, *zap.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, nil, err
	}

	a, err := app.Open(cmd.Context(), app.Options{
		DataDir: cfg.DataDir,
		Logger:  logger,
	})
	if err != nil {
		_ = logger.Sync()
		return nil, nil, nil, fmt.Errorf("failed to open wordbook: %w", err)
	}
	return a, cfg, logger, nil
}

func parseID(s string) (uint32, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid id %q", store.ErrInvalidArgument, s)
	}
	return uint32(id), nil
}
