package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/podassess/internal/bank"
	"github.com/harrison/podassess/internal/config"
	"github.com/harrison/podassess/internal/logger"
	"github.com/harrison/podassess/internal/remote"
)

// loadToolConfig resolves the tool configuration from the --config flag,
// applying the --log-level override when given.
func loadToolConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	return cfg, nil
}

// newLogger builds the command logger. Log output goes to stderr so
// stdout stays clean for report data.
func newLogger(cfg *config.Config) *logger.ConsoleLogger {
	return logger.NewConsoleLogger(os.Stderr, cfg.LogLevel)
}

// newRemoteClient builds the store client from configuration. The access
// key comes from the environment, never from the config file.
func newRemoteClient(cfg *config.Config) (*remote.Client, error) {
	if cfg.Remote.BinID == "" {
		return nil, fmt.Errorf("remote store not configured: set remote.bin_id in the config file")
	}
	key := config.APIKey()
	if key == "" {
		return nil, fmt.Errorf("remote store access key missing: export PODASSESS_API_KEY")
	}
	opts := []remote.Option{
		remote.WithTimeout(cfg.Remote.Timeout),
		remote.WithRetries(cfg.Remote.MaxRetries),
	}
	if cfg.Remote.BaseURL != "" {
		opts = append(opts, remote.WithBaseURL(cfg.Remote.BaseURL))
	}
	return remote.NewClient(cfg.Remote.BinID, key, opts...), nil
}

// loadModel loads the question model for a command, honoring --remote
// and --bank before the configured bank file and finally the embedded
// dataset. Failover inside each path is handled by the loader itself.
func loadModel(ctx context.Context, cmd *cobra.Command, cfg *config.Config, log bank.Logger) (*bank.LoadResult, error) {
	loader := bank.NewLoader(log)

	if useRemote, _ := cmd.Flags().GetBool("remote"); useRemote {
		client, err := newRemoteClient(cfg)
		if err != nil {
			return nil, err
		}
		return loader.LoadRemote(ctx, client)
	}
	if path, _ := cmd.Flags().GetString("bank"); path != "" {
		return loader.LoadFile(path)
	}
	if cfg.BankFile != "" {
		return loader.LoadFile(cfg.BankFile)
	}
	return loader.LoadEmbedded()
}
