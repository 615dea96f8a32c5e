package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/podassess/internal/bank"
	"github.com/harrison/podassess/internal/config"
	"github.com/harrison/podassess/internal/logger"
	"github.com/harrison/podassess/internal/models"
	"github.com/harrison/podassess/internal/remote"
	"github.com/harrison/podassess/internal/store"
)

// NewBankCommand creates and returns the bank subcommand
func NewBankCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bank",
		Short: "Manage the shared question bank",
		Long: `Operator commands for the question bank held in the shared
configuration store: pull the current document, publish a new revision
from a CSV source, browse stored versions, and check connectivity.

All bank commands need remote.bin_id set in the config file and the
access key in PODASSESS_API_KEY.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(newBankPullCommand())
	cmd.AddCommand(newBankPublishCommand())
	cmd.AddCommand(newBankVersionsCommand())
	cmd.AddCommand(newBankCheckCommand())
	return cmd
}

func newBankPullCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Fetch the current document and cache it locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBankPull(cmd)
		},
		SilenceUsage: true,
	}
}

func newBankPublishCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish a new document revision from a CSV source",
		Long: `Build a store document from a CSV source (or the embedded dataset),
bump the patch version over the currently published document, back the
result up locally and push it to the shared store.

With --snapshot the revision is stored as a named version instead of
overwriting the current document in place.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBankPublish(cmd)
		},
		SilenceUsage: true,
	}
	cmd.Flags().String("bank", "", "CSV source to publish (default: embedded dataset)")
	cmd.Flags().String("operator", "", "name recorded as the publisher (default: $USER)")
	cmd.Flags().Bool("snapshot", false, "store as a named version instead of updating in place")
	cmd.Flags().String("name", "", "snapshot name (with --snapshot)")
	return cmd
}

func newBankVersionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "versions [id]",
		Short: "List stored versions, or inspect one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runBankVersionShow(cmd, args[0])
			}
			return runBankVersions(cmd)
		},
		SilenceUsage: true,
	}
}

func newBankCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check connectivity to the shared store",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBankCheck(cmd)
		},
		SilenceUsage: true,
	}
}

func runBankPull(cmd *cobra.Command) error {
	cfg, client, err := bankClient(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	doc, err := client.Read(cmd.Context())
	if err != nil {
		return err
	}
	if err := bank.ValidateDocument(doc); err != nil {
		return fmt.Errorf("published document is invalid: %w", err)
	}

	cache, err := store.NewCache(cfg.CacheDir)
	if err != nil {
		return err
	}
	if err := cache.Save(doc, cfg.Remote.BinID); err != nil {
		return fmt.Errorf("cache document: %w", err)
	}

	fmt.Fprintf(out, "pulled v%s: %d questions", doc.Config.Version, len(doc.Questions))
	if doc.Config.LastModified != "" {
		fmt.Fprintf(out, ", last modified %s by %s", doc.Config.LastModified, doc.Config.ModifiedBy)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "cached at %s\n", cache.Path())
	return nil
}

func runBankPublish(cmd *cobra.Command) error {
	cfg, client, err := bankClient(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	out := cmd.OutOrStdout()

	model, err := publishSource(cmd, log)
	if err != nil {
		return err
	}

	docCfg := models.DocumentConfig{
		Version:      currentVersion(cmd.Context(), client, cfg, log),
		PassingScore: cfg.PassingScore,
	}
	doc := bank.BuildDocument(model, docCfg)

	operator := flagString(cmd, "operator")
	if operator == "" {
		operator = os.Getenv("USER")
	}
	if operator == "" {
		operator = "unknown"
	}

	cache, err := store.NewCache(cfg.CacheDir)
	if err != nil {
		return err
	}

	var up store.Updater = client
	if snapshot, _ := cmd.Flags().GetBool("snapshot"); snapshot {
		up = snapshotUpdater{client: client, name: flagString(cmd, "name")}
	}

	backupErr, err := store.Publish(cmd.Context(), up, cache, doc, operator, cfg.Remote.BinID)
	if backupErr != nil {
		log.LogWarn(fmt.Sprintf("local backup failed: %v", backupErr))
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "published v%s: %d questions across %d dimensions\n",
		doc.Config.Version, len(doc.Questions), len(doc.Dimensions))
	return nil
}

func runBankVersions(cmd *cobra.Command) error {
	_, client, err := bankClient(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	versions, err := client.ListVersions(cmd.Context())
	if err != nil {
		return err
	}
	if len(versions) == 0 {
		fmt.Fprintln(out, "no stored versions")
		return nil
	}
	for _, v := range versions {
		fmt.Fprintf(out, "%-8s %-20s %s\n", v.ID.String(), v.Created, v.Name)
	}
	return nil
}

func runBankVersionShow(cmd *cobra.Command, versionID string) error {
	_, client, err := bankClient(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	doc, err := client.ReadVersion(cmd.Context(), versionID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "version %s: document v%s, %d questions\n",
		versionID, doc.Config.Version, len(doc.Questions))
	if doc.Config.LastModified != "" {
		fmt.Fprintf(out, "last modified %s by %s\n", doc.Config.LastModified, doc.Config.ModifiedBy)
	}
	return nil
}

func runBankCheck(cmd *cobra.Command) error {
	_, client, err := bankClient(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	status := client.TestConnection(cmd.Context())
	if !status.OK {
		if status.StatusCode != 0 {
			return fmt.Errorf("store unreachable (HTTP %d): %w", status.StatusCode, status.Err)
		}
		return fmt.Errorf("store unreachable: %w", status.Err)
	}

	meta, err := client.Meta(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "connected: bin %s", meta.ID)
	if meta.Name != "" {
		fmt.Fprintf(out, " (%s)", meta.Name)
	}
	if meta.Private {
		fmt.Fprint(out, ", private")
	}
	fmt.Fprintln(out)
	return nil
}

// bankClient resolves configuration and the store client for a bank command.
func bankClient(cmd *cobra.Command) (*config.Config, *remote.Client, error) {
	cfg, err := loadToolConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	client, err := newRemoteClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, client, nil
}

// publishSource loads the model to publish from --bank or the embedded
// dataset. Publishing never falls back: a broken source must not end up
// in the shared store.
func publishSource(cmd *cobra.Command, log bank.Logger) (*bank.Model, error) {
	path := flagString(cmd, "bank")
	if path == "" {
		loader := bank.NewLoader(log)
		result, err := loader.LoadEmbedded()
		if err != nil {
			return nil, err
		}
		return result.Model, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	b, err := bank.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for _, w := range b.Warnings {
		log.LogWarn(w)
	}
	return bank.Flatten(b)
}

// currentVersion reads the version of the currently published document,
// falling back to the local backup and finally a fresh 1.0.0 so a first
// publish against an empty bin still works.
func currentVersion(ctx context.Context, client *remote.Client, cfg *config.Config, log *logger.ConsoleLogger) string {
	doc, err := client.Read(ctx)
	if err == nil && doc.Config.Version != "" {
		return doc.Config.Version
	}
	if err != nil {
		log.LogWarn(fmt.Sprintf("could not read published version: %v", err))
	}
	if cache, cerr := store.NewCache(cfg.CacheDir); cerr == nil {
		if cached, _, lerr := cache.Load(); lerr == nil && cached.Config.Version != "" {
			return cached.Config.Version
		}
	}
	return "1.0.0"
}

// snapshotUpdater adapts CreateVersion to the publish Updater contract.
type snapshotUpdater struct {
	client *remote.Client
	name   string
}

func (s snapshotUpdater) Update(ctx context.Context, doc *models.Document) error {
	return s.client.CreateVersion(ctx, doc, s.name)
}
