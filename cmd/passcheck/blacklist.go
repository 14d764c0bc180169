package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/nao1215/passcheck/internal/config"
	"github.com/nao1215/passcheck/internal/database"
)

// NewBlacklistCmd creates the blacklist command and its subcommands.
func NewBlacklistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blacklist",
		Short: "Manage the SQLite blacklist index",
		Long: `Blacklist manages the SQLite index used by --blacklist-backend index.

Looking a password up in a large list such as rockyou.txt means reading the
whole file. The index stores every entry in a SQLite database in the XDG
data directory (~/.local/share/passcheck/blacklist.db) so each lookup is a
single query.

Examples:
  # Index the configured blacklist file (files/rockyou.txt by default)
  passcheck blacklist import

  # Index another file, replacing everything imported before
  passcheck blacklist import --replace /usr/share/wordlists/top1000.txt

  # Show the number of entries and where they came from
  passcheck blacklist stats`,
	}

	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .passcheck.yaml in current, XDG config or home directory)")
	cmd.PersistentFlags().String("index-dir", "",
		"Directory of the blacklist index (default: XDG data directory)")

	cmd.AddCommand(newBlacklistImportCmd())
	cmd.AddCommand(newBlacklistStatsCmd())

	return cmd
}

func newBlacklistImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Add a blacklist file to the index",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBlacklistImportCmd,
	}
	cmd.Flags().Bool("replace", false, "Remove all indexed entries before importing")
	return cmd
}

func newBlacklistStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show blacklist index statistics",
		Args:  cobra.NoArgs,
		RunE:  runBlacklistStatsCmd,
	}
}

// blacklistConfig loads the configuration shared by the blacklist subcommands.
func blacklistConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	indexDir, err := cmd.Flags().GetString("index-dir")
	if err != nil {
		return nil, err
	}
	if indexDir != "" {
		cfg.IndexDir = indexDir
	}
	return cfg, nil
}

// runBlacklistImportCmd executes the blacklist import command.
func runBlacklistImportCmd(cmd *cobra.Command, args []string) error {
	cfg, err := blacklistConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd)

	path := cfg.BlacklistPath()
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return config.ErrNoBlacklistFile
	}

	replace, err := cmd.Flags().GetBool("replace")
	if err != nil {
		return err
	}

	f, err := os.Open(path) //nolint:gosec // User-provided blacklist path is intentional
	if err != nil {
		return fmt.Errorf("failed to open blacklist file: %w", err)
	}
	defer f.Close()

	db, err := database.Open(cfg.IndexDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open blacklist index: %w", err)
	}
	defer db.Close()

	ctx := cmd.Context()
	var opts []database.ImportOption
	if replace {
		opts = append(opts, database.WithReplace())
	}

	logger.Info("importing blacklist", "file", path, "index", db.Path(), "replace", replace)
	result, err := db.Import(ctx, f, path, opts...)
	if err != nil {
		return err
	}

	total, err := db.Count(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Imported %s lines from %s (%s new entries)\n",
		humanize.Comma(result.Lines), path, humanize.Comma(result.Inserted))
	fmt.Fprintf(out, "Index %s now holds %s entries\n", db.Path(), humanize.Comma(total))
	return nil
}

// runBlacklistStatsCmd executes the blacklist stats command.
func runBlacklistStatsCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := blacklistConfig(cmd)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.IndexDir, database.ReadOnlyOptions())
	if err != nil {
		if errors.Is(err, database.ErrIndexNotFound) {
			return fmt.Errorf("%w (run 'passcheck blacklist import' first)", err)
		}
		return fmt.Errorf("failed to open blacklist index: %w", err)
	}
	defer db.Close()

	ctx := cmd.Context()
	total, err := db.Count(ctx)
	if err != nil {
		return err
	}
	sources, err := db.Sources(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Index:   %s\n", db.Path())
	if info, err := os.Stat(db.Path()); err == nil {
		fmt.Fprintf(out, "Size:    %s\n", humanize.Bytes(uint64(info.Size()))) //nolint:gosec // file sizes are never negative
	}
	fmt.Fprintf(out, "Entries: %s\n", humanize.Comma(total))

	if len(sources) == 0 {
		fmt.Fprintln(out, "\nNo imports recorded.")
		return nil
	}

	fmt.Fprintln(out, "\nImports (newest first):")
	for _, s := range sources {
		fmt.Fprintf(out, "  #%d %s: %s lines, %s new, %s\n",
			s.ID, s.Path,
			humanize.Comma(s.Lines), humanize.Comma(s.Inserted),
			humanize.Time(s.ImportedAt))
	}
	return nil
}
