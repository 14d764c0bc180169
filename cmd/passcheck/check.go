package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/nao1215/passcheck/internal/blacklist"
	"github.com/nao1215/passcheck/internal/config"
	"github.com/nao1215/passcheck/internal/estimator"
	"github.com/nao1215/passcheck/internal/model"
	"github.com/nao1215/passcheck/internal/pipeline"
	"github.com/nao1215/passcheck/internal/report"
	"github.com/nao1215/passcheck/internal/strength"
)

// interactivePrompt is printed before each password read in interactive mode.
const interactivePrompt = "Enter a password (or 'quit' to exit): "

// quitCommand ends the interactive loop. It is matched case-insensitively
// against the whole line, so " quit " is checked as a password.
const quitCommand = "quit"

// maxLineLength is the longest password line read from a list or stdin.
const maxLineLength = 1024 * 1024

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [password...]",
		Short: "Evaluate password strength",
		Long: `Check evaluates the strength of one or more passwords.

For each password it reports:
- A score from 0 to 5 (length >= 12, uppercase, lowercase, digit, special character)
- A WEAK, MEDIUM or STRONG label
- Recommendations for every rule that is not met
- Estimated cracking times for four attack scenarios
- Whether the password appears in a blacklist (when enabled)

Without arguments, check prompts for passwords until 'quit' or end of input.

Examples:
  # Evaluate a single password
  passcheck check 'correct horse battery staple'

  # Interactive mode
  passcheck check

  # Evaluate every line of a file, 8 at a time, with a summary
  passcheck check --list passwords.txt --batch 8

  # Look the password up in files/rockyou.txt
  passcheck check --blacklist 'P@ssw0rd'

  # Use the SQLite index built by 'passcheck blacklist import'
  passcheck check --blacklist --blacklist-backend index 'P@ssw0rd'

  # Write a Markdown report
  passcheck check -m -o report.md --list passwords.txt`,
		Args: cobra.ArbitraryArgs,
		RunE: runCheckCmd,
	}

	// Input flags
	cmd.Flags().StringP("list", "l", "",
		"Evaluate every line of a file (one password per line)")
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of passwords evaluated concurrently")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .passcheck.yaml in current, XDG config or home directory)")

	// Blacklist flags
	cmd.Flags().Bool("blacklist", false, "Enable the blacklist check")
	cmd.Flags().Bool("no-blacklist", false, "Disable the blacklist check")
	cmd.Flags().String("blacklist-file", "",
		"Blacklist file (relative to the blacklist directory unless absolute)")
	cmd.Flags().String("blacklist-backend", "",
		"Blacklist backend: file, memory or index")
	cmd.MarkFlagsMutuallyExclusive("blacklist", "no-blacklist")

	// Evaluation flags
	cmd.Flags().Bool("unicode", false,
		"Count any Unicode upper/lowercase letter and digit, not only ASCII")
	cmd.Flags().StringArray("user-input", nil,
		"Personal word that weakens a password (repeatable)")
	cmd.Flags().Bool("no-estimate", false, "Skip crack-time estimation")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().Bool("tee", false, "Also print the report to stdout when --output is set")
	cmd.Flags().Bool("show-password", false, "Print passwords in reports instead of masking them")
	cmd.Flags().String("color", config.ColorAuto, "Colorize output: auto, always or never")

	return cmd
}

// runCheckCmd executes the check command.
func runCheckCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := newLogger(cmd)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runCheck(ctx, cmd, cfg, logger)
}

// loadConfig creates a Config from defaults, the configuration file and the
// environment. configPath may be empty to search the default locations.
func loadConfig(configPath string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.ConfigFilePath = configPath

	// If the user explicitly specified a config file path, error if not found.
	// Otherwise silently keep the defaults when no file exists.
	path := config.FindConfigFile(configPath)
	if path != "" {
		file, err := config.LoadConfigFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
		file.Apply(cfg)
	} else if configPath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, configPath)
	}

	lookup, err := config.EnvLookup(config.DefaultEnvFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildConfig creates a Config for the check command. Flags override the
// configuration file and environment only when they were set explicitly.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()

	if flags.Changed("blacklist") {
		cfg.BlacklistCheck = true
	}
	if flags.Changed("no-blacklist") {
		cfg.BlacklistCheck = false
	}
	if flags.Changed("blacklist-file") {
		if cfg.BlacklistFile, err = flags.GetString("blacklist-file"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("blacklist-backend") {
		if cfg.BlacklistBackend, err = flags.GetString("blacklist-backend"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("unicode") {
		cfg.Charset = strength.CharsetUnicode.String()
	}
	if flags.Changed("user-input") {
		inputs, err := flags.GetStringArray("user-input")
		if err != nil {
			return nil, err
		}
		cfg.UserInputs = append(cfg.UserInputs, inputs...)
	}
	if flags.Changed("no-estimate") {
		cfg.Estimate = false
	}
	if flags.Changed("batch") {
		if cfg.BatchSize, err = flags.GetInt("batch"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("color") {
		if cfg.Color, err = flags.GetString("color"); err != nil {
			return nil, err
		}
	}

	if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
		return nil, err
	}
	if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
		return nil, err
	}
	if cfg.ReportFile, err = flags.GetString("output"); err != nil {
		return nil, err
	}
	if cfg.Tee, err = flags.GetBool("tee"); err != nil {
		return nil, err
	}
	if cfg.ShowPassword, err = flags.GetBool("show-password"); err != nil {
		return nil, err
	}
	if cfg.ListFile, err = flags.GetString("list"); err != nil {
		return nil, err
	}

	cfg.Verbose = getBoolFlag(cmd, "verbose")
	cfg.Passwords = args
	cfg.Interactive = len(args) == 0 && cfg.ListFile == ""

	return cfg, nil
}

// evaluator bundles what every evaluation shares.
type evaluator struct {
	newPipeline func() *pipeline.Pipeline
	close       func() error
}

// newEvaluator builds the blacklist store, estimator and pipeline factory
// described by cfg.
func newEvaluator(cfg *config.Config, logger *slog.Logger) (*evaluator, error) {
	charset, err := strength.ParseCharset(cfg.Charset)
	if err != nil {
		return nil, err
	}

	var store blacklist.Store
	closeStore := func() error { return nil }
	if cfg.BlacklistCheck {
		backend, err := blacklist.ParseBackend(cfg.BlacklistBackend)
		if err != nil {
			return nil, err
		}
		store, err = blacklist.NewStore(backend, cfg.BlacklistPath(), cfg.IndexDir)
		if err != nil {
			return nil, err
		}
		if c, ok := store.(io.Closer); ok {
			closeStore = c.Close
		}
		logger.Debug("blacklist enabled",
			"backend", backend,
			"file", cfg.BlacklistPath(),
		)
	}
	checker := blacklist.NewChecker(cfg.BlacklistCheck, store, blacklist.WithLogger(logger))

	var est estimator.Estimator = estimator.Nop{}
	if cfg.Estimate {
		logger.Debug("crack-time estimation enabled",
			userInputsKey, cfg.UserInputs,
			"max_length", cfg.MaxEstimateLength,
		)
		est = estimator.NewZxcvbn(
			estimator.WithUserInputs(cfg.UserInputs...),
			estimator.WithMaxLength(cfg.MaxEstimateLength),
		)
	}

	newPipeline := func() *pipeline.Pipeline {
		return pipeline.DefaultPipeline(
			[]pipeline.Option{pipeline.WithLogger(logger)},
			pipeline.WithPipelineCharset(charset),
			pipeline.WithPipelineEstimator(est),
			pipeline.WithPipelineBlacklist(checker),
		)
	}
	logger.Debug("evaluation pipeline ready", "steps", newPipeline().StepNames())

	return &evaluator{
		newPipeline: newPipeline,
		close:       closeStore,
	}, nil
}

// runCheck evaluates the passwords selected by cfg and writes the reports.
func runCheck(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	ev, err := newEvaluator(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := ev.close(); err != nil {
			logger.Warn("failed to close blacklist", "error", err)
		}
	}()

	writer, closeOutput, err := openWriter(cmd, cfg)
	if err != nil {
		return err
	}
	defer closeOutput()

	if cfg.Interactive {
		return runInteractive(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), ev, writer)
	}

	passwords := cfg.Passwords
	if cfg.ListFile != "" {
		listed, err := readPasswordList(cfg.ListFile)
		if err != nil {
			return err
		}
		passwords = append(append([]string(nil), passwords...), listed...)
	}

	if len(passwords) == 1 && cfg.ListFile == "" {
		result, err := ev.newPipeline().Evaluate(ctx, passwords[0])
		if err != nil {
			return err
		}
		_, err = writer.Write(result)
		return err
	}

	bp := pipeline.NewBatchProcessor(ev.newPipeline,
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)
	reports, err := bp.ProcessBatch(ctx, passwords)
	if err != nil {
		return fmt.Errorf("batch evaluation failed: %w", err)
	}
	_, err = writer.WriteBatch(reports, model.Summarize(reports))
	return err
}

// runInteractive prompts for passwords on in until quit or end of input.
// Each report is written as soon as the password has been evaluated.
func runInteractive(ctx context.Context, in io.Reader, prompt io.Writer, ev *evaluator, writer report.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(prompt, interactivePrompt)
		if !scanner.Scan() {
			fmt.Fprintln(prompt)
			return scanner.Err()
		}

		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.ToLower(line) == quitCommand {
			return nil
		}

		result, err := ev.newPipeline().Evaluate(ctx, line)
		if err != nil {
			return err
		}
		if _, err := writer.Write(result); err != nil {
			return err
		}
	}
}

// readPasswordList reads one password per line. Blank lines are skipped.
func readPasswordList(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided list path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open password list: %w", err)
	}
	defer f.Close()

	var passwords []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		passwords = append(passwords, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read password list %s: %w", path, err)
	}
	return passwords, nil
}

// openWriter returns the report writer for the --output file or the
// command's stdout. With --tee the report goes to both.
func openWriter(cmd *cobra.Command, cfg *config.Config) (report.Writer, func(), error) {
	if cfg.ReportFile == "" {
		out, color := stdout(cmd, cfg.Color)
		return newWriter(cfg, out, color), func() {}, nil
	}

	f, err := createReportFile(cfg.ReportFile)
	if err != nil {
		return nil, nil, err
	}

	writer := newWriter(cfg, f, cfg.Color == config.ColorAlways)
	if cfg.Tee {
		out, color := stdout(cmd, cfg.Color)
		writer = report.NewMultiWriter(writer, newWriter(cfg, out, color))
	}
	return writer, func() { _ = f.Close() }, nil
}

// stdout returns the command's stdout and whether it gets ANSI colors.
func stdout(cmd *cobra.Command, mode string) (io.Writer, bool) {
	out := cmd.OutOrStdout()
	if f, ok := out.(*os.File); ok {
		if useColor(mode, f) {
			return colorable.NewColorable(f), true
		}
		return out, false
	}
	return out, mode == config.ColorAlways
}

// createReportFile creates path and its parent directories.
func createReportFile(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// Reports may contain passwords (--show-password), so only the owner may read them.
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided report path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}

// useColor reports whether colors should be written to f.
func useColor(mode string, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// newWriter creates the report writer for the requested format.
func newWriter(cfg *config.Config, output io.Writer, color bool) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(output,
			report.WithPrettyPrint(),
			report.WithVersion(getVersion()),
		)
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output,
			report.WithMarkdownShowPassword(cfg.ShowPassword),
		)
	default:
		return report.NewSimpleWriter(output,
			report.WithColor(color),
			report.WithShowPassword(cfg.ShowPassword),
			report.WithVerbose(cfg.Verbose),
		)
	}
}
