package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/passcheck/internal/log"
)

// NewRootCmd creates the root command for passcheck.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passcheck",
		Short: "Password strength checker",
		Long: `passcheck evaluates how strong a password is.

Each password is scored against five rules (length, uppercase, lowercase,
digit, special character), labelled WEAK, MEDIUM or STRONG, given concrete
recommendations and an estimate of how long common attacks would need to
crack it. Optionally the password is looked up in a blacklist of leaked
passwords such as rockyou.txt.

Passwords are never written to logs and are masked in reports unless
--show-password is given.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging and detailed reports")
	cmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")

	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewBlacklistCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// getBoolFlag retrieves a boolean flag from the command or the root's
// persistent flags.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		v, err = cmd.Root().PersistentFlags().GetBool(name)
		if err != nil {
			return false
		}
	}
	return v
}

// newLogger creates the secure logger selected by --verbose and --log-json.
// Logs go to stderr so that reports on stdout stay machine-readable.
func newLogger(cmd *cobra.Command) *slog.Logger {
	verbose := getBoolFlag(cmd, "verbose")
	mask := log.WithSensitiveKeys(userInputsKey)
	if getBoolFlag(cmd, "log-json") {
		return log.NewSecureJSONLogger(cmd.ErrOrStderr(), verbose, mask)
	}
	return log.NewSecureLogger(cmd.ErrOrStderr(), verbose, mask)
}

// userInputsKey is the log attribute holding the estimator's personal words.
const userInputsKey = "user_inputs"
