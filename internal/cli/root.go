// Package cli implements the finlock command-line surface: the
// administrator-triggered migration and rotation runs and the read-only
// migration status report.
package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/amezhanin/finlock/internal/config"
)

var (
	flagAddress  string
	flagTimeout  time.Duration
	flagLogin    string
	flagLogLevel string
	flagConfig   string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "finlock",
	Short: "Encryption lifecycle tooling for the finance tracker",
	Long: `finlock manages the end-to-end encryption lifecycle of a finance
tracker account: it reports how many records still store plaintext,
migrates legacy plaintext records to encrypted form, and re-encrypts
everything under a fresh key after a password change.

The encryption key is derived from your password in-process and is never
written to disk or sent anywhere.`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagAddress, "address", "a", "", "backend address host:port or URL")
	pf.DurationVar(&flagTimeout, "request-timeout", 0, "request timeout (e.g. 30s, 1m)")
	pf.StringVar(&flagLogin, "login", "", "account login")
	pf.StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVarP(&flagConfig, "config", "c", "", "JSON config file path")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log to stderr instead of showing spinners")

	rootCmd.AddCommand(statusCmd, migrateCmd, rotateCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func flagOverrides() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{
			Login:    flagLogin,
			LogLevel: flagLogLevel,
		},
		Adapter: config.Adapter{
			HTTPAddress:    flagAddress,
			RequestTimeout: flagTimeout,
		},
		JSONFilePath: flagConfig,
	}
}
