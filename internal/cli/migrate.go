package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/amezhanin/finlock/internal/service"
	"github.com/amezhanin/finlock/models"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Encrypt every record that still stores plaintext",
	Long: `Walks every record category, encrypts each record that has no
encrypted payload yet, and writes it back with the plaintext fields
zeroed. Records that are already encrypted are left untouched, so the
command is safe to re-run after a partial failure.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		done, err := beginRun("migration")
		if err != nil {
			return err
		}
		defer done()

		sess, err := newSession()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		password, salt, err := sess.login(ctx)
		if err != nil {
			return err
		}
		if err = sess.unlock(password, salt); err != nil {
			return err
		}
		defer sess.keys.Clear()

		migrator := service.NewMigrationService(sess.adapter, sess.keys, sess.log, nil)

		s, cleanup := startSpinner("Migrating...")
		result, err := migrator.Run(ctx, categoryProgress(s, "migrating"))
		cleanup()
		if err != nil {
			return fmt.Errorf("migration: %w", err)
		}

		printMigrationResult(result)
		if !result.OK {
			if sess.adapter.TokenExpired() {
				sess.keys.Clear()
				return fmt.Errorf("session token expired during the run; log in and re-run migration")
			}
			return fmt.Errorf("migration finished with %d failed record(s)", result.ErrorCount)
		}
		return nil
	},
}

func printMigrationResult(result models.MigrationResult) {
	good := color.New(color.FgGreen)
	bad := color.New(color.FgRed)

	total := 0
	for _, cat := range models.CategoryOrder {
		if n := result.Converted[cat]; n > 0 {
			fmt.Printf("  %-22s %d migrated\n", cat, n)
			total += n
		}
	}

	if result.OK {
		good.Printf("Migrated %d record(s).\n", total)
		return
	}

	bad.Printf("Migrated %d record(s); %d failed:\n", total, result.ErrorCount)
	for _, msg := range result.Errors {
		fmt.Printf("  - %s\n", msg)
	}
	if result.ErrorCount > len(result.Errors) {
		fmt.Printf("  ... and %d more\n", result.ErrorCount-len(result.Errors))
	}
}
