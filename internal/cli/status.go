package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/amezhanin/finlock/internal/service"
	"github.com/amezhanin/finlock/models"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report how many records still store plaintext",
	Long: `Scans every record category and counts the records that have not
been migrated to encrypted form yet. Read-only: nothing is written.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if _, _, err = sess.login(ctx); err != nil {
			return err
		}

		migrator := service.NewMigrationService(sess.adapter, sess.keys, sess.log, nil)

		_, cleanup := startSpinner("Scanning categories...")
		status, err := migrator.Status(ctx)
		cleanup()
		if err != nil {
			return fmt.Errorf("scan status: %w", err)
		}

		printStatus(status)
		return nil
	},
}

func printStatus(status models.MigrationStatus) {
	bold := color.New(color.Bold)
	warn := color.New(color.FgYellow)
	good := color.New(color.FgGreen)

	bold.Println("Unmigrated records per category:")
	for _, cat := range models.CategoryOrder {
		n := status.Pending[cat]
		if n > 0 {
			warn.Printf("  %-22s %d\n", cat, n)
		} else {
			fmt.Printf("  %-22s %d\n", cat, n)
		}
	}

	fmt.Println()
	if status.Total == 0 {
		good.Println("Everything is encrypted.")
	} else {
		warn.Printf("%d record(s) still store plaintext. Run `finlock migrate`.\n", status.Total)
	}
}
