package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/amezhanin/finlock/internal/service"
	"github.com/amezhanin/finlock/models"
)

var rotateCmd = &cobra.Command{
	Use:   "rotate",
	Short: "Re-encrypt everything under a key derived from a new password",
	Long: `Re-encrypts every encrypted record so it becomes readable under the
key derived from your new password. Run this right after changing the
account password: you will be asked for the current (old) password to
read the existing data and for the new password to derive the new key.

Records that cannot be decrypted with the old password are skipped and
stay as they are. If some records fail to write back, re-run the command
until it finishes clean.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		done, err := beginRun("rotation")
		if err != nil {
			return err
		}
		defer done()

		sess, err := newSession()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		oldPassword, salt, err := sess.login(ctx)
		if err != nil {
			return err
		}

		oldKey, err := sess.keychain.DeriveKey(oldPassword, salt)
		if err != nil {
			return fmt.Errorf("derive old key: %w", err)
		}

		newPassword, err := promptPassword("New password")
		if err != nil {
			return err
		}
		confirm, err := promptPassword("Repeat new password")
		if err != nil {
			return err
		}
		if newPassword != confirm {
			return fmt.Errorf("passwords do not match")
		}

		// The decrypt function is bound to the old key; the rotation
		// engine never touches the session slot for reading.
		oldDecrypt := func(blobB64 string) ([]byte, bool) {
			plaintext, err := sess.keychain.Decrypt(blobB64, oldKey)
			if err != nil {
				return nil, false
			}
			return plaintext, true
		}

		rotator := service.NewRotationService(sess.adapter, sess.keychain, sess.keys, sess.log, nil)

		s, cleanup := startSpinner("Rotating...")
		result, err := rotator.Run(ctx, newPassword, salt, oldDecrypt, categoryProgress(s, "rotating"))
		cleanup()
		if err != nil {
			return fmt.Errorf("rotation: %w", err)
		}
		defer sess.keys.Clear()

		printRotationResult(result)
		if !result.OK {
			if sess.adapter.TokenExpired() {
				sess.keys.Clear()
				return fmt.Errorf("session token expired during the run; log in and re-run rotation")
			}
			return fmt.Errorf("rotation finished with %d failed record(s)", result.ErrorCount)
		}
		return nil
	},
}

func printRotationResult(result models.RotationResult) {
	if result.OK {
		color.New(color.FgGreen).Println("All encrypted records rotated to the new key.")
		return
	}

	color.New(color.FgRed).Printf("%d record(s) failed to rotate and are still encrypted under the old key:\n", result.ErrorCount)
	for _, msg := range result.Errors {
		fmt.Printf("  - %s\n", msg)
	}
	if result.ErrorCount > len(result.Errors) {
		fmt.Printf("  ... and %d more\n", result.ErrorCount-len(result.Errors))
	}
	fmt.Println("Re-run `finlock rotate` with the same passwords to retry.")
}
