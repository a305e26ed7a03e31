package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	clierrors "github.com/rabix/sb-credentials/internal/cli/errors"
	"github.com/rabix/sb-credentials/internal/cli/output"
	"github.com/rabix/sb-credentials/internal/store"
)

var flagLogoutID string

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove a stored profile",
	Long: `Remove the active profile, or a specific one selected with --id.

Removing the active profile promotes the next stored profile to active.
This operation is idempotent - it succeeds even if nothing is stored.`,
	Args: cobra.NoArgs,
	Run:  runLogout,
}

func runLogout(cmd *cobra.Command, args []string) {
	s := openStore()

	id := flagLogoutID
	if id == "" {
		active, err := s.Active()
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				reportLogout("")
				return
			}
			clierrors.ExitWithError(err, "failed to load credentials")
		}
		id = active.Hash()
	}

	if err := s.Remove(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			reportLogout("")
			return
		}
		clierrors.ExitWithError(err, "failed to remove credentials")
	}

	reportLogout(id)
}

func reportLogout(id string) {
	if flagJSON {
		output.OutputJSON(map[string]interface{}{
			"logged_out": true,
			"id":         id,
		}, nil)
		return
	}
	if id == "" {
		output.PrintSuccess("Nothing to log out from")
		return
	}
	output.PrintSuccess(fmt.Sprintf("Removed profile %s", id))
}

func init() {
	logoutCmd.Flags().StringVar(&flagLogoutID, "id", "", "Profile id to remove (defaults to the active profile)")
	rootCmd.AddCommand(logoutCmd)
}
