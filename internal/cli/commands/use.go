package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	clierrors "github.com/rabix/sb-credentials/internal/cli/errors"
	"github.com/rabix/sb-credentials/internal/cli/output"
	"github.com/rabix/sb-credentials/internal/store"
)

var useCmd = &cobra.Command{
	Use:   "use <profile-id>",
	Short: "Switch the active profile",
	Long: `Make the profile with the given id the active one.

Profile ids have the form <subdomain>_<username>; 'sb-credctl list' shows
all stored ids.`,
	Args: cobra.ExactArgs(1),
	Run:  runUse,
}

func runUse(cmd *cobra.Command, args []string) {
	id := args[0]

	s := openStore()
	if err := s.SetActive(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			clierrors.ExitWithCode(clierrors.ExitNotFound,
				fmt.Sprintf("no profile %q. Run 'sb-credctl list' to see stored profiles", id))
		}
		clierrors.ExitWithError(err, "failed to switch profile")
	}

	if flagJSON {
		output.OutputJSON(map[string]string{"active": id}, nil)
	} else {
		output.PrintSuccess(fmt.Sprintf("Switched to profile %s", id))
	}
}

func init() {
	rootCmd.AddCommand(useCmd)
}
