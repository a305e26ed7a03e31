package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	clierrors "github.com/rabix/sb-credentials/internal/cli/errors"
	"github.com/rabix/sb-credentials/internal/cli/output"
	"github.com/rabix/sb-credentials/internal/config"
	"github.com/rabix/sb-credentials/internal/platform"
	"github.com/rabix/sb-credentials/internal/store"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the active profile",
	Long: `Show which platform and user the active profile points at, along with
the endpoint that URL resolution would currently pick.`,
	Args: cobra.NoArgs,
	Run:  runWhoami,
}

func runWhoami(cmd *cobra.Command, args []string) {
	s := openStore()

	active, err := s.Active()
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			clierrors.ExitWithCode(clierrors.ExitNotFound, "no active profile. Run 'sb-credctl login' first")
		}
		clierrors.ExitWithError(err, "failed to load credentials")
	}

	resolvedURL, err := config.ResolveURL(flagURL, s)
	if err != nil {
		clierrors.ExitWithError(err, "failed to resolve endpoint")
	}

	username := ""
	if active.User != nil {
		username = active.User.Username
	}
	label := platform.Label(active.URL)

	if flagJSON {
		output.OutputJSON(map[string]string{
			"id":           active.Hash(),
			"platform":     label,
			"url":          active.URL,
			"username":     username,
			"resolved_url": resolvedURL,
			"token":        config.MaskToken(active.Token),
		}, nil)
		return
	}

	output.PrintSuccess(fmt.Sprintf("%s on %s (%s)", username, label, active.URL))
	if resolvedURL != active.URL {
		output.PrintWarning(fmt.Sprintf("endpoint resolution currently picks %s (flag or environment override)", resolvedURL))
	}
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
