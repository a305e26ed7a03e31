package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	clierrors "github.com/rabix/sb-credentials/internal/cli/errors"
	"github.com/rabix/sb-credentials/internal/cli/output"
	"github.com/rabix/sb-credentials/internal/platform"
	"github.com/rabix/sb-credentials/internal/store"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored profiles",
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	s := openStore()

	creds, err := s.List()
	if err != nil {
		clierrors.ExitWithError(err, "failed to list credentials")
	}

	activeID := ""
	if active, err := s.Active(); err == nil {
		activeID = active.Hash()
	} else if !errors.Is(err, store.ErrNotFound) {
		clierrors.ExitWithError(err, "failed to resolve active profile")
	}

	if flagJSON {
		type profile struct {
			ID       string `json:"id"`
			Platform string `json:"platform"`
			URL      string `json:"url"`
			Username string `json:"username"`
			Active   bool   `json:"active"`
		}
		profiles := make([]profile, 0, len(creds))
		for _, cred := range creds {
			username := ""
			if cred.User != nil {
				username = cred.User.Username
			}
			profiles = append(profiles, profile{
				ID:       cred.Hash(),
				Platform: platform.ShortName(cred.URL),
				URL:      cred.URL,
				Username: username,
				Active:   cred.Hash() == activeID,
			})
		}
		output.OutputJSON(profiles, nil)
		return
	}

	if len(creds) == 0 {
		fmt.Println("No profiles stored. Run 'sb-credctl login' to add one.")
		return
	}

	table := output.NewTableWriter()
	table.WriteHeader("ID", "PLATFORM", "USERNAME", "URL", "ACTIVE")
	for _, cred := range creds {
		username := ""
		if cred.User != nil {
			username = cred.User.Username
		}
		activeMark := ""
		if cred.Hash() == activeID {
			activeMark = "*"
		}
		table.WriteRow(cred.Hash(), platform.ShortName(cred.URL), username, cred.URL, activeMark)
	}
	table.Flush()
}

func init() {
	rootCmd.AddCommand(listCmd)
}
