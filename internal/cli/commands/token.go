package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	clierrors "github.com/rabix/sb-credentials/internal/cli/errors"
	"github.com/rabix/sb-credentials/internal/cli/output"
	"github.com/rabix/sb-credentials/internal/config"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print the resolved auth token",
	Long: `Print the auth token that other tools would use, resolved with the
normal precedence (--token flag > SB_AUTH_TOKEN env var > active profile).

Intended for scripting, e.g.:

  export SB_AUTH_TOKEN=$(sb-credctl token)`,
	Args: cobra.NoArgs,
	Run:  runToken,
}

func runToken(cmd *cobra.Command, args []string) {
	s := openStore()

	token, err := config.ResolveToken(flagToken, s)
	if err != nil {
		clierrors.ExitWithError(err, "failed to resolve token")
	}
	if token == "" {
		clierrors.ExitWithCode(clierrors.ExitNotFound, "no token configured. Run 'sb-credctl login' first")
	}

	if flagJSON {
		output.OutputJSON(map[string]string{"token": token}, nil)
	} else {
		fmt.Println(token)
	}
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}
