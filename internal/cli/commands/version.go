package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rabix/sb-credentials/internal/cli/output"
)

// Version is set at build time via -ldflags
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if flagJSON {
			output.OutputJSON(map[string]string{"version": Version}, nil)
			return
		}
		fmt.Printf("sb-credctl version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
