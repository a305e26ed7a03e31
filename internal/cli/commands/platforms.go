package commands

import (
	"github.com/spf13/cobra"

	"github.com/rabix/sb-credentials/internal/cli/output"
	"github.com/rabix/sb-credentials/internal/platform"
)

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List known Seven Bridges platforms",
	Long: `List the registered platform endpoints with their display names and
the dashboards where developer tokens are issued.`,
	Args: cobra.NoArgs,
	Run:  runPlatforms,
}

func runPlatforms(cmd *cobra.Command, args []string) {
	platforms := platform.All()

	if flagJSON {
		output.OutputJSON(platforms, nil)
		return
	}

	table := output.NewTableWriter()
	table.WriteHeader("SHORT NAME", "NAME", "URL", "TOKEN DASHBOARD")
	for _, p := range platforms {
		table.WriteRow(p.ShortName, p.Name, p.URL, p.DevTokenURL)
	}
	table.Flush()
}

func init() {
	rootCmd.AddCommand(platformsCmd)
}
