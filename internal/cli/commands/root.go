package commands

import (
	"github.com/spf13/cobra"

	"github.com/rabix/sb-credentials/internal/cli/errors"
	"github.com/rabix/sb-credentials/internal/config"
	"github.com/rabix/sb-credentials/internal/store"
)

var (
	// Global flags
	flagURL   string
	flagToken string
	flagJSON  bool
	flagStore string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sb-credctl",
	Short: "Seven Bridges platform credentials manager",
	Long: `sb-credctl manages authentication credentials for the Seven Bridges
API platforms (Seven Bridges, CGC, Cavatica, Fair4Cures and friends).

Credentials are stored as named profiles identified by platform and
username. One profile is active at a time; most commands operate on it.

URL and token resolution precedence:
- URL: --url flag > SB_API_ENDPOINT env var > active profile
- Token: --token flag > SB_AUTH_TOKEN env var > active profile`,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagURL, "url", "", "Platform API endpoint (or use SB_API_ENDPOINT env var)")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "Auth token (or use SB_AUTH_TOKEN env var)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "Path to the credential store file")
}

// openStore resolves the credential store from flag, tool config, or the
// per-user default path.
func openStore() *store.Store {
	if flagStore != "" {
		return store.Open(flagStore)
	}

	cfg, err := config.Load()
	if err != nil {
		errors.ExitWithError(err, "failed to load configuration")
	}
	if cfg.Store.Path != "" {
		return store.Open(cfg.Store.Path)
	}

	s, err := store.OpenDefault()
	if err != nil {
		errors.ExitWithError(err, "failed to locate credential store")
	}
	return s
}
