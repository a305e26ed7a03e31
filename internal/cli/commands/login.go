package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rabix/sb-credentials/internal/cli/errors"
	"github.com/rabix/sb-credentials/internal/cli/output"
	"github.com/rabix/sb-credentials/internal/cli/prompts"
	"github.com/rabix/sb-credentials/internal/config"
	"github.com/rabix/sb-credentials/internal/credentials"
	"github.com/rabix/sb-credentials/internal/platform"
)

var flagSkipValidation bool

var loginCmd = &cobra.Command{
	Use:   "login [api-url]",
	Short: "Store credentials for a platform",
	Long: `Store an auth token for a Seven Bridges platform and make it the
active profile.

The API endpoint can be provided as an argument or via the SB_API_ENDPOINT
environment variable. If both are provided, the argument takes precedence.

Developer tokens are issued on each platform's developer dashboard; run
'sb-credctl platforms' to see where. Tokens pasted with UUID dashes are
normalized to the undashed form the platforms issue.

Logging in to the same platform with the same username refreshes the
existing profile in place. Other profiles are untouched.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLogin,
}

func runLogin(cmd *cobra.Command, args []string) {
	var apiURL string

	// Resolve endpoint: argument takes precedence over environment variable
	if len(args) > 0 {
		apiURL = args[0]
	} else if envURL := os.Getenv(config.URLEnvVar); envURL != "" {
		apiURL = envURL
	} else {
		errors.ExitWithCode(errors.ExitInvalidArguments,
			fmt.Sprintf("no API endpoint specified. Provide it as argument or set %s", config.URLEnvVar))
	}
	apiURL = config.NormalizeURL(apiURL)

	// Registered platforms (including vendor domains such as
	// api.sevenbridges.cn) are trusted as-is; everything else must match
	// the sbgenomics.com endpoint pattern.
	registered, isRegistered := platform.Lookup(apiURL)
	if !isRegistered && !flagSkipValidation {
		if err := credentials.EnsureValidURL(apiURL); err != nil {
			errors.ExitWithCode(errors.ExitValidationError, err.Error())
		}
	}

	username, err := prompts.PromptUsername()
	if err != nil {
		errors.ExitWithError(err, "failed to read username")
	}
	if username == "" {
		errors.ExitWithCode(errors.ExitInvalidArguments, "username cannot be empty")
	}

	rawToken, err := prompts.PromptToken()
	if err != nil {
		errors.ExitWithError(err, "failed to read token")
	}

	token := credentials.NormalizeToken(rawToken)
	if !flagSkipValidation {
		if err := credentials.EnsureValidToken(token); err != nil {
			msg := err.Error()
			if isRegistered {
				msg += fmt.Sprintf(". Get a developer token at %s", registered.DevTokenURL)
			}
			errors.ExitWithCode(errors.ExitValidationError, msg)
		}
	}

	cred := credentials.New(apiURL, token, &credentials.User{Username: username})

	s := openStore()
	if err := s.Save(cred); err != nil {
		errors.ExitWithError(err, "failed to save credentials")
	}
	if err := s.SetActive(cred.Hash()); err != nil {
		errors.ExitWithError(err, "failed to activate profile")
	}

	label := platform.Label(apiURL)
	if flagJSON {
		output.OutputJSON(map[string]string{
			"id":       cred.Hash(),
			"platform": label,
			"url":      apiURL,
			"username": username,
		}, nil)
	} else {
		output.PrintSuccess(fmt.Sprintf("Logged in to %s as %s (profile %s)", label, username, cred.Hash()))
	}
}

func init() {
	loginCmd.Flags().BoolVar(&flagSkipValidation, "skip-validation", false, "Skip URL and token format validation")
	rootCmd.AddCommand(loginCmd)
}
