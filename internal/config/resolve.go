package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rabix/sb-credentials/internal/credentials"
	"github.com/rabix/sb-credentials/internal/store"
)

const (
	// URLEnvVar is the environment variable for the platform API endpoint
	URLEnvVar = "SB_API_ENDPOINT"

	// TokenEnvVar is the environment variable for the auth token
	TokenEnvVar = "SB_AUTH_TOKEN"
)

// ResolveURL resolves the platform API endpoint using precedence:
// 1. flagURL (--url flag)
// 2. Environment variable (SB_API_ENDPOINT)
// 3. Active stored credential
// Returns an error if no URL is found.
func ResolveURL(flagURL string, s *store.Store) (string, error) {
	if flagURL != "" {
		return NormalizeURL(flagURL), nil
	}

	if envURL := os.Getenv(URLEnvVar); envURL != "" {
		return NormalizeURL(envURL), nil
	}

	active, err := s.Active()
	if err != nil {
		return "", fmt.Errorf("no platform endpoint configured. Use --url flag, %s env var, or run 'sb-credctl login'", URLEnvVar)
	}

	return NormalizeURL(active.URL), nil
}

// ResolveToken resolves the auth token using precedence:
// 1. flagToken (--token flag)
// 2. Environment variable (SB_AUTH_TOKEN)
// 3. Active stored credential
// Returns empty string if no token is found.
func ResolveToken(flagToken string, s *store.Store) (string, error) {
	if flagToken != "" {
		return credentials.NormalizeToken(flagToken), nil
	}

	if envToken := os.Getenv(TokenEnvVar); envToken != "" {
		return credentials.NormalizeToken(envToken), nil
	}

	active, err := s.Active()
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to load stored token: %w", err)
	}

	return active.Token, nil
}

// NormalizeURL removes trailing slashes from URLs
func NormalizeURL(url string) string {
	return strings.TrimRight(url, "/")
}
