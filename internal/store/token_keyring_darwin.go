//go:build darwin
// +build darwin

package store

import (
	"fmt"

	"github.com/zalando/go-keyring"
)

const keychainService = "sb-credentials"

// stashToken moves the secret into the Keychain and keeps the profile
// file free of token material.
func stashToken(hash, token string) (string, error) {
	if token == "" {
		return "", nil
	}
	if err := keyring.Set(keychainService, hash, token); err != nil {
		return "", fmt.Errorf("failed to save token to keychain: %w", err)
	}
	return "", nil
}

// fetchToken reads the secret back from the Keychain. Profiles written on
// another platform may still carry the token inline; those win.
func fetchToken(hash, persisted string) (string, error) {
	if persisted != "" {
		return persisted, nil
	}
	token, err := keyring.Get(keychainService, hash)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", nil
		}
		return "", fmt.Errorf("failed to get token from keychain: %w", err)
	}
	return token, nil
}

// dropToken removes the secret for a deleted profile.
func dropToken(hash string) error {
	if err := keyring.Delete(keychainService, hash); err != nil && err != keyring.ErrNotFound {
		return fmt.Errorf("failed to delete token from keychain: %w", err)
	}
	return nil
}
