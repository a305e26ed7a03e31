//go:build !darwin
// +build !darwin

package store

// On Linux and Windows tokens stay in the profile file, which is written
// with 0600 permissions. The three functions below form the token backend
// surface shared with the darwin keychain implementation.

// stashToken returns the token value to persist in the profile file.
func stashToken(hash, token string) (string, error) {
	_ = hash
	return token, nil
}

// fetchToken resolves the token for a loaded profile.
func fetchToken(hash, persisted string) (string, error) {
	_ = hash
	return persisted, nil
}

// dropToken releases any backend state for a removed profile.
func dropToken(hash string) error {
	_ = hash
	return nil
}
