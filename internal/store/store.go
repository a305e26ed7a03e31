// Package store persists platform credentials as named profiles. Profiles
// are keyed by the credential identity hash; the token secret lives in the
// profile file on Linux and in the system keychain on macOS.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rabix/sb-credentials/internal/credentials"
)

// ErrNotFound is returned when no matching profile is stored.
var ErrNotFound = errors.New("credentials not found")

const (
	configDir  = ".config/sb-credentials"
	configFile = "credentials.yaml"
)

// profileFile is the on-disk layout of the credential store.
type profileFile struct {
	Active      string                    `yaml:"active,omitempty"`
	Credentials []*credentials.Credential `yaml:"credentials"`
}

// Store reads and writes credential profiles at a fixed path.
type Store struct {
	path string
}

// DefaultPath returns the per-user location of the credential store.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, configDir, configFile), nil
}

// Open returns a store backed by the given file path.
func Open(path string) *Store {
	return &Store{path: path}
}

// OpenDefault returns a store backed by the per-user default path.
func OpenDefault() (*Store, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Open(path), nil
}

// load reads the profile file, resolving tokens from the platform token
// backend. A missing file is ErrNotFound.
func (s *Store) load() (*profileFile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	var file profileFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse credentials file: %w", err)
	}

	for _, cred := range file.Credentials {
		token, err := fetchToken(cred.Hash(), cred.Token)
		if err != nil {
			return nil, err
		}
		cred.Token = token
	}

	return &file, nil
}

// write persists the profile file with owner-only permissions, routing
// tokens through the platform token backend first.
func (s *Store) write(file *profileFile) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	persisted := profileFile{Active: file.Active}
	for _, cred := range file.Credentials {
		stored, err := stashToken(cred.Hash(), cred.Token)
		if err != nil {
			return err
		}
		copied := *cred
		copied.Token = stored
		persisted.Credentials = append(persisted.Credentials, &copied)
	}

	data, err := yaml.Marshal(&persisted)
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}

	return nil
}

// Save upserts a credential profile. An existing profile for the same
// platform and user is refreshed in place via UpdateToMatch; otherwise
// the credential is appended. The first saved profile becomes active.
func (s *Store) Save(cred *credentials.Credential) error {
	file, err := s.load()
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return err
		}
		file = &profileFile{}
	}

	updated := false
	for _, existing := range file.Credentials {
		if credentials.IsSimilar(existing, cred) {
			existing.UpdateToMatch(cred)
			updated = true
			break
		}
	}
	if !updated {
		file.Credentials = append(file.Credentials, cred)
	}

	if file.Active == "" {
		file.Active = cred.Hash()
	}

	return s.write(file)
}

// List returns all stored profiles. A missing store yields an empty list.
func (s *Store) List() ([]*credentials.Credential, error) {
	file, err := s.load()
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return file.Credentials, nil
}

// Remove deletes the profile with the given identity hash.
func (s *Store) Remove(hash string) error {
	file, err := s.load()
	if err != nil {
		return err
	}

	kept := file.Credentials[:0]
	found := false
	for _, cred := range file.Credentials {
		if cred.Hash() == hash {
			found = true
			continue
		}
		kept = append(kept, cred)
	}
	if !found {
		return ErrNotFound
	}
	file.Credentials = kept

	if err := dropToken(hash); err != nil {
		return err
	}

	if file.Active == hash {
		file.Active = ""
		if len(file.Credentials) > 0 {
			file.Active = file.Credentials[0].Hash()
		}
	}

	return s.write(file)
}

// SetActive marks the profile with the given hash as the active one.
func (s *Store) SetActive(hash string) error {
	file, err := s.load()
	if err != nil {
		return err
	}

	for _, cred := range file.Credentials {
		if cred.Hash() == hash {
			file.Active = hash
			return s.write(file)
		}
	}
	return ErrNotFound
}

// Active returns the currently active profile.
func (s *Store) Active() (*credentials.Credential, error) {
	file, err := s.load()
	if err != nil {
		return nil, err
	}
	if file.Active == "" {
		return nil, ErrNotFound
	}
	for _, cred := range file.Credentials {
		if cred.Hash() == file.Active {
			return cred, nil
		}
	}
	return nil, ErrNotFound
}
