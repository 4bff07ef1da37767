package sbclient

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/subchain-io/subchain-go/pkg/subchain"
)

const (
	tokenFilePerm = 0o600
	tokenDirPerm  = 0o750
)

// FileTokenStore persists a session token pair to a YAML file on disk.
// The zero value is not usable; construct it with NewFileTokenStore.
type FileTokenStore struct {
	path string
}

type tokenFile struct {
	AccessToken  string `yaml:"subchain_access_token,omitempty"`
	RefreshToken string `yaml:"subchain_refresh_token,omitempty"`
}

// NewFileTokenStore creates a store backed by the given file path.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

// DefaultTokenStorePath returns ~/.subchain/tokens.yml.
func DefaultTokenStorePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}

	return filepath.Join(home, ".subchain", "tokens.yml"), nil
}

// Path returns the backing file path.
func (s *FileTokenStore) Path() string {
	return s.path
}

// Load reads the stored token pair. A missing file is not an error and
// yields an empty pair.
func (s *FileTokenStore) Load() (*subchain.TokenPair, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &subchain.TokenPair{}, nil
		}
		return nil, fmt.Errorf("reading token file: %w", err)
	}

	var file tokenFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing token file: %w", err)
	}

	return &subchain.TokenPair{
		AccessToken:  file.AccessToken,
		RefreshToken: file.RefreshToken,
	}, nil
}

// Save writes the token pair, creating the parent directory when needed.
func (s *FileTokenStore) Save(pair *subchain.TokenPair) error {
	if pair == nil {
		pair = &subchain.TokenPair{}
	}

	data, err := yaml.Marshal(tokenFile{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
	if err != nil {
		return fmt.Errorf("encoding token file: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, tokenDirPerm); err != nil {
			return fmt.Errorf("creating token directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, tokenFilePerm); err != nil {
		return fmt.Errorf("writing token file: %w", err)
	}

	return nil
}

// Clear removes the persisted tokens. A missing file is not an error.
func (s *FileTokenStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing token file: %w", err)
	}

	return nil
}
