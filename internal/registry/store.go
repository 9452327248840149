// =====================================
// File: internal/registry/store.go
// =====================================
package registry

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/afero"
)

const (
	customTokensFile = "custom_tokens.json"
	exchangeAPIsFile = "exchange_apis.json"

	// storeVersion tags persisted blobs so later releases can migrate old
	// layouts instead of silently misreading them.
	storeVersion = 1
)

// ExchangeCredentials holds a saved exchange API key pair.
type ExchangeCredentials struct {
	Name      string `json:"name"`
	APIKey    string `json:"api_key"`
	APISecret string `json:"api_secret"`
}

type customTokensBlob struct {
	Version int                          `json:"version"`
	Chains  map[string][]TokenDescriptor `json:"chains"`
}

type exchangeAPIsBlob struct {
	Version int                   `json:"version"`
	APIs    []ExchangeCredentials `json:"apis"`
}

// Store persists registry state as JSON blobs under a data directory. The
// filesystem is injected (afero) so tests run against an in-memory FS.
type Store struct {
	fs  afero.Fs
	dir string
}

// NewStore creates a store rooted at dir, creating the directory if needed.
func NewStore(fs afero.Fs, dir string) (*Store, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{fs: fs, dir: dir}, nil
}

// SaveCustomTokens writes the full overlay snapshot.
func (s *Store) SaveCustomTokens(overlay map[int64][]TokenDescriptor) error {
	blob := customTokensBlob{
		Version: storeVersion,
		Chains:  make(map[string][]TokenDescriptor, len(overlay)),
	}
	for id, tokens := range overlay {
		if len(tokens) == 0 {
			continue
		}
		blob.Chains[strconv.FormatInt(id, 10)] = tokens
	}
	return s.writeJSON(customTokensFile, blob)
}

// LoadCustomTokens reads the persisted overlay. A missing file yields an empty
// overlay; a version mismatch is an error so the caller can log and ignore it.
func (s *Store) LoadCustomTokens() (map[int64][]TokenDescriptor, error) {
	var blob customTokensBlob
	ok, err := s.readJSON(customTokensFile, &blob)
	if err != nil || !ok {
		return nil, err
	}
	if blob.Version != storeVersion {
		return nil, fmt.Errorf("unsupported custom_tokens version %d", blob.Version)
	}

	overlay := make(map[int64][]TokenDescriptor, len(blob.Chains))
	for key, tokens := range blob.Chains {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid chain key %q: %w", key, err)
		}
		overlay[id] = tokens
	}
	return overlay, nil
}

// SaveExchangeAPIs persists saved exchange credentials.
func (s *Store) SaveExchangeAPIs(apis []ExchangeCredentials) error {
	return s.writeJSON(exchangeAPIsFile, exchangeAPIsBlob{Version: storeVersion, APIs: apis})
}

// LoadExchangeAPIs reads saved exchange credentials; missing file yields nil.
func (s *Store) LoadExchangeAPIs() ([]ExchangeCredentials, error) {
	var blob exchangeAPIsBlob
	ok, err := s.readJSON(exchangeAPIsFile, &blob)
	if err != nil || !ok {
		return nil, err
	}
	if blob.Version != storeVersion {
		return nil, fmt.Errorf("unsupported exchange_apis version %d", blob.Version)
	}
	return blob.APIs, nil
}

func (s *Store) writeJSON(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	path := filepath.Join(s.dir, name)
	if err := afero.WriteFile(s.fs, path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// readJSON returns ok=false when the file does not exist.
func (s *Store) readJSON(name string, v interface{}) (bool, error) {
	path := filepath.Join(s.dir, name)
	exists, err := afero.Exists(s.fs, path)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", name, err)
	}
	if !exists {
		return false, nil
	}
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", name, err)
	}
	return true, nil
}
