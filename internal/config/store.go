package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Store abstracts case file persistence so tools depend on an interface
// rather than the filesystem.
type Store interface {
	Load(root string) (*CaseConfig, error)
	Save(root string, cfg *CaseConfig) error
	Exists(root string) bool
}

// FileStore persists the case file as JSON under bja/ in the project root.
type FileStore struct{}

// NewFileStore creates a FileStore.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// Load reads and parses bja/case.json.
func (s *FileStore) Load(root string) (*CaseConfig, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no case found at %s: run case_init first", root)
		}
		return nil, fmt.Errorf("reading case file: %w", err)
	}

	var cfg CaseConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing case file: %w", err)
	}
	return &cfg, nil
}

// Save writes the case file, creating bja/ as needed and refreshing the
// updated_at timestamp.
func (s *FileStore) Save(root string, cfg *CaseConfig) error {
	if err := os.MkdirAll(CaseDir(root), 0755); err != nil {
		return fmt.Errorf("creating case dir: %w", err)
	}

	cfg.UpdatedAt = nowUTC()

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling case file: %w", err)
	}

	if err := os.WriteFile(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing case file: %w", err)
	}
	return nil
}

// Exists reports whether a case file is present under root.
func (s *FileStore) Exists(root string) bool {
	_, err := os.Stat(ConfigPath(root))
	return err == nil
}
