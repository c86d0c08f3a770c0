package settings

import (
	"encoding/json"
	"fmt"
	"os"
)

// Repository loads and saves the application settings file. Unlike the
// object store, the settings file is freely overwritten: it is a single
// mutable record, not an append-only collection.
type Repository struct {
	path string
}

// NewRepository points a repository at a settings file. The file does
// not need to exist yet.
func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// Get reads the settings, returning zero settings when the file has not
// been written yet.
func (r *Repository) Get() (AppSettings, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return AppSettings{}, nil
		}
		return AppSettings{}, fmt.Errorf("reading settings file: %w", err)
	}
	var s AppSettings
	if err := json.Unmarshal(data, &s); err != nil {
		return AppSettings{}, fmt.Errorf("parsing settings file: %w", err)
	}
	return s, nil
}

// Save writes the settings, replacing any previous content.
func (r *Repository) Save(s AppSettings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	return nil
}
