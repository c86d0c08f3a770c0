// Package cmdutils wires the shared dependencies commands draw on.
package cmdutils

import (
	"os"
	"path/filepath"

	"github.com/tdl-project/tdl/internal/releases"
	"github.com/tdl-project/tdl/internal/settings"
	"github.com/tdl-project/tdl/internal/storage"
)

// Factory builds the stores and services a command needs, resolving
// directories lazily so that only the commands that touch them require
// the environment to be configured.
type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

// Settings returns the repository for the application settings file.
func (f *Factory) Settings() (*settings.Repository, error) {
	dir, err := settings.Dir()
	if err != nil {
		return nil, err
	}
	return settings.NewRepository(filepath.Join(dir, "app_settings.json")), nil
}

// UserSettings resolves the game-content directories.
func (f *Factory) UserSettings() (settings.UserSettings, error) {
	return settings.LoadUserSettings()
}

// ReleaseCache builds the staleness-aware release lookup. When
// TDL_RELEASE_FIXTURES names a directory, canned release documents are
// replayed from it instead of calling the GitHub API.
func (f *Factory) ReleaseCache() (*releases.Cache, error) {
	app, err := f.appSettings()
	if err != nil {
		return nil, err
	}
	cacheDir, err := app.ReleaseCache()
	if err != nil {
		return nil, err
	}
	store, err := storage.New(cacheDir)
	if err != nil {
		return nil, err
	}

	var source releases.Source
	if fixtures := os.Getenv("TDL_RELEASE_FIXTURES"); fixtures != "" {
		source = releases.NewFixtureSource(fixtures)
	} else {
		source = releases.NewGitHubSource()
	}
	return releases.NewCache(source, store, nil), nil
}

// WadStore returns the object store holding imported WAD entries.
func (f *Factory) WadStore() (*storage.Store, error) {
	dir, err := settings.Dir()
	if err != nil {
		return nil, err
	}
	return storage.New(filepath.Join(dir, "wads"))
}

func (f *Factory) appSettings() (settings.AppSettings, error) {
	repo, err := f.Settings()
	if err != nil {
		return settings.AppSettings{}, err
	}
	return repo.Get()
}
