// Package settings resolves the launcher's directories and persists the
// application settings file.
//
// Two environment variables drive everything:
//
//	TDL_SETTINGS_PATH   where tdl keeps its own records
//	                    (default ~/.config/tdl)
//	TDL_DOOM_HOME_PATH  the root of the user's game content; iwads/,
//	                    wads/ and source-ports/ live beneath it
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tdl-project/tdl/internal/ports"
	"github.com/tdl-project/tdl/internal/profile"
)

// Dir returns the settings directory, creating it if needed. It comes
// from TDL_SETTINGS_PATH when set, otherwise ~/.config/tdl.
func Dir() (string, error) {
	dir := os.Getenv("TDL_SETTINGS_PATH")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		dir = filepath.Join(home, ".config", "tdl")
	}
	if err := ensureDir(dir, "settings path"); err != nil {
		return "", err
	}
	return dir, nil
}

// UserSettings locates the user's game content.
type UserSettings struct {
	IwadsDir       string `json:"iwads_path"`
	WadsDir        string `json:"wads_path"`
	SourcePortsDir string `json:"source_ports_path"`
}

// LoadUserSettings resolves the user settings from TDL_DOOM_HOME_PATH,
// creating the content directories on first use.
func LoadUserSettings() (UserSettings, error) {
	home := os.Getenv("TDL_DOOM_HOME_PATH")
	if home == "" {
		return UserSettings{}, fmt.Errorf("TDL_DOOM_HOME_PATH is not set")
	}
	us := UserSettings{
		IwadsDir:       filepath.Join(home, "iwads"),
		WadsDir:        filepath.Join(home, "wads"),
		SourcePortsDir: filepath.Join(home, "source-ports"),
	}
	for _, dir := range []string{us.IwadsDir, us.WadsDir, us.SourcePortsDir} {
		if err := ensureDir(dir, "doom home path"); err != nil {
			return UserSettings{}, err
		}
	}
	return us, nil
}

// AppSettings is everything tdl records about this machine.
type AppSettings struct {
	SourcePorts     []ports.Installed `json:"source_ports"`
	Profiles        []profile.Profile `json:"profiles"`
	ReleaseCacheDir string            `json:"release_cache_path,omitempty"`
}

// HasPort reports whether a port is registered at the given version.
func (s AppSettings) HasPort(p ports.Port, version string) bool {
	for _, sp := range s.SourcePorts {
		if sp.Port == p && sp.Version == version {
			return true
		}
	}
	return false
}

// InstalledPort returns the newest registered install of the port.
func (s AppSettings) InstalledPort(p ports.Port) (ports.Installed, bool) {
	var found ports.Installed
	var ok bool
	for _, sp := range s.SourcePorts {
		if sp.Port == p {
			found, ok = sp, true
		}
	}
	return found, ok
}

// Profile returns the profile with the given name, or the default
// profile when name is empty.
func (s AppSettings) Profile(name string) (profile.Profile, bool) {
	for _, p := range s.Profiles {
		if name == "" && p.Default {
			return p, true
		}
		if name != "" && p.Name == name {
			return p, true
		}
	}
	return profile.Profile{}, false
}

// ReleaseCache returns the directory holding cached release lookups,
// beneath the settings dir unless overridden in the settings file.
func (s AppSettings) ReleaseCache() (string, error) {
	if s.ReleaseCacheDir != "" {
		return s.ReleaseCacheDir, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "releases"), nil
}

func ensureDir(dir, what string) error {
	info, err := os.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return fmt.Errorf("the %s cannot point to an existing file. "+
				"It must be either an existing directory or a path that does not exist", what)
		}
	case os.IsNotExist(err):
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", what, err)
		}
	default:
		return fmt.Errorf("inspecting %s: %w", what, err)
	}
	return nil
}
