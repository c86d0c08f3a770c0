// Package install downloads source-port release archives and unpacks
// them into the local source-ports directory.
package install

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog/log"
	"github.com/zhyee/zipstream"

	"github.com/tdl-project/tdl/internal/ports"
	"github.com/tdl-project/tdl/internal/progress"
	"github.com/tdl-project/tdl/internal/releases"
)

// executables maps each port to the base name of the binary its release
// archives ship. The matcher also accepts a .exe suffix.
var executables = map[ports.Port]string{
	ports.Chocolate:      "chocolate-doom",
	ports.Crispy:         "crispy-doom",
	ports.DoomRetro:      "doomretro",
	ports.Dsda:           "dsda-doom",
	ports.EternityEngine: "eternity",
	ports.GzDoom:         "gzdoom",
	ports.LzDoom:         "lzdoom",
	ports.Odamex:         "odamex",
	ports.PrBoomPlus:     "prboom-plus",
	ports.Rude:           "rude",
	ports.Woof:           "woof",
	ports.Zandronum:      "zandronum",
}

// Installer fetches release archives over HTTP and unpacks them.
type Installer struct {
	client *retryablehttp.Client
}

func NewInstaller() *Installer {
	client := retryablehttp.NewClient()
	client.Logger = nil
	client.RetryMax = 3
	client.HTTPClient.Timeout = 10 * time.Minute
	return &Installer{client: client}
}

// Dir returns the directory a release unpacks into, relative to the
// source-ports root.
func Dir(release releases.Release) string {
	return fmt.Sprintf("%s-%s", strings.ToLower(release.Port.ID()), release.Version)
}

// Install downloads the current platform's asset of the release and
// extracts it under root, returning the resulting installation. It
// fails when the target directory already exists.
func (i *Installer) Install(release releases.Release, root string) (ports.Installed, error) {
	platform, ok := releases.CurrentPlatform()
	if !ok {
		return ports.Installed{}, fmt.Errorf("no release assets are published for this operating system")
	}
	asset, ok := release.AssetFor(platform)
	if !ok {
		return ports.Installed{}, fmt.Errorf("%s %s has no download for %s",
			release.Port, release.Version, platform)
	}

	dest := filepath.Join(root, Dir(release))
	if _, err := os.Stat(dest); err == nil {
		return ports.Installed{}, fmt.Errorf("%s is already installed at %s", release.Version, dest)
	} else if !errors.Is(err, os.ErrNotExist) {
		return ports.Installed{}, err
	}

	log.Info().
		Str("port", release.Port.String()).
		Str("version", release.Version).
		Str("url", asset.URL).
		Msg("downloading release asset")

	resp, err := i.client.Get(asset.URL)
	if err != nil {
		return ports.Installed{}, fmt.Errorf("failed to download %s: %w", asset.URL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return ports.Installed{}, fmt.Errorf("failed to download %s: status %d", asset.URL, resp.StatusCode)
	}

	fileName := filepath.Base(asset.URL)
	body := progress.ReadCloser(resp.ContentLength, resp.Body, fileName)
	defer body.Close()

	// Zandronum-style ports publish bare binaries rather than
	// archives; those are saved as-is.
	if !strings.EqualFold(filepath.Ext(fileName), ".zip") {
		path, err := saveFile(body, dest, fileName)
		if err != nil {
			os.RemoveAll(dest)
			return ports.Installed{}, err
		}
		return ports.NewInstalled(release.Port, path, release.Version)
	}

	if err := extractZip(body, dest); err != nil {
		os.RemoveAll(dest)
		return ports.Installed{}, err
	}

	exe, err := findExecutable(dest, release.Port)
	if err != nil {
		return ports.Installed{}, err
	}
	return ports.NewInstalled(release.Port, exe, release.Version)
}

func saveFile(r io.Reader, dest, name string) (string, error) {
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dest, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o755)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", name, err)
	}
	return path, nil
}

// extractZip streams a zip archive into dest without buffering the
// whole file.
func extractZip(r io.Reader, dest string) error {
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return err
	}

	zr := zipstream.NewReader(r)
	for {
		entry, err := zr.GetNextEntry()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read archive entry: %w", err)
		}

		path, err := entryPath(dest, entry.Name)
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if err := os.MkdirAll(path, 0o755); err != nil {
				return err
			}
			continue
		}
		if err := writeEntry(entry, path); err != nil {
			return err
		}
	}
}

// entryPath joins an archive member name onto dest, rejecting names
// that would escape it.
func entryPath(dest, name string) (string, error) {
	path := filepath.Join(dest, filepath.FromSlash(name))
	if !strings.HasPrefix(path, filepath.Clean(dest)+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry %s escapes the destination directory", name)
	}
	return path, nil
}

func writeEntry(entry *zipstream.Entry, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	src, err := entry.Open()
	if err != nil {
		return fmt.Errorf("failed to open archive entry %s: %w", entry.Name, err)
	}
	defer src.Close()

	mode := entry.Mode().Perm()
	if mode == 0 {
		mode = 0o644
	}
	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to extract %s: %w", entry.Name, err)
	}
	return nil
}

// findExecutable walks the unpacked tree for the port's binary.
func findExecutable(dir string, port ports.Port) (string, error) {
	want := executables[port]
	var found string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() || found != "" {
			return err
		}
		name := strings.ToLower(d.Name())
		if name == want || name == want+".exe" {
			found = path
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if found == "" {
		return "", fmt.Errorf("no %s executable found under %s", port, dir)
	}
	return found, nil
}
