// Package releases resolves the latest published version of a source
// port. Lookups go through a filesystem-backed cache with a 24 hour
// time-to-live; on a miss the configured Source is asked, and the
// answer, including an authoritative "there is no latest release", is
// written back to the cache.
package releases

import (
	"runtime"
	"time"

	"github.com/tdl-project/tdl/internal/ports"
)

// Platform labels the operating system a release asset targets.
type Platform string

const (
	Windows Platform = "windows"
	MacOS   Platform = "macos"
	Linux   Platform = "linux"
)

// Platforms returns the fixed platform set in canonical order. Assets
// in a Release always appear in this order.
func Platforms() []Platform {
	return []Platform{Windows, MacOS, Linux}
}

// CurrentPlatform maps runtime.GOOS onto the platform set. The second
// return is false on operating systems no port publishes builds for.
func CurrentPlatform() (Platform, bool) {
	switch runtime.GOOS {
	case "windows":
		return Windows, true
	case "darwin":
		return MacOS, true
	case "linux":
		return Linux, true
	}
	return "", false
}

// NoLatestVersion is the reserved version string marking a memoized
// "no release found" answer in the cache.
const NoLatestVersion = "no_latest_release"

// Asset is one downloadable artifact of a release.
type Asset struct {
	Platform Platform `json:"platform"`
	URL      string   `json:"url"`
}

// Release describes one published version of a source port. Assets
// holds at most one entry per platform.
type Release struct {
	Port    ports.Port `json:"source_port"`
	Owner   string     `json:"owner"`
	Repo    string     `json:"repository"`
	Version string     `json:"version"`
	Assets  []Asset    `json:"assets"`
}

// IsAbsent reports whether the release is a memoized negative result.
func (r Release) IsAbsent() bool { return r.Version == NoLatestVersion }

// AssetFor returns the download asset for the given platform, if the
// release has one.
func (r Release) AssetFor(platform Platform) (Asset, bool) {
	for _, a := range r.Assets {
		if a.Platform == platform {
			return a, true
		}
	}
	return Asset{}, false
}

// absentRelease builds the negative-sentinel descriptor cached for a
// port that has no latest release.
func absentRelease(port ports.Port) Release {
	ns := port.Namespace()
	return Release{
		Port:    port,
		Owner:   ns.Owner,
		Repo:    ns.Repo,
		Version: NoLatestVersion,
	}
}

// Cached wraps a Release with the instant it was fetched, which is what
// actually gets persisted in the object store.
type Cached struct {
	Release   Release   `json:"release"`
	FetchedAt time.Time `json:"fetched_at"`
}
