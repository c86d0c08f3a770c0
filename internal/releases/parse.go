package releases

import (
	"regexp"

	"github.com/tdl-project/tdl/internal/ports"
)

// githubRelease mirrors the fields of a GitHub release document that
// the parser cares about.
type githubRelease struct {
	TagName string        `json:"tag_name"`
	Assets  []githubAsset `json:"assets"`
}

type githubAsset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// versionPattern extracts a version from a release tag: a leading run
// of digits followed by dot- or letter-separated groups. Handles tags
// like "v3.0.0", "2.6.1um", "4.02.00" and "crispy-doom-5.10.3".
var versionPattern = regexp.MustCompile(`\d+(\.\d+)*([a-z]+\d*)*`)

// assetPatterns holds the per-port, per-platform asset name patterns.
// A port with no entry for a platform simply does not publish a build
// for it; Zandronum publishes none of its builds through GitHub and has
// no patterns at all. Compiled once, never mutated.
var assetPatterns = map[ports.Port]map[Platform]*regexp.Regexp{
	ports.Chocolate: {
		Windows: regexp.MustCompile(`^chocolate-doom-\d.*-win32\.zip$`),
	},
	ports.Crispy: {
		Windows: regexp.MustCompile(`^crispy-doom-\d.*-win(32|64)\.zip$`),
	},
	ports.DoomRetro: {
		Windows: regexp.MustCompile(`^doomretro-\d.*-win(32|64)\.zip$`),
	},
	ports.Dsda: {
		Windows: regexp.MustCompile(`^dsda-doom-\d.*-win(32|64)\.zip$`),
		MacOS:   regexp.MustCompile(`^dsda-doom-\d.*\.dmg$`),
	},
	ports.EternityEngine: {
		Windows: regexp.MustCompile(`(?i)^ee-\d.*-win64\.zip$`),
		MacOS:   regexp.MustCompile(`(?i)^ee-\d.*-macos\.dmg$`),
	},
	ports.GzDoom: {
		Windows: regexp.MustCompile(`(?i)^gzdoom-\d.*windows.*\.zip$`),
		MacOS:   regexp.MustCompile(`(?i)^gzdoom-\d.*macos.*\.zip$`),
		Linux:   regexp.MustCompile(`(?i)^gzdoom.*amd64\.deb$`),
	},
	ports.LzDoom: {
		Windows: regexp.MustCompile(`(?i)^lzdoom-\d.*x64\.zip$`),
		MacOS:   regexp.MustCompile(`(?i)^lzdoom-\d.*macos\.zip$`),
		Linux:   regexp.MustCompile(`(?i)^lzdoom.*amd64\.deb$`),
	},
	ports.Odamex: {
		Windows: regexp.MustCompile(`^odamex-win64-\d.*\.zip$`),
		MacOS:   regexp.MustCompile(`^odamex-macos-\d.*\.dmg$`),
	},
	ports.PrBoomPlus: {
		Windows: regexp.MustCompile(`(?i)^prboom-plus-\d.*-w(in)?32\.zip$`),
	},
	ports.Rude: {
		Windows: regexp.MustCompile(`(?i)^rude.*\.zip$`),
	},
	ports.Woof: {
		Windows: regexp.MustCompile(`(?i)^woof-\d.*-win(32|64)\.zip$`),
	},
	ports.Zandronum: {},
}

// parseRelease normalizes a raw GitHub release document into a Release
// for the given port. A port with no asset patterns still parses
// successfully; its release just carries no assets.
func parseRelease(port ports.Port, raw githubRelease) (Release, error) {
	if raw.TagName == "" {
		return Release{}, &NoReleaseError{Port: port}
	}
	version := versionPattern.FindString(raw.TagName)
	if version == "" {
		return Release{}, &VersionError{Tag: raw.TagName, Port: port}
	}
	ns := port.Namespace()
	release := Release{
		Port:    port,
		Owner:   ns.Owner,
		Repo:    ns.Repo,
		Version: version,
	}
	patterns := assetPatterns[port]
	for _, platform := range Platforms() {
		pattern, ok := patterns[platform]
		if !ok {
			continue
		}
		for _, asset := range raw.Assets {
			if pattern.MatchString(asset.Name) {
				release.Assets = append(release.Assets, Asset{
					Platform: platform,
					URL:      asset.BrowserDownloadURL,
				})
				break
			}
		}
	}
	return release, nil
}
