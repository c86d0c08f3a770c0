package releases

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog/log"

	"github.com/tdl-project/tdl/internal/ports"
)

// Source answers "what is the latest published release of this port?".
// The production implementation queries GitHub; FixtureSource replays
// canned responses for tests and offline use.
type Source interface {
	LatestRelease(port ports.Port) (Release, error)
}

const githubAPIBaseURL = "https://api.github.com"

// GitHubSource resolves the latest release of a port from the GitHub
// releases API.
type GitHubSource struct {
	client  *retryablehttp.Client
	baseURL string
}

// NewGitHubSource builds a source backed by the public GitHub API.
func NewGitHubSource() *GitHubSource {
	client := retryablehttp.NewClient()
	client.Logger = nil
	client.RetryMax = 3
	client.HTTPClient.Timeout = 30 * time.Second
	return &GitHubSource{client: client, baseURL: githubAPIBaseURL}
}

// LatestRelease fetches and normalizes the release marked "latest" for
// the port. GitHub answers 404 for repositories that have never marked
// a release as latest; that maps to NoReleaseError.
func (s *GitHubSource) LatestRelease(port ports.Port) (Release, error) {
	ns := port.Namespace()
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", s.baseURL, ns.Owner, ns.Repo)
	log.Debug().Str("url", url).Msg("querying latest release")

	resp, err := s.client.Get(url)
	if err != nil {
		return Release{}, &TransportError{Wrapped: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return Release{}, &NoReleaseError{Port: port}
	case resp.StatusCode != http.StatusOK:
		return Release{}, &TransportError{
			Wrapped: fmt.Errorf("github responded with status %d", resp.StatusCode),
		}
	}

	var raw githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return Release{}, &ResponseError{Wrapped: err}
	}
	return parseRelease(port, raw)
}

// FixtureSource replays canned GitHub release documents from a local
// directory. A port's document lives at <dir>/<owner>.<repo>.json; a
// missing document means the port has no latest release.
type FixtureSource struct {
	dir string
}

// NewFixtureSource builds a source reading fixtures from dir.
func NewFixtureSource(dir string) *FixtureSource {
	return &FixtureSource{dir: dir}
}

// LatestRelease reads and normalizes the port's fixture document.
func (s *FixtureSource) LatestRelease(port ports.Port) (Release, error) {
	ns := port.Namespace()
	path := filepath.Join(s.dir, fmt.Sprintf("%s.%s.json", ns.Owner, strings.ToLower(ns.Repo)))
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Release{}, &NoReleaseError{Port: port}
		}
		return Release{}, &TransportError{Wrapped: err}
	}
	var raw githubRelease
	if err := json.Unmarshal(data, &raw); err != nil {
		return Release{}, &ResponseError{Wrapped: err}
	}
	return parseRelease(port, raw)
}
