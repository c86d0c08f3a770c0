package releases

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdl-project/tdl/internal/ports"
)

func githubTestSource(t *testing.T, handler http.HandlerFunc) *GitHubSource {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	source := NewGitHubSource()
	source.client.RetryMax = 0
	source.baseURL = server.URL
	return source
}

func TestGitHubSource_ParsesLatestRelease(t *testing.T) {
	var requested string
	source := githubTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		requested = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"tag_name": "crispy-doom-5.10.3",
			"assets": [
				{"name": "crispy-doom-5.10.3-win64.zip",
				 "browser_download_url": "https://example.com/crispy-doom-5.10.3-win64.zip"}
			]
		}`))
	})

	release, err := source.LatestRelease(ports.Crispy)
	require.NoError(t, err)
	assert.Equal(t, "/repos/fabiangreffrath/crispy-doom/releases/latest", requested)
	assert.Equal(t, "5.10.3", release.Version)
	require.Len(t, release.Assets, 1)
	assert.Equal(t, Windows, release.Assets[0].Platform)
}

func TestGitHubSource_NotFoundMeansNoRelease(t *testing.T) {
	source := githubTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "Not Found"}`, http.StatusNotFound)
	})

	_, err := source.LatestRelease(ports.Zandronum)
	var noRelease *NoReleaseError
	require.True(t, errors.As(err, &noRelease))
	assert.Equal(t, ports.Zandronum, noRelease.Port)
}

func TestGitHubSource_ServerErrorIsTransport(t *testing.T) {
	source := githubTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "oops", http.StatusInternalServerError)
	})

	_, err := source.LatestRelease(ports.Woof)
	var transport *TransportError
	assert.True(t, errors.As(err, &transport))
}

func TestGitHubSource_UndecodableBodyIsResponseError(t *testing.T) {
	source := githubTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>rate limited</html>"))
	})

	_, err := source.LatestRelease(ports.Woof)
	var response *ResponseError
	assert.True(t, errors.As(err, &response))
}

func TestFixtureSource_ReadsCannedRelease(t *testing.T) {
	source := NewFixtureSource("testdata")

	release, err := source.LatestRelease(ports.Crispy)
	require.NoError(t, err)
	assert.Equal(t, "5.10.3", release.Version)
	require.Len(t, release.Assets, 1)
	assert.Equal(t, Windows, release.Assets[0].Platform)
}

func TestFixtureSource_MissingFixtureMeansNoRelease(t *testing.T) {
	source := NewFixtureSource(t.TempDir())

	_, err := source.LatestRelease(ports.Rude)
	var noRelease *NoReleaseError
	require.True(t, errors.As(err, &noRelease))
	assert.Equal(t, ports.Rude, noRelease.Port)
}

func TestFixtureSource_CorruptFixtureIsResponseError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "drfrag666.rude.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := NewFixtureSource(dir).LatestRelease(ports.Rude)
	var response *ResponseError
	assert.True(t, errors.As(err, &response))
}
