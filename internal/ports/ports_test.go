package ports

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_AcceptsEverySupportedPort(t *testing.T) {
	for _, p := range All() {
		parsed, err := Parse(p.ID())
		require.NoError(t, err, p.ID())
		assert.Equal(t, p, parsed)
	}
}

func TestParse_RejectsUnknownInput(t *testing.T) {
	_, err := Parse("Boom")
	require.Error(t, err)
	assert.Equal(t, "Boom is not a supported source port", err.Error())
}

func TestParse_RudeIsNotPrBoomPlus(t *testing.T) {
	p, err := Parse("Rude")
	require.NoError(t, err)
	assert.Equal(t, Rude, p)
}

func TestString_UsesDisplayNames(t *testing.T) {
	assert.Equal(t, "Chocolate Doom", Chocolate.String())
	assert.Equal(t, "DSDA Doom", Dsda.String())
	assert.Equal(t, "Woof!", Woof.String())
	assert.Equal(t, "PrBoom Plus", PrBoomPlus.String())
}

func TestNamespace_EveryPortHasExactlyOneMapping(t *testing.T) {
	for _, p := range All() {
		ns := p.Namespace()
		assert.NotEmpty(t, ns.Owner, p.ID())
		assert.NotEmpty(t, ns.Repo, p.ID())
	}
}

func TestCacheKey_Format(t *testing.T) {
	assert.Equal(t, "chocolate-doom.chocolate-doom.latest", Chocolate.CacheKey())
	assert.Equal(t, "fabiangreffrath.crispy-doom.latest", Crispy.CacheKey())
	// Repository names are lowercased in the key.
	assert.Equal(t, "drfrag666.rude.latest", Rude.CacheKey())
}

func TestPort_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(EternityEngine)
	require.NoError(t, err)
	assert.Equal(t, `"EternityEngine"`, string(data))

	var p Port
	require.NoError(t, json.Unmarshal(data, &p))
	assert.Equal(t, EternityEngine, p)
}

func TestPort_UnmarshalRejectsUnknown(t *testing.T) {
	var p Port
	err := json.Unmarshal([]byte(`"Boom"`), &p)
	assert.Error(t, err)
}

func TestNewInstalled_SetsFields(t *testing.T) {
	exe := filepath.Join(t.TempDir(), "prboom.exe")
	require.NoError(t, os.WriteFile(exe, []byte("fake source port code"), 0o755))

	sp, err := NewInstalled(PrBoomPlus, exe, "2.6")
	require.NoError(t, err)
	assert.Equal(t, PrBoomPlus, sp.Port)
	assert.Equal(t, exe, sp.Path)
	assert.Equal(t, "2.6", sp.Version)
}

func TestNewInstalled_RejectsMissingPath(t *testing.T) {
	_, err := NewInstalled(PrBoomPlus, filepath.Join(t.TempDir(), "prboom.exe"), "2.6")
	require.Error(t, err)
	assert.Equal(t, "the source port must point to a valid exe file", err.Error())
}

func TestNewInstalled_RejectsDirectoryPath(t *testing.T) {
	_, err := NewInstalled(PrBoomPlus, t.TempDir(), "2.6")
	require.Error(t, err)
	assert.Equal(t, "the source port must point to a valid exe file", err.Error())
}

func TestNewInstalled_RejectsEmptyVersion(t *testing.T) {
	exe := filepath.Join(t.TempDir(), "prboom.exe")
	require.NoError(t, os.WriteFile(exe, []byte("fake source port code"), 0o755))

	_, err := NewInstalled(PrBoomPlus, exe, "")
	require.Error(t, err)
	assert.Equal(t, "the version of the source port must be set", err.Error())
}
