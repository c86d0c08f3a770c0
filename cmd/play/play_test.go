package play

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdl-project/tdl/internal/storage"
	"github.com/tdl-project/tdl/internal/wad"
)

func seedStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.New(t.TempDir())
	require.NoError(t, err)

	entryway, err := wad.NewMapInfo("MAP01", "Entryway")
	require.NoError(t, err)
	underhalls, err := wad.NewMapInfo("MAP02", "Underhalls")
	require.NoError(t, err)
	entry, err := wad.NewEntry("DOOM2", "DOOM2.WAD", "DOOM II: Hell on Earth",
		"1994-09-30", "id Software", []wad.MapInfo{entryway, underhalls})
	require.NoError(t, err)
	require.NoError(t, store.Save(entry.ID, entry))
	return store
}

func TestResolveMap(t *testing.T) {
	store := seedStore(t)

	chosen, err := resolveMap(store, "DOOM2", "MAP02")
	require.NoError(t, err)
	assert.Equal(t, "DOOM2.WAD", chosen.entry.Name)
	assert.Equal(t, "2", chosen.warp)
}

func TestResolveMap_NoMapMeansFirstMap(t *testing.T) {
	store := seedStore(t)

	chosen, err := resolveMap(store, "DOOM2", "")
	require.NoError(t, err)
	assert.Empty(t, chosen.warp)
}

func TestResolveMap_UnknownWad(t *testing.T) {
	store := seedStore(t)

	_, err := resolveMap(store, "sigil", "")
	assert.ErrorContains(t, err, "no imported WAD is named sigil")
}

func TestResolveMap_UnknownMap(t *testing.T) {
	store := seedStore(t)

	_, err := resolveMap(store, "DOOM2", "MAP32")
	assert.ErrorContains(t, err, "DOOM2.WAD has no map MAP32")
}

func TestAllEntries(t *testing.T) {
	store := seedStore(t)

	entries, err := allEntries(store)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Len(t, entries[0].Maps, 2)
}
