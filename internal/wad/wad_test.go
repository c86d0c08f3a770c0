package wad

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestWad assembles a minimal WAD file whose directory holds the
// given lumps.
func writeTestWad(t *testing.T, path, wadType string, lumps []DirectoryEntry) {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteString(wadType)
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(len(lumps))))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(12)))
	for _, lump := range lumps {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, lump.LumpOffset))
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, lump.LumpSize))
		var name [8]byte
		copy(name[:], lump.LumpName)
		buf.Write(name[:])
	}
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestReadMetadata_ParsesHeaderAndDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "DOOM2.WAD")
	writeTestWad(t, path, "IWAD", []DirectoryEntry{
		{LumpOffset: 0, LumpSize: 0, LumpName: "MAP01"},
		{LumpOffset: 0, LumpSize: 1024, LumpName: "THINGS"},
		{LumpOffset: 1024, LumpSize: 0, LumpName: "MAP02"},
	})

	metadata, err := ReadMetadata(path)
	require.NoError(t, err)
	assert.Equal(t, "IWAD", metadata.Header.Type)
	assert.Equal(t, uint32(3), metadata.Header.DirectoryEntries)
	require.Len(t, metadata.Directory, 3)
	assert.Equal(t, "MAP01", metadata.Directory[0].LumpName)
	assert.Equal(t, uint32(1024), metadata.Directory[1].LumpSize)
}

func TestReadMetadata_AcceptsPWAD(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CUSTOM.WAD")
	writeTestWad(t, path, "PWAD", []DirectoryEntry{
		{LumpName: "MAP01"},
	})

	metadata, err := ReadMetadata(path)
	require.NoError(t, err)
	assert.Equal(t, "PWAD", metadata.Header.Type)
}

func TestReadMetadata_RejectsNonWadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.txt")
	require.NoError(t, os.WriteFile(path, []byte("just some text, definitely long enough"), 0o644))

	_, err := ReadMetadata(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a WAD file")
}

func TestMapLumps_OnlyZeroSizeMarkersCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "DOOM.WAD")
	writeTestWad(t, path, "IWAD", []DirectoryEntry{
		{LumpSize: 0, LumpName: "E1M1"},
		{LumpSize: 64, LumpName: "THINGS"},
		{LumpSize: 9000, LumpName: "D_E1M1"}, // music lump, not a map
		{LumpSize: 0, LumpName: "E1M2"},
	})

	metadata, err := ReadMetadata(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"E1M1", "E1M2"}, metadata.MapLumps())
}

func TestNewMapInfo_Doom2Format(t *testing.T) {
	m, err := NewMapInfo("MAP01", "Entryway")
	require.NoError(t, err)
	assert.Equal(t, "MAP01", m.Number)
	assert.Equal(t, "Entryway", m.Name)
	assert.Equal(t, "1", m.Warp)

	m, err = NewMapInfo("MAP12", "The Factory")
	require.NoError(t, err)
	assert.Equal(t, "12", m.Warp)
}

func TestNewMapInfo_DoomFormat(t *testing.T) {
	m, err := NewMapInfo("E1M1", "Hanger")
	require.NoError(t, err)
	assert.Equal(t, "1 1", m.Warp)

	m, err = NewMapInfo("E4M8", "Unto the Cruel")
	require.NoError(t, err)
	assert.Equal(t, "4 8", m.Warp)
}

func TestNewMapInfo_Validation(t *testing.T) {
	_, err := NewMapInfo("", "Entryway")
	assert.Error(t, err)

	_, err = NewMapInfo("MAP01", "")
	assert.Error(t, err)

	for _, bad := range []string{"MAP1", "map01", "MA01", "e1m1", "D_E1M1"} {
		_, err := NewMapInfo(bad, "Hanger")
		assert.Error(t, err, bad)
	}
}

func TestNewEntry_Validation(t *testing.T) {
	maps := []MapInfo{{Number: "MAP01", Name: "Entryway", Warp: "1"}}

	entry, err := NewEntry("DOOM2", "DOOM2.WAD", "Doom II: Hell on Earth", "1994-09-30", "id Software", maps)
	require.NoError(t, err)
	assert.Equal(t, "DOOM2", entry.ID)
	assert.Len(t, entry.Maps, 1)

	cases := []struct {
		id, name, title, date, author string
	}{
		{"", "DOOM2.WAD", "Doom II", "1994-09-30", "id Software"},
		{"DOOM2", "", "Doom II", "1994-09-30", "id Software"},
		{"DOOM2", "DOOM2.WAD", "", "1994-09-30", "id Software"},
		{"DOOM2", "DOOM2.WAD", "Doom II", "", "id Software"},
		{"DOOM2", "DOOM2.WAD", "Doom II", "1994-09-30", ""},
	}
	for _, tc := range cases {
		_, err := NewEntry(tc.id, tc.name, tc.title, tc.date, tc.author, maps)
		assert.Error(t, err)
	}
}

func TestEntryFromIWAD_BuildsCatalogEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "DOOM2.WAD")
	writeTestWad(t, path, "IWAD", []DirectoryEntry{
		{LumpSize: 0, LumpName: "MAP01"},
		{LumpSize: 512, LumpName: "THINGS"},
		{LumpSize: 0, LumpName: "MAP02"},
		{LumpSize: 0, LumpName: "MAP03"},
	})

	entry, err := EntryFromIWAD(path)
	require.NoError(t, err)
	assert.Equal(t, "DOOM2", entry.ID)
	assert.Equal(t, "DOOM2.WAD", entry.Name)
	assert.Equal(t, "Doom II: Hell on Earth", entry.Title)
	assert.Equal(t, "1994-09-30", entry.ReleaseDate)
	assert.Equal(t, "id Software", entry.Author)
	require.Len(t, entry.Maps, 3)
	assert.Equal(t, "Entryway", entry.Maps[0].Name)
	assert.Equal(t, "Underhalls", entry.Maps[1].Name)
	assert.Equal(t, "The Gantlet", entry.Maps[2].Name)
}

func TestEntryFromIWAD_RejectsUnknownIWAD(t *testing.T) {
	path := filepath.Join(t.TempDir(), "HERETIC.WAD")
	writeTestWad(t, path, "IWAD", []DirectoryEntry{
		{LumpSize: 0, LumpName: "E1M1"},
	})

	_, err := EntryFromIWAD(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a supported IWAD")
}
