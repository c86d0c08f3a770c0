package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapRecord struct {
	Number string `json:"number"`
	Name   string `json:"name"`
}

type wadRecord struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Title string      `json:"title"`
	Maps  []mapRecord `json:"maps"`
}

func doom2Record() wadRecord {
	return wadRecord{
		ID:    "DOOM2",
		Name:  "DOOM2.WAD",
		Title: "Doom II: Hell on Earth",
		Maps: []mapRecord{
			{Number: "MAP01", Name: "Entryway"},
			{Number: "MAP02", Name: "Underhalls"},
			{Number: "MAP03", Name: "The Gantlet"},
		},
	}
}

func TestNew_UsesExistingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "wads")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	s, err := New(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, s.Dir())
}

func TestNew_CreatesDirectoryIfMissing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sub", "wads")

	_, err := New(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNew_RejectsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wads")
	require.NoError(t, os.WriteFile(path, []byte("some file content"), 0o644))

	_, err := New(path)
	require.Error(t, err)
	var pathErr *InvalidPathError
	assert.True(t, errors.As(err, &pathErr))
}

func TestSave_PersistsEntry(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	entry := doom2Record()
	require.NoError(t, s.Save(entry.ID, &entry))

	info, err := os.Stat(filepath.Join(dir, "DOOM2.json"))
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())
}

func TestSave_RejectsEmptyID(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	entry := doom2Record()
	err = s.Save("", &entry)
	assert.ErrorIs(t, err, ErrEmptyID)
}

func TestSave_RejectsTakenID(t *testing.T) {
	dir := t.TempDir()
	original := []byte("file already exists")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "DOOM2.json"), original, 0o644))

	s, err := New(dir)
	require.NoError(t, err)

	entry := doom2Record()
	err = s.Save(entry.ID, &entry)
	var taken *IDTakenError
	require.True(t, errors.As(err, &taken))
	assert.Equal(t, "DOOM2", taken.ID)

	// The original content must be untouched.
	data, err := os.ReadFile(filepath.Join(dir, "DOOM2.json"))
	require.NoError(t, err)
	assert.Equal(t, original, data)
}

func TestGet_RetrievesSavedEntry(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	entry := doom2Record()
	require.NoError(t, s.Save(entry.ID, &entry))

	var got wadRecord
	require.NoError(t, s.Get(entry.ID, &got))
	assert.Equal(t, entry, got)
}

func TestGet_MissingObject(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	var got wadRecord
	err = s.Get("DOOM2", &got)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGet_UnparsableDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "DOOM2.json"), []byte("not json"), 0o644))

	s, err := New(dir)
	require.NoError(t, err)

	var got wadRecord
	err = s.Get("DOOM2", &got)
	var decodeErr *DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}

func TestDelete_RemovesObject(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	entry := doom2Record()
	require.NoError(t, s.Save(entry.ID, &entry))
	require.NoError(t, s.Delete(entry.ID))

	_, err = os.Stat(filepath.Join(dir, "DOOM2.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestDelete_MissingObjectIsNotAnError(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, s.Delete("NEVER-SAVED"))
}

func TestIDs_ListsSortedStoredIDs(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	entry := doom2Record()
	require.NoError(t, s.Save("TNT", &entry))
	require.NoError(t, s.Save("DOOM2", &entry))
	require.NoError(t, s.Save("PLUTONIA", &entry))

	ids, err := s.IDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"DOOM2", "PLUTONIA", "TNT"}, ids)
}
