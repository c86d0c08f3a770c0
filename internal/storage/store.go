// Package storage provides a generic, directory-backed object store.
// Each object is serialized to JSON and written to its own file named
// after the object's ID. The store has no knowledge of the schema it
// holds; callers decide what goes in and what comes out.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// Common errors returned by the store.
var (
	// ErrNotFound is returned by Get when no object exists for the ID.
	ErrNotFound = errors.New("object not found")
	// ErrEmptyID is returned by Save when the ID is empty.
	ErrEmptyID = errors.New("to save the object, its ID must be set")
)

// InvalidPathError is returned when the store root exists but is a
// regular file rather than a directory.
type InvalidPathError struct {
	Path string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("the object path %s cannot be set to an existing file", e.Path)
}

// IDTakenError is returned by Save when an object already exists for
// the ID. The store never overwrites; callers wanting to replace an
// object must Delete first.
type IDTakenError struct {
	ID string
}

func (e *IDTakenError) Error() string {
	return fmt.Sprintf("the ID '%s' is already taken", e.ID)
}

// DecodeError is returned by Get when the stored document cannot be
// unmarshalled into the requested type.
type DecodeError struct {
	ID      string
	Wrapped error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding object '%s': %v", e.ID, e.Wrapped)
}

func (e *DecodeError) Unwrap() error { return e.Wrapped }

// Store persists JSON documents under a single directory, one file per
// object ID. It provides no locking: the launcher runs one command per
// process and nothing else touches the directory.
type Store struct {
	dir string
}

// New opens a store rooted at dir, creating the directory if it does
// not exist. Opening the same path repeatedly is fine.
func New(dir string) (*Store, error) {
	info, err := os.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return nil, &InvalidPathError{Path: dir}
		}
	case os.IsNotExist(err):
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating object directory: %w", err)
		}
	default:
		return nil, fmt.Errorf("inspecting object directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory the store is rooted at.
func (s *Store) Dir() string { return s.dir }

// Get reads the document for id into out, which must be a pointer.
func (s *Store) Get(id string, out any) error {
	path := s.objectPath(id)
	log.Debug().Str("path", path).Msg("reading object")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("object '%s': %w", id, ErrNotFound)
		}
		return fmt.Errorf("reading object '%s': %w", id, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &DecodeError{ID: id, Wrapped: err}
	}
	return nil
}

// Save writes v as the document for id. The ID must be non-empty and
// not already present; an ID is written at most once.
func (s *Store) Save(id string, v any) error {
	if id == "" {
		return ErrEmptyID
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding object '%s': %w", id, err)
	}
	path := s.objectPath(id)
	if _, err := os.Stat(path); err == nil {
		return &IDTakenError{ID: id}
	}
	log.Info().Str("id", id).Msg("saving entry")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing object '%s': %w", id, err)
	}
	return nil
}

// Delete removes the document for id. Deleting an ID that does not
// exist is not an error.
func (s *Store) Delete(id string) error {
	err := os.Remove(s.objectPath(id))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting object '%s': %w", id, err)
	}
	return nil
}

// IDs returns the IDs of every stored object, sorted.
func (s *Store) IDs() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing objects: %w", err)
	}
	var ids []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *Store) objectPath(id string) string {
	return filepath.Join(s.dir, id+".json")
}
