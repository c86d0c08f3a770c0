// Package wad reads the header and lump directory of Doom WAD archives
// and models the records tdl keeps about imported WADs.
package wad

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

const directoryEntrySize = 16

// These patterns run in a loop during imports, so they are compiled
// once. DOOM.WAD also contains music lumps named D_ExMx; the patterns
// are anchored so those never register as maps.
var (
	doom2MapPattern = regexp.MustCompile(`^MAP\d{2}$`)
	doomMapPattern  = regexp.MustCompile(`^E[1-9]M[1-9]$`)
)

// Header is the 12-byte WAD header.
type Header struct {
	Type             string
	DirectoryEntries uint32
	DirectoryOffset  uint32
}

// DirectoryEntry is one 16-byte lump directory record.
type DirectoryEntry struct {
	LumpOffset uint32
	LumpSize   uint32
	LumpName   string
}

// Metadata is the parsed structure of a WAD file.
type Metadata struct {
	Header    Header
	Directory []DirectoryEntry
}

// ReadMetadata parses the header and directory of the WAD at path.
func ReadMetadata(path string) (Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("opening WAD file: %w", err)
	}
	defer f.Close()

	header, err := readHeader(path, f)
	if err != nil {
		return Metadata{}, err
	}
	directory, err := readDirectory(f, header)
	if err != nil {
		return Metadata{}, err
	}
	return Metadata{Header: header, Directory: directory}, nil
}

func readHeader(path string, r io.Reader) (Header, error) {
	var raw [12]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return Header{}, fmt.Errorf("reading WAD header from %s: %w", path, err)
	}
	wadType := string(raw[:4])
	if wadType != "IWAD" && wadType != "PWAD" {
		return Header{}, fmt.Errorf("failed to parse %s: this file is likely not a WAD file", path)
	}
	return Header{
		Type:             wadType,
		DirectoryEntries: binary.LittleEndian.Uint32(raw[4:8]),
		DirectoryOffset:  binary.LittleEndian.Uint32(raw[8:12]),
	}, nil
}

func readDirectory(r io.ReadSeeker, header Header) ([]DirectoryEntry, error) {
	if _, err := r.Seek(int64(header.DirectoryOffset), io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking to WAD directory: %w", err)
	}
	directory := make([]DirectoryEntry, 0, header.DirectoryEntries)
	var raw [directoryEntrySize]byte
	for i := uint32(0); i < header.DirectoryEntries; i++ {
		if _, err := io.ReadFull(r, raw[:]); err != nil {
			return nil, fmt.Errorf("reading WAD directory entry %d: %w", i, err)
		}
		directory = append(directory, DirectoryEntry{
			LumpOffset: binary.LittleEndian.Uint32(raw[0:4]),
			LumpSize:   binary.LittleEndian.Uint32(raw[4:8]),
			LumpName:   strings.TrimRight(string(raw[8:16]), "\x00"),
		})
	}
	return directory, nil
}

// MapLumps returns the names of the map marker lumps in directory
// order. Map markers are zero-size lumps with a valid map number.
func (m Metadata) MapLumps() []string {
	var maps []string
	for _, entry := range m.Directory {
		if entry.LumpSize == 0 && IsMapNumber(entry.LumpName) {
			maps = append(maps, entry.LumpName)
		}
	}
	return maps
}

// MapInfo describes one playable map.
type MapInfo struct {
	// Number is the map marker, either MAPxx (DOOM2) or ExMy (DOOM).
	Number string `json:"number"`
	Name   string `json:"name"`
	// Warp is the value for a source port's -warp argument: "12" for
	// MAP12, "1 1" for E1M1. Stored as a string because of the
	// episode/map form.
	Warp string `json:"warp"`
}

// IsMapNumber reports whether s is a valid map marker in either the
// DOOM or DOOM2 format.
func IsMapNumber(s string) bool {
	return doomMapPattern.MatchString(s) || doom2MapPattern.MatchString(s)
}

// NewMapInfo validates the map number and derives the warp value.
func NewMapInfo(number, name string) (MapInfo, error) {
	if number == "" {
		return MapInfo{}, fmt.Errorf("a number must be provided for the map; it should be in the DOOM or DOOM2 format")
	}
	if !IsMapNumber(number) {
		return MapInfo{}, fmt.Errorf("the map number must be in the DOOM or DOOM2 format; valid values are ExMx or MAPxx")
	}
	if name == "" {
		return MapInfo{}, fmt.Errorf("a name must be provided for the map")
	}
	var warp string
	if doom2MapPattern.MatchString(number) {
		warp = strings.TrimPrefix(number[3:], "0")
	} else {
		warp = fmt.Sprintf("%c %c", number[1], number[3])
	}
	return MapInfo{Number: number, Name: name, Warp: warp}, nil
}

// Entry is the record kept for an imported WAD.
type Entry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	ReleaseDate string    `json:"release_date"`
	Author      string    `json:"author"`
	Maps        []MapInfo `json:"maps"`
}

// NewEntry validates and builds an Entry.
func NewEntry(id, name, title, releaseDate, author string, maps []MapInfo) (Entry, error) {
	switch {
	case id == "":
		return Entry{}, fmt.Errorf("the ID for the WAD entry must be set")
	case name == "":
		return Entry{}, fmt.Errorf("the name for the WAD entry must be set")
	case title == "":
		return Entry{}, fmt.Errorf("the title for the WAD entry must be set")
	case releaseDate == "":
		return Entry{}, fmt.Errorf("the release date for the WAD entry must be set")
	case author == "":
		return Entry{}, fmt.Errorf("the author for the WAD entry must be set")
	}
	return Entry{
		ID:          id,
		Name:        name,
		Title:       title,
		ReleaseDate: releaseDate,
		Author:      author,
		Maps:        maps,
	}, nil
}
