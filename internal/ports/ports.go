// Package ports defines the closed set of supported Doom source ports,
// the GitHub namespace each one is published under, and the record kept
// for a locally installed port.
package ports

import (
	"fmt"
	"os"
	"strings"
)

// Port identifies one supported source port.
type Port int

const (
	Chocolate Port = iota
	Crispy
	DoomRetro
	Dsda
	EternityEngine
	GzDoom
	LzDoom
	Odamex
	PrBoomPlus
	Rude
	Woof
	Zandronum
)

// ids holds the canonical token for each port, used on the command line
// and in serialized records.
var ids = [...]string{
	Chocolate:      "Chocolate",
	Crispy:         "Crispy",
	DoomRetro:      "DoomRetro",
	Dsda:           "Dsda",
	EternityEngine: "EternityEngine",
	GzDoom:         "GzDoom",
	LzDoom:         "LzDoom",
	Odamex:         "Odamex",
	PrBoomPlus:     "PrBoomPlus",
	Rude:           "Rude",
	Woof:           "Woof",
	Zandronum:      "Zandronum",
}

// names holds the human-readable display name for each port.
var names = [...]string{
	Chocolate:      "Chocolate Doom",
	Crispy:         "Crispy Doom",
	DoomRetro:      "Doom Retro",
	Dsda:           "DSDA Doom",
	EternityEngine: "Eternity Engine",
	GzDoom:         "GZDoom",
	LzDoom:         "LZDoom",
	Odamex:         "Odamex",
	PrBoomPlus:     "PrBoom Plus",
	Rude:           "RUDE",
	Woof:           "Woof!",
	Zandronum:      "Zandronum",
}

// Namespace is the owner/repository pair a port's releases are
// published under.
type Namespace struct {
	Owner string
	Repo  string
}

// namespaces maps every port to exactly one namespace. The table is
// never mutated after process start.
var namespaces = map[Port]Namespace{
	Chocolate:      {Owner: "chocolate-doom", Repo: "chocolate-doom"},
	Crispy:         {Owner: "fabiangreffrath", Repo: "crispy-doom"},
	DoomRetro:      {Owner: "bradharding", Repo: "doomretro"},
	Dsda:           {Owner: "kraflab", Repo: "dsda-doom"},
	EternityEngine: {Owner: "team-eternity", Repo: "eternity"},
	GzDoom:         {Owner: "coelckers", Repo: "gzdoom"},
	LzDoom:         {Owner: "drfrag666", Repo: "gzdoom"},
	Odamex:         {Owner: "odamex", Repo: "odamex"},
	PrBoomPlus:     {Owner: "coelckers", Repo: "prboom-plus"},
	Rude:           {Owner: "drfrag666", Repo: "RUDE"},
	Woof:           {Owner: "fabiangreffrath", Repo: "woof"},
	Zandronum:      {Owner: "TorrSamaho", Repo: "zandronum"},
}

// All returns every supported port in declaration order.
func All() []Port {
	all := make([]Port, len(ids))
	for i := range ids {
		all[i] = Port(i)
	}
	return all
}

// Parse converts a command-line token into a Port.
func Parse(input string) (Port, error) {
	for i, id := range ids {
		if id == input {
			return Port(i), nil
		}
	}
	return 0, fmt.Errorf("%s is not a supported source port", input)
}

// ID returns the canonical token for the port, e.g. "PrBoomPlus".
func (p Port) ID() string { return ids[p] }

// String returns the display name for the port, e.g. "PrBoom Plus".
func (p Port) String() string { return names[p] }

// Namespace returns the owner/repository the port is published under.
func (p Port) Namespace() Namespace { return namespaces[p] }

// CacheKey returns the deterministic release-cache key for the port:
// "<owner>.<repository-lowercased>.latest".
func (p Port) CacheKey() string {
	ns := namespaces[p]
	return fmt.Sprintf("%s.%s.latest", ns.Owner, strings.ToLower(ns.Repo))
}

// MarshalText writes the canonical token, so Port serializes stably in
// JSON records.
func (p Port) MarshalText() ([]byte, error) {
	return []byte(p.ID()), nil
}

// UnmarshalText parses the canonical token.
func (p *Port) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Installed records a source port available on this machine.
type Installed struct {
	Port    Port   `json:"source_port"`
	Path    string `json:"path"`
	Version string `json:"version"`
}

// NewInstalled validates and builds an Installed record. The path must
// point at an existing executable file and the version must be set.
func NewInstalled(port Port, path, version string) (Installed, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return Installed{}, fmt.Errorf("the source port must point to a valid exe file")
	}
	if version == "" {
		return Installed{}, fmt.Errorf("the version of the source port must be set")
	}
	return Installed{Port: port, Path: path, Version: version}, nil
}
