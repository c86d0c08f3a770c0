package wad

import (
	"fmt"
	"path/filepath"
	"strings"
)

// IWADInfo carries the fixed metadata for a commercially released IWAD.
// The original games predate MAPINFO lumps, so the titles and map names
// cannot be read out of the archive itself.
type IWADInfo struct {
	Title       string
	ReleaseDate string
	Author      string
	MapNames    map[string]string
}

var iwads = map[string]IWADInfo{
	"DOOM.WAD": {
		Title:       "The Ultimate DOOM",
		ReleaseDate: "1995-04-30",
		Author:      "id Software",
		MapNames: map[string]string{
			"E1M1": "Hanger",
			"E1M2": "Nuclear Plant",
			"E1M3": "Toxin Refinery",
			"E1M4": "Command Control",
			"E1M5": "Phobos Lab",
			"E1M6": "Central Processing",
			"E1M7": "Computer Station",
			"E1M8": "Phobos Anomaly",
			"E1M9": "Military Base",
			"E2M1": "Deimos Anomaly",
			"E2M2": "Containment Area",
			"E2M3": "Refinery",
			"E2M4": "Deimos Lab",
			"E2M5": "Command Center",
			"E2M6": "Halls of the Damned",
			"E2M7": "Spawning Vats",
			"E2M8": "Tower of Babel",
			"E2M9": "Fortress of Mystery",
			"E3M1": "Hell Keep",
			"E3M2": "Slough of Despair",
			"E3M3": "Pandemonium",
			"E3M4": "House of Pain",
			"E3M5": "Unholy Cathedral",
			"E3M6": "Mt. Erebus",
			"E3M7": "Limbo",
			"E3M8": "Dis",
			"E3M9": "Warrens",
			"E4M1": "Hell Beneath",
			"E4M2": "Perfect Hatred",
			"E4M3": "Sever the Wicked",
			"E4M4": "Unruly Evil",
			"E4M5": "They Will Repent",
			"E4M6": "Against Thee Wickedly",
			"E4M7": "And Hell Followed",
			"E4M8": "Unto the Cruel",
			"E4M9": "Fear",
		},
	},
	"DOOM2.WAD": {
		Title:       "Doom II: Hell on Earth",
		ReleaseDate: "1994-09-30",
		Author:      "id Software",
		MapNames: map[string]string{
			"MAP01": "Entryway",
			"MAP02": "Underhalls",
			"MAP03": "The Gantlet",
			"MAP04": "The Focus",
			"MAP05": "The Waste Tunnels",
			"MAP06": "The Crusher",
			"MAP07": "Dead Simple",
			"MAP08": "Tricks and Traps",
			"MAP09": "The Pit",
			"MAP10": "Refueling Base",
			"MAP11": "'O' of Destruction!",
			"MAP12": "The Factory",
			"MAP13": "Downtown",
			"MAP14": "The Inmost Dens",
			"MAP15": "Industrial Zone",
			"MAP16": "Suburbs",
			"MAP17": "Tenements",
			"MAP18": "The Courtyard",
			"MAP19": "The Citadel",
			"MAP20": "Gotcha!",
			"MAP21": "Nirvana",
			"MAP22": "The Catacombs",
			"MAP23": "Barrels o' Fun",
			"MAP24": "The Chasm",
			"MAP25": "Bloodfalls",
			"MAP26": "The Abandoned Mines",
			"MAP27": "Monster Condo",
			"MAP28": "The Spirit World",
			"MAP29": "The Living End",
			"MAP30": "Icon of Sin",
			"MAP31": "Wolfenstein",
			"MAP32": "Grosse",
		},
	},
	"PLUTONIA.WAD": {
		Title:       "The Plutonia Experiment",
		ReleaseDate: "1996-06-17",
		Author:      "Dario Casali & Milo Casali",
		MapNames: map[string]string{
			"MAP01": "Congo",
			"MAP02": "Well of Souls",
			"MAP03": "Aztec",
			"MAP04": "Caged",
			"MAP05": "Ghost Town",
			"MAP06": "Baron's Lair",
			"MAP07": "Caughtyard",
			"MAP08": "Realm",
			"MAP09": "Abattoire",
			"MAP10": "Onslaught",
			"MAP11": "Hunted",
			"MAP12": "Speed",
			"MAP13": "The Crypt",
			"MAP14": "Genesis",
			"MAP15": "The Twilight",
			"MAP16": "The Omen",
			"MAP17": "Compound",
			"MAP18": "Neurosphere",
			"MAP19": "NME",
			"MAP20": "The Death Domain",
			"MAP21": "Slayer",
			"MAP22": "Impossible Mission",
			"MAP23": "Tombstone",
			"MAP24": "The Final Frontier",
			"MAP25": "The Temple of Darkness",
			"MAP26": "Bunker",
			"MAP27": "Anti-Christ",
			"MAP28": "The Sewers",
			"MAP29": "Odyssey of Noises",
			"MAP30": "The Gateway of Hell",
			"MAP31": "Cyberden",
			"MAP32": "Go 2 It",
		},
	},
	"TNT.WAD": {
		Title:       "TNT: Evilution",
		ReleaseDate: "1996-06-17",
		Author:      "TeamTNT",
		MapNames: map[string]string{
			"MAP01": "System Control",
			"MAP02": "Human BBQ",
			"MAP03": "Power Control",
			"MAP04": "Wormhole",
			"MAP05": "Hanger",
			"MAP06": "Open Season",
			"MAP07": "Prison",
			"MAP08": "Metal",
			"MAP09": "Stronghold",
			"MAP10": "Redemption",
			"MAP11": "Storage Facility",
			"MAP12": "Crater",
			"MAP13": "Nukage",
			"MAP14": "Steel Works",
			"MAP15": "Dead Zone",
			"MAP16": "Deepest Reaches",
			"MAP17": "Processing Area",
			"MAP18": "Mill",
			"MAP19": "Shipping/Respawning",
			"MAP20": "Central Processing",
			"MAP21": "Administration Center",
			"MAP22": "Habitat",
			"MAP23": "Lunar Mining Project",
			"MAP24": "Quarry",
			"MAP25": "Baron's Den",
			"MAP26": "Ballistyx",
			"MAP27": "Mount Pain",
			"MAP28": "Heck",
			"MAP29": "River Styx",
			"MAP30": "Last Call",
			"MAP31": "Pharaoh",
			"MAP32": "Caribbean",
		},
	},
}

// KnownIWAD looks up the fixed metadata for an IWAD file name, e.g.
// "DOOM2.WAD".
func KnownIWAD(fileName string) (IWADInfo, bool) {
	info, ok := iwads[fileName]
	return info, ok
}

// EntryFromIWAD parses the IWAD at path and assembles its catalog
// entry from the archive's map markers and the fixed metadata table.
func EntryFromIWAD(path string) (Entry, error) {
	metadata, err := ReadMetadata(path)
	if err != nil {
		return Entry{}, err
	}
	fileName := filepath.Base(path)
	info, ok := KnownIWAD(fileName)
	if !ok {
		return Entry{}, fmt.Errorf("%s is not a supported IWAD", fileName)
	}
	var maps []MapInfo
	for _, marker := range metadata.MapLumps() {
		name, ok := info.MapNames[marker]
		if !ok {
			name = marker
		}
		mi, err := NewMapInfo(marker, name)
		if err != nil {
			return Entry{}, err
		}
		maps = append(maps, mi)
	}
	id := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	return NewEntry(id, fileName, info.Title, info.ReleaseDate, info.Author, maps)
}
