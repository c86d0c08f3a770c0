// Package profile describes named play configurations: which source
// port to launch and how.
package profile

import (
	"fmt"
	"strconv"
)

// Skill is the difficulty a profile plays at.
type Skill int

const (
	TooYoungToDie Skill = iota + 1
	HeyNotTooRough
	HurtMePlenty
	UltraViolence
	Nightmare
)

var skillNames = map[Skill]string{
	TooYoungToDie:  "TooYoungToDie",
	HeyNotTooRough: "HeyNotTooRough",
	HurtMePlenty:   "HurtMePlenty",
	UltraViolence:  "UltraViolence",
	Nightmare:      "Nightmare",
}

// ParseSkill converts a command-line token into a Skill.
func ParseSkill(input string) (Skill, error) {
	for s, name := range skillNames {
		if name == input {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%s is not a valid skill", input)
}

func (s Skill) String() string { return skillNames[s] }

// Arg returns the value passed to a source port's -skill argument.
func (s Skill) Arg() string { return strconv.Itoa(int(s)) }

// MarshalText writes the skill name, so Skill serializes stably.
func (s Skill) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses the skill name.
func (s *Skill) UnmarshalText(text []byte) error {
	parsed, err := ParseSkill(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Profile names a play configuration.
type Profile struct {
	Name       string `json:"name"`
	SourcePort string `json:"source_port"`
	Skill      Skill  `json:"skill"`
	Fullscreen bool   `json:"fullscreen"`
	Music      bool   `json:"music"`
	Default    bool   `json:"default"`
}

// New validates and builds a Profile.
func New(name, sourcePort string, skill Skill, fullscreen, music, isDefault bool) (Profile, error) {
	if name == "" {
		return Profile{}, fmt.Errorf("the name of the profile must be set")
	}
	if sourcePort == "" {
		return Profile{}, fmt.Errorf("the source port for the profile must be set")
	}
	return Profile{
		Name:       name,
		SourcePort: sourcePort,
		Skill:      skill,
		Fullscreen: fullscreen,
		Music:      music,
		Default:    isDefault,
	}, nil
}
