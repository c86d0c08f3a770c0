// Package launch assembles source-port argument lists and runs the
// chosen port for a play session.
package launch

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/tdl-project/tdl/internal/ports"
	"github.com/tdl-project/tdl/internal/profile"
)

// Session is everything needed to start a game.
type Session struct {
	Port    ports.Installed
	Profile profile.Profile
	// WadPath is the absolute path of the WAD to play.
	WadPath string
	// IWAD is true when WadPath points at an IWAD; PWADs are passed
	// with -file instead of -iwad.
	IWAD bool
	// Warp is the optional map to warp to, in -warp form ("12" or
	// "1 1"). Empty means start at the first map.
	Warp string
}

// Args builds the argument vector passed to the source port.
func Args(s Session) []string {
	var args []string
	if s.IWAD {
		args = append(args, "-iwad", s.WadPath)
	} else {
		args = append(args, "-file", s.WadPath)
	}
	if s.Warp != "" {
		args = append(args, "-warp")
		// The DOOM episode/map form is two separate arguments.
		args = append(args, strings.Fields(s.Warp)...)
	}
	args = append(args, "-skill", s.Profile.Skill.Arg())
	if s.Profile.Fullscreen {
		args = append(args, "-fullscreen")
	} else {
		args = append(args, "-nofullscreen")
	}
	if !s.Profile.Music {
		args = append(args, "-nomusic")
	}
	return args
}

// Run launches the source port and waits for it to exit, relaying its
// output. The port runs with its own directory as working directory so
// it finds its data files.
func Run(s Session) error {
	args := Args(s)
	log.Info().
		Str("port", s.Port.Port.String()).
		Strs("args", args).
		Msg("launching source port")

	cmd := exec.Command(s.Port.Path, args...)
	cmd.Dir = filepath.Dir(s.Port.Path)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to run source port: %w", err)
	}
	return nil
}
