package command

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdl-project/tdl/cmd/cmdutils"
)

func fakeExecutable(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crispy-doom")
	require.NoError(t, os.WriteFile(path, []byte("binary"), 0o755))
	return path
}

func TestAddCmd(t *testing.T) {
	t.Setenv("TDL_SETTINGS_PATH", t.TempDir())
	f := cmdutils.NewFactory()
	exe := fakeExecutable(t)

	cmd := NewAddCmd(f)
	cmd.SetArgs([]string{"Crispy", exe, "5.10.3"})
	require.NoError(t, cmd.Execute())

	repo, err := f.Settings()
	require.NoError(t, err)
	app, err := repo.Get()
	require.NoError(t, err)
	require.Len(t, app.SourcePorts, 1)
	assert.Equal(t, exe, app.SourcePorts[0].Path)
	assert.Equal(t, "5.10.3", app.SourcePorts[0].Version)
}

func TestAddCmd_DuplicateVersionRejected(t *testing.T) {
	t.Setenv("TDL_SETTINGS_PATH", t.TempDir())
	f := cmdutils.NewFactory()
	exe := fakeExecutable(t)

	cmd := NewAddCmd(f)
	cmd.SetArgs([]string{"Crispy", exe, "5.10.3"})
	require.NoError(t, cmd.Execute())

	again := NewAddCmd(f)
	again.SetArgs([]string{"Crispy", exe, "5.10.3"})
	err := again.Execute()
	assert.ErrorContains(t, err, "already a Crispy Doom source port with version 5.10.3")
}

func TestAddCmd_UnknownPort(t *testing.T) {
	t.Setenv("TDL_SETTINGS_PATH", t.TempDir())

	cmd := NewAddCmd(cmdutils.NewFactory())
	cmd.SetArgs([]string{"Freedoom", fakeExecutable(t), "1.0"})
	err := cmd.Execute()
	assert.ErrorContains(t, err, "not a supported source port")
}
