package setup_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbjs97/spenv/internal/session"
	"github.com/hbjs97/spenv/internal/setup"
)

func TestInstallShellHook(t *testing.T) {
	t.Parallel()

	rcPath := filepath.Join(t.TempDir(), ".zshrc")
	require.NoError(t, setup.InstallShellHook(session.ShellZsh, rcPath))

	data, err := os.ReadFile(rcPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# spenv shell integration")
	assert.Contains(t, string(data), `eval "$(command spenv hook --shell zsh)"`)
	assert.True(t, setup.HookInstalled(rcPath))
}

func TestInstallShellHook_Idempotent(t *testing.T) {
	t.Parallel()

	rcPath := filepath.Join(t.TempDir(), ".bashrc")
	require.NoError(t, setup.InstallShellHook(session.ShellBash, rcPath))
	require.NoError(t, setup.InstallShellHook(session.ShellBash, rcPath))

	data, err := os.ReadFile(rcPath)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "# spenv shell integration"))
}

func TestInstallShellHook_PreservesExistingContent(t *testing.T) {
	t.Parallel()

	rcPath := filepath.Join(t.TempDir(), ".bashrc")
	require.NoError(t, os.WriteFile(rcPath, []byte("alias ll='ls -l'\n"), 0600))

	require.NoError(t, setup.InstallShellHook(session.ShellBash, rcPath))

	data, err := os.ReadFile(rcPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "alias ll='ls -l'")
	assert.Contains(t, string(data), "# spenv shell integration")
}

func TestInstallShellHook_CreatesFishConfDir(t *testing.T) {
	t.Parallel()

	rcPath := filepath.Join(t.TempDir(), ".config", "fish", "conf.d", "spenv.fish")
	require.NoError(t, setup.InstallShellHook(session.ShellFish, rcPath))
	assert.True(t, setup.HookInstalled(rcPath))
}

func TestInstallShellHook_Unsupported(t *testing.T) {
	t.Parallel()

	err := setup.InstallShellHook(session.ShellUnknown, filepath.Join(t.TempDir(), "rc"))
	assert.Error(t, err)
}

func TestHookInstalled_MissingFile(t *testing.T) {
	t.Parallel()

	assert.False(t, setup.HookInstalled(filepath.Join(t.TempDir(), "nope")))
}
