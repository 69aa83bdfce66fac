package session_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbjs97/spenv/internal/session"
)

func flush(t *testing.T, e *session.Emitter) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, e.Flush(&buf))
	return buf.String()
}

func TestEmitter_SetVar_Posix(t *testing.T) {
	t.Parallel()

	e := session.NewEmitter(session.ShellBash, nil)
	e.SetVar("DK_NODE", "/opt/dk/linux-x86_64")
	assert.Equal(t, "export DK_NODE=/opt/dk/linux-x86_64\n", flush(t, e))
}

func TestEmitter_SetVar_Quoting(t *testing.T) {
	t.Parallel()

	e := session.NewEmitter(session.ShellBash, nil)
	e.SetVar("SPENV_ROOT", "/opt/my tools/spack")
	assert.Equal(t, "export SPENV_ROOT='/opt/my tools/spack'\n", flush(t, e))
}

func TestEmitter_SetVar_Fish(t *testing.T) {
	t.Parallel()

	e := session.NewEmitter(session.ShellFish, nil)
	e.SetVar("CTX", "a b")
	assert.Equal(t, "set -gx CTX \"a b\"\n", flush(t, e))
}

func TestEmitter_ChangeDir(t *testing.T) {
	t.Parallel()

	e := session.NewEmitter(session.ShellZsh, nil)
	e.ChangeDir("/opt/libelf/0.8.13")
	assert.Equal(t, "cd /opt/libelf/0.8.13\n", flush(t, e))
}

func TestEmitter_Invoke(t *testing.T) {
	t.Parallel()

	e := session.NewEmitter(session.ShellBash, nil)
	e.Invoke("module", "load", "libelf-0.8.13-gcc")
	assert.Equal(t, "module load libelf-0.8.13-gcc\n", flush(t, e))
}

func TestEmitter_DefineFunc_Posix(t *testing.T) {
	t.Parallel()

	e := session.NewEmitter(session.ShellBash, nil)
	e.DefineFunc("module", `eval "$(modulecmd bash "$@")"`)
	out := flush(t, e)
	assert.Contains(t, out, "module() {")
	assert.Contains(t, out, `eval "$(modulecmd bash "$@")"`)
}

func TestEmitter_DefineFunc_Fish(t *testing.T) {
	t.Parallel()

	e := session.NewEmitter(session.ShellFish, nil)
	e.DefineFunc("module", "eval (modulecmd fish $argv)")
	out := flush(t, e)
	assert.Contains(t, out, "function module")
	assert.Contains(t, out, "\nend\n")
}

func TestEmitter_GetVar_SeesSnapshotAndWrites(t *testing.T) {
	t.Parallel()

	e := session.NewEmitter(session.ShellBash, []string{"PATH=/usr/bin", "HOME=/home/u"})
	assert.Equal(t, "/usr/bin", e.GetVar("PATH"))

	// 같은 호출 안의 SetVar는 이후 GetVar에 보인다.
	e.SetVar("PATH", "/opt/mod/bin:/usr/bin")
	assert.Equal(t, "/opt/mod/bin:/usr/bin", e.GetVar("PATH"))
}

func TestEmitter_FlushEmpty(t *testing.T) {
	t.Parallel()

	e := session.NewEmitter(session.ShellBash, nil)

	var buf bytes.Buffer
	require.NoError(t, e.Flush(&buf))
	assert.Empty(t, buf.String())
}
