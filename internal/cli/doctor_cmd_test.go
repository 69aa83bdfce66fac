package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbjs97/spenv/internal/testutil"
)

func TestDoctor_ReportsChecks(t *testing.T) {
	setupSession(t)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DK_NODE", "")
	t.Setenv("MODULEPATH", "")

	fc := testutil.NewFakeCommander()
	fc.Register("spack --version", "0.9.1\n", nil)

	out, _, err := execute(t, newTestApp(t, fc), "doctor")
	require.NoError(t, err)
	assert.Contains(t, out, "[OK] tool: spack 0.9.1")
	assert.Contains(t, out, "hook")
	assert.Contains(t, out, "부트스트랩되지 않음")
}

func TestDoctor_ConfigError(t *testing.T) {
	setupSession(t)

	app := newTestApp(t, testutil.NewFakeCommander())
	app.CfgPath = testutil.TempConfigFile(t, "not [ valid toml")

	out, _, err := execute(t, app, "doctor")
	require.NoError(t, err)
	assert.Contains(t, out, "[FAIL] config")
}
