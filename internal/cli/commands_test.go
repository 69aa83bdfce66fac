package cli_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbjs97/spenv/internal/cli"
	"github.com/hbjs97/spenv/internal/testutil"
)

// newTestApp creates an App with a FakeCommander and a missing config
// path so defaults apply.
func newTestApp(t *testing.T, fc *testutil.FakeCommander) *cli.App {
	t.Helper()
	return &cli.App{
		Commander: fc,
		CfgPath:   filepath.Join(t.TempDir(), "config.toml"),
	}
}

// execute runs the root command with args and returns stdout, stderr, err.
func execute(t *testing.T, app *cli.App, args ...string) (string, string, error) {
	t.Helper()

	cmd := app.NewRootCmd()
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func setupSession(t *testing.T) {
	t.Helper()
	t.Setenv("SPENV_SHELL", "bash")
	t.Setenv("SPENV_TOOL", "")
	t.Setenv("SPENV_ROOT", "")
	t.Setenv("SPENV_BOOTSTRAPPED", "")
}

// --- cd ---

func TestCd_ResolvedDirectory(t *testing.T) {
	setupSession(t)

	installDir := t.TempDir()
	fc := testutil.NewFakeCommander()
	fc.Register("spack location --install-dir libelf", installDir+"\n", nil)

	out, _, err := execute(t, newTestApp(t, fc), "cd", "libelf")
	require.NoError(t, err)
	assert.Equal(t, "cd "+installDir+"\n", out)
}

func TestCd_Unresolved(t *testing.T) {
	setupSession(t)

	fc := testutil.NewFakeCommander()
	fc.Register("spack location --install-dir libelf", "", testutil.FailErr(t))

	out, _, err := execute(t, newTestApp(t, fc), "cd", "libelf")
	require.Error(t, err)
	// 실패 시 셸 코드가 전혀 나가지 않는다 — 작업 디렉토리는 그대로다.
	assert.Empty(t, out)
	assert.Equal(t, cli.ExitGeneral, cli.MapExitCode(err))
}

func TestCd_ResolverExitCodeNotPropagated(t *testing.T) {
	setupSession(t)

	fc := testutil.NewFakeCommander()
	fc.Register("spack location --install-dir libelf", "", testutil.FailErrCode(t, 3))

	out, _, err := execute(t, newTestApp(t, fc), "cd", "libelf")
	require.Error(t, err)
	assert.Empty(t, out)
	// cd 실패는 resolver가 어떤 코드로 죽었든 일반 에러다.
	assert.Equal(t, cli.ExitGeneral, cli.MapExitCode(err))
}

func TestCd_MissingDirectory(t *testing.T) {
	setupSession(t)

	missing := filepath.Join(t.TempDir(), "gone")
	fc := testutil.NewFakeCommander()
	fc.Register("spack location --install-dir libelf", missing+"\n", nil)

	out, _, err := execute(t, newTestApp(t, fc), "cd", "libelf")
	require.ErrorIs(t, err, cli.ErrMissingDir)
	assert.Empty(t, out)
	assert.Equal(t, cli.ExitGeneral, cli.MapExitCode(err))
}

func TestCd_MultiTokenSpec(t *testing.T) {
	setupSession(t)

	installDir := t.TempDir()
	fc := testutil.NewFakeCommander()
	fc.Register("spack location --install-dir libelf %gcc@4.9", installDir+"\n", nil)

	out, _, err := execute(t, newTestApp(t, fc), "cd", "libelf", "%gcc@4.9")
	require.NoError(t, err)
	assert.Equal(t, "cd "+installDir+"\n", out)
}

// --- use / unuse ---

func TestUse_SingleMatch(t *testing.T) {
	setupSession(t)

	fc := testutil.NewFakeCommander()
	fc.Register("spack module find --module-type dotkit libelf@0.8.13",
		"libelf-0.8.13-gcc\n", nil)

	out, _, err := execute(t, newTestApp(t, fc), "use", "libelf@0.8.13")
	require.NoError(t, err)
	assert.Equal(t, "use libelf-0.8.13-gcc\n", out)
}

func TestUse_Ambiguous(t *testing.T) {
	setupSession(t)

	// 두 버전 설치 + 버전 한정자 없음 → 셸 함수 호출 없이 실패한다.
	fc := testutil.NewFakeCommander()
	fc.Register("spack module find --module-type dotkit libelf",
		"libelf-0.8.13-gcc\nlibelf-0.8.12-gcc\n", nil)

	out, _, err := execute(t, newTestApp(t, fc), "use", "libelf")
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Equal(t, cli.ExitAmbiguous, cli.MapExitCode(err))
}

func TestUnuse_Reverse(t *testing.T) {
	setupSession(t)

	fc := testutil.NewFakeCommander()
	fc.Register("spack module find --module-type dotkit libelf@0.8.13",
		"libelf-0.8.13-gcc\n", nil)

	out, _, err := execute(t, newTestApp(t, fc), "unuse", "libelf@0.8.13")
	require.NoError(t, err)
	assert.Equal(t, "unuse libelf-0.8.13-gcc\n", out)
}

func TestUse_EmptySpec(t *testing.T) {
	setupSession(t)

	out, _, err := execute(t, newTestApp(t, testutil.NewFakeCommander()), "use")
	require.ErrorIs(t, err, cli.ErrEmptySpec)
	assert.Empty(t, out)
	assert.Equal(t, cli.ExitEmptySpec, cli.MapExitCode(err))
}

// --- load / unload ---

func TestLoad_WithDependencies(t *testing.T) {
	setupSession(t)

	fc := testutil.NewFakeCommander()
	fc.Register("spack module find --module-type tcl -r libelf@0.8.13",
		"libelf-0.8.13-gcc zlib-1.2.8-gcc\n", nil)

	out, _, err := execute(t, newTestApp(t, fc), "load", "libelf@0.8.13", "-r")
	require.NoError(t, err)
	assert.Equal(t, "module load libelf-0.8.13-gcc\nmodule load zlib-1.2.8-gcc\n", out)
}

func TestUnload_BatchFailFast(t *testing.T) {
	setupSession(t)

	fc := testutil.NewFakeCommander()
	fc.Register("spack module find --module-type tcl libelf",
		"libelf-0.8.13-gcc\n", nil)
	fc.Register("spack module find --module-type tcl zlib",
		"", testutil.FailErr(t))

	out, _, err := execute(t, newTestApp(t, fc), "unload", "libelf", "zlib")
	require.Error(t, err)
	// 배치 중 하나라도 실패하면 아무 변경도 나가지 않는다.
	assert.Empty(t, out)
}

func TestLoad_UnsupportedShell(t *testing.T) {
	setupSession(t)
	t.Setenv("SPENV_SHELL", "tcsh")

	fc := testutil.NewFakeCommander()
	out, _, err := execute(t, newTestApp(t, fc), "load", "libelf")
	require.Error(t, err)
	assert.Empty(t, out)
}

// --- passthrough ---

func TestPassthrough_UnknownSubcommand(t *testing.T) {
	setupSession(t)

	fc := testutil.NewFakeCommander()
	fc.RegisterExit("spack install libelf", "", 0, nil)

	_, _, err := execute(t, newTestApp(t, fc), "install", "libelf")
	require.NoError(t, err)
	assert.Equal(t, []string{"spack install libelf"}, fc.InteractiveCalls)
}

func TestPassthrough_ExitCodePropagated(t *testing.T) {
	setupSession(t)

	fc := testutil.NewFakeCommander()
	fc.RegisterExit("spack install broken", "", 3, nil)

	_, _, err := execute(t, newTestApp(t, fc), "install", "broken")
	require.Error(t, err)
	assert.Equal(t, cli.ExitCode(3), cli.MapExitCode(err))
}

func TestPassthrough_GlobalHelpBeforeSubcommand(t *testing.T) {
	setupSession(t)

	fc := testutil.NewFakeCommander()
	fc.RegisterExit("spack --help load", "", 0, nil)

	_, _, err := execute(t, newTestApp(t, fc), "--help", "load")
	require.NoError(t, err)
	assert.Equal(t, []string{"spack --help load"}, fc.InteractiveCalls)
}

func TestSubcommandHelp_GoesToStderr(t *testing.T) {
	setupSession(t)

	fc := testutil.NewFakeCommander()
	fc.Register("spack cd -h", "usage: spack cd ...\n", nil)

	out, errOut, err := execute(t, newTestApp(t, fc), "cd", "-h")
	require.NoError(t, err)
	// stdout은 eval 대상이므로 도움말은 stderr로 나간다.
	assert.Empty(t, out)
	assert.Contains(t, errOut, "usage: spack cd")
}

// --- bootstrap / hook ---

func TestBootstrap_EmitsSessionSetup(t *testing.T) {
	setupSession(t)

	fc := testutil.NewFakeCommander()
	fc.Register("spack arch", "linux-x86_64\n", nil)
	fc.Register("spack config get module_roots.dotkit", t.TempDir()+"\n", nil)
	fc.Register("spack config get module_roots.tcl", t.TempDir()+"\n", nil)

	out, _, err := execute(t, newTestApp(t, fc),
		"bootstrap", "--shell", "bash", "--have-module=1")
	require.NoError(t, err)
	assert.Contains(t, out, "export SPENV_SHELL=bash")
	assert.Contains(t, out, "export SPENV_MODULE_KIND=external")
	assert.Contains(t, out, "export SPENV_BOOTSTRAPPED=1")
}

func TestHook_PrintsSnippet(t *testing.T) {
	setupSession(t)

	out, _, err := execute(t, newTestApp(t, testutil.NewFakeCommander()),
		"hook", "--shell", "zsh")
	require.NoError(t, err)
	assert.Contains(t, out, "spenv() {")
	assert.Contains(t, out, "command spenv bootstrap --shell zsh")
}

// --- status ---

func TestStatus_Bootstrapped(t *testing.T) {
	setupSession(t)
	t.Setenv("SPENV_BOOTSTRAPPED", "1")
	t.Setenv("SPENV_MODULE_KIND", "managed")
	t.Setenv("SPENV_MODULE_PREFIX", "/opt/modules")
	t.Setenv("DK_NODE", "/opt/dk/linux-x86_64")
	t.Setenv("MODULEPATH", "")

	out, _, err := execute(t, newTestApp(t, testutil.NewFakeCommander()), "status")
	require.NoError(t, err)
	assert.Contains(t, out, "셸: bash")
	assert.Contains(t, out, "managed (/opt/modules)")
	assert.Contains(t, out, "/opt/dk/linux-x86_64")
	assert.Contains(t, out, "(비어 있음)")
}

func TestStatus_NotBootstrapped(t *testing.T) {
	setupSession(t)

	out, _, err := execute(t, newTestApp(t, testutil.NewFakeCommander()), "status")
	require.NoError(t, err)
	assert.Contains(t, out, "부트스트랩되지 않았습니다")
}

// --- exit code mapping ---

func TestMapExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, cli.ExitSuccess, cli.MapExitCode(nil))
	assert.Equal(t, cli.ExitCode(7), cli.MapExitCode(&cli.ExitStatusError{Code: 7}))
	assert.Equal(t, cli.ExitEmptySpec, cli.MapExitCode(cli.ErrEmptySpec))
	assert.Equal(t, cli.ExitGeneral, cli.MapExitCode(assert.AnError))
}
