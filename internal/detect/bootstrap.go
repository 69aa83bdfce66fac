package detect

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hbjs97/spenv/internal/cmdexec"
	"github.com/hbjs97/spenv/internal/config"
	"github.com/hbjs97/spenv/internal/pathlist"
	"github.com/hbjs97/spenv/internal/resolver"
	"github.com/hbjs97/spenv/internal/session"
)

// SystemKind는 모듈 서브시스템의 종류다.
type SystemKind string

const (
	// KindNone은 사용 가능한 모듈 서브시스템이 없는 상태다.
	KindNone SystemKind = "none"
	// KindManaged는 spenv가 찾아서 연결한 environment-modules 설치본이다.
	KindManaged SystemKind = "managed"
	// KindExternal은 세션에 이미 정의된 use/module 함수다.
	KindExternal SystemKind = "external"
)

// Source는 State가 어떻게 결정되었는지다.
type Source string

const (
	// SourceCached는 같은 세션에서 이미 부트스트랩이 끝난 경우다.
	SourceCached Source = "cached"
	// SourceDetected는 기존 서브시스템을 감지한 경우다.
	SourceDetected Source = "detected"
	// SourceBootstrapped는 설치본을 찾아 새로 연결한 경우다.
	SourceBootstrapped Source = "bootstrapped"
	// SourceUnavailable은 서브시스템을 찾지 못한 경우다.
	SourceUnavailable Source = "unavailable"
)

// State는 세션의 Module System State다. 세션 시작 시 한 번 결정되고,
// 이후 변경 명령들은 재감지 없이 이 상태를 전제한다.
type State struct {
	Kind   SystemKind
	Source Source
	Prefix string // Kind가 managed일 때 설치 prefix
}

// Options는 호출 셸이 hook을 통해 전달하는 세션 정보다.
// 셸 함수 정의 여부는 Go 프로세스가 직접 볼 수 없으므로 hook 스니펫이
// type 검사로 판별해 플래그로 넘긴다.
type Options struct {
	Shell      session.Shell
	HaveUse    bool
	HaveModule bool
}

// Detector는 세션당 한 번 실행되는 Session Detector다.
type Detector struct {
	cmd    cmdexec.Commander
	bridge *resolver.Bridge
	cfg    *config.Config
	memo   *State
}

// NewDetector는 새 Detector를 생성한다.
func NewDetector(cmd cmdexec.Commander, cfg *config.Config) *Detector {
	return &Detector{
		cmd:    cmd,
		bridge: resolver.New(cmd, cfg.ToolBin),
		cfg:    cfg,
	}
}

// EnsureModuleSystem은 모듈 서브시스템을 확정한다. 멱등하며, 세션 환경의
// SPENV_BOOTSTRAPPED 마커와 프로세스 내 메모로 이중 memoize된다.
// 서브시스템이 없어도 에러가 아니다 — dotkit 방식은 계속 쓸 수 있고,
// hierarchical 방식만 경고와 함께 기능이 줄어든다.
func (d *Detector) EnsureModuleSystem(ctx context.Context, sess session.Context, opts Options) State {
	if d.memo != nil {
		return *d.memo
	}
	if sess.GetVar("SPENV_BOOTSTRAPPED") == "1" {
		state := State{
			Kind:   SystemKind(sess.GetVar("SPENV_MODULE_KIND")),
			Source: SourceCached,
			Prefix: sess.GetVar("SPENV_MODULE_PREFIX"),
		}
		if state.Kind == "" {
			state.Kind = KindNone
		}
		d.memo = &state
		return state
	}

	state := d.establish(ctx, sess, opts)

	d.searchPaths(ctx, sess)

	sess.SetVar("SPENV_SHELL", string(opts.Shell))
	if d.cfg.Root != "" {
		sess.SetVar("SPENV_ROOT", d.cfg.Root)
	}
	sess.SetVar("SPENV_MODULE_KIND", string(state.Kind))
	sess.SetVar("SPENV_BOOTSTRAPPED", "1")

	d.memo = &state
	return state
}

// establish는 서브시스템을 감지하거나 설치본을 찾아 연결한다.
func (d *Detector) establish(ctx context.Context, sess session.Context, opts Options) State {
	if opts.HaveUse || opts.HaveModule {
		return State{Kind: KindExternal, Source: SourceDetected}
	}

	prefix, err := d.bridge.Location(ctx, "environment-modules")
	if err != nil {
		fmt.Fprintln(os.Stderr,
			"경고: environment-modules를 찾을 수 없습니다 — load/unload는 사용할 수 없고 use/unuse만 동작합니다")
		return State{Kind: KindNone, Source: SourceUnavailable}
	}

	sess.SetVar("SPENV_MODULE_PREFIX", prefix)
	pathlist.Add(sess, "PATH", filepath.Join(prefix, "bin"))
	sess.DefineFunc("module", moduleFuncBody(opts.Shell, prefix))

	return State{Kind: KindManaged, Source: SourceBootstrapped, Prefix: prefix}
}

// searchPaths는 방식별 모듈 루트와 플랫폼 태그를 조회해 검색 경로를
// 구성한다. 조회 실패는 경고만 남긴다 — 이후 resolution이 알아서 실패한다.
func (d *Detector) searchPaths(ctx context.Context, sess session.Context) {
	arch, err := d.archTag(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "경고: 플랫폼 태그 조회 실패: %v\n", err)
		return
	}

	roots := []struct {
		flavor  resolver.Flavor
		varName string
		manual  string
	}{
		{resolver.FlavorDotkit, "DK_NODE", d.cfg.ModuleRoots.Dotkit},
		{resolver.FlavorTcl, "MODULEPATH", d.cfg.ModuleRoots.Tcl},
	}
	for _, r := range roots {
		root := r.manual
		if root == "" {
			root, err = d.moduleRoot(ctx, r.flavor)
			if err != nil {
				fmt.Fprintf(os.Stderr, "경고: %s 모듈 루트 조회 실패: %v\n", r.flavor, err)
				continue
			}
		}
		pathlist.Add(sess, r.varName, filepath.Join(root, arch))
	}
}

// archTag는 플랫폼/아키텍처 태그를 조회한다.
func (d *Detector) archTag(ctx context.Context) (string, error) {
	out, err := d.cmd.Run(ctx, d.cfg.ToolBin, "arch")
	if err != nil {
		return "", fmt.Errorf("detect.archTag: %w", err)
	}
	arch := strings.TrimSpace(string(out))
	if arch == "" {
		return "", fmt.Errorf("detect.archTag: 빈 출력")
	}
	return arch, nil
}

// moduleRoot는 방식별 모듈 루트 디렉토리를 조회한다.
func (d *Detector) moduleRoot(ctx context.Context, flavor resolver.Flavor) (string, error) {
	out, err := d.cmd.Run(ctx, d.cfg.ToolBin, "config", "get", "module_roots."+string(flavor))
	if err != nil {
		return "", fmt.Errorf("detect.moduleRoot: %w", err)
	}
	root := strings.TrimSpace(string(out))
	if root == "" {
		return "", fmt.Errorf("detect.moduleRoot: 빈 출력")
	}
	return root, nil
}

// moduleFuncBody는 modulecmd에 위임하는 세션 module 함수의 본문이다.
func moduleFuncBody(shell session.Shell, prefix string) string {
	modulecmd := filepath.Join(prefix, "bin", "modulecmd")
	if shell == session.ShellFish {
		return fmt.Sprintf("eval (%q fish $argv)", modulecmd)
	}
	name := string(shell)
	if !shell.IsPosix() {
		name = "sh"
	}
	return fmt.Sprintf(`eval "$(%q %s "$@")"`, modulecmd, name)
}
