package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hbjs97/spenv/internal/cmdexec"
	"github.com/hbjs97/spenv/internal/config"
	"github.com/hbjs97/spenv/internal/detect"
	"github.com/hbjs97/spenv/internal/mutator"
	"github.com/hbjs97/spenv/internal/resolver"
	"github.com/hbjs97/spenv/internal/router"
	"github.com/hbjs97/spenv/internal/session"
)

// runIntercept는 원시 호출을 분류해 passthrough하거나 변경 핸들러로
// 보낸다. 변경 핸들러의 출력은 셸 코드이며 에러가 없을 때만 flush된다 —
// 실패한 호출 직전의 세션 환경은 그대로 남는다.
func (a *App) runIntercept(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	inv, err := router.Classify(args)
	if err != nil {
		return fmt.Errorf("cli.intercept: %w", err)
	}

	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	if inv.Subcommand == router.Passthrough {
		return a.passthrough(ctx, cfg.ToolBin, args)
	}

	if inv.Help {
		// 도움말은 stderr로 낸다 — stdout은 캡처되어 eval되기 때문이다.
		return a.subcommandHelp(ctx, cmd, cfg.ToolBin, args)
	}

	kind := a.shellKind(ctx, cfg)
	if !kind.IsSupported() {
		return fmt.Errorf("cli.intercept: 지원하지 않는 셸입니다 — 환경 변경 명령을 사용할 수 없습니다")
	}

	sess := session.NewEmitter(kind, os.Environ())
	bridge := resolver.New(a.Commander, cfg.ToolBin)

	switch inv.Subcommand {
	case router.ChangeDirectory:
		err = a.runCd(ctx, bridge, sess, inv)
	case router.Activate:
		err = a.runMutate(ctx, bridge, sess, inv, mutator.Apply, resolver.FlavorDotkit)
	case router.Deactivate:
		err = a.runMutate(ctx, bridge, sess, inv, mutator.Reverse, resolver.FlavorDotkit)
	case router.Load:
		err = a.runMutate(ctx, bridge, sess, inv, mutator.Apply, resolver.FlavorTcl)
	case router.Unload:
		err = a.runMutate(ctx, bridge, sess, inv, mutator.Reverse, resolver.FlavorTcl)
	}
	if err != nil {
		return err
	}

	return sess.Flush(cmd.OutOrStdout())
}

// passthrough는 호출을 하부 도구에 그대로 전달하고 종료 코드를 보존한다.
func (a *App) passthrough(ctx context.Context, toolBin string, args []string) error {
	code, err := a.Commander.Interactive(ctx, toolBin, args...)
	if err != nil {
		return fmt.Errorf("cli.passthrough: %w", err)
	}
	if code != 0 {
		return &ExitStatusError{Code: code}
	}
	return nil
}

// subcommandHelp는 하부 도구의 하위 명령 도움말을 stderr로 출력한다.
func (a *App) subcommandHelp(ctx context.Context, cmd *cobra.Command, toolBin string, args []string) error {
	out, err := a.Commander.Run(ctx, toolBin, args...)
	fmt.Fprint(cmd.ErrOrStderr(), string(out))
	if err != nil {
		return &ExitStatusError{Code: cmdexec.ExitCode(err)}
	}
	return nil
}

// runCd는 스펙을 설치 디렉토리로 확정해 호출 셸의 작업 디렉토리를
// 변경한다. 디렉토리가 디스크에 없으면 변경 없이 실패한다.
func (a *App) runCd(ctx context.Context, bridge *resolver.Bridge, sess session.Context, inv *router.Invocation) error {
	spec := strings.Join(inv.Specs, " ")

	dir, err := bridge.Location(ctx, spec)
	if err != nil {
		var notFound *resolver.NotFoundError
		if errors.As(err, &notFound) {
			// cd 실패의 종료 코드는 resolver의 종료 코드와 무관하게 1이다.
			return fmt.Errorf("cli.cd: %v", notFound)
		}
		return err
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("cli.cd: %w: %s", ErrMissingDir, dir)
	}

	sess.ChangeDir(dir)
	return nil
}

// runMutate는 스펙들을 각각 확정한 뒤 방식별 메커니즘 호출을 세션에
// 적용한다. resolution이 하나라도 실패하면 어떤 변경도 일어나지 않는다.
func (a *App) runMutate(ctx context.Context, bridge *resolver.Bridge, sess session.Context, inv *router.Invocation, dir mutator.Direction, flavor resolver.Flavor) error {
	if flavor == resolver.FlavorTcl &&
		sess.GetVar("SPENV_BOOTSTRAPPED") == "1" &&
		sess.GetVar("SPENV_MODULE_KIND") == string(detect.KindNone) {
		fmt.Fprintln(os.Stderr, "경고: 모듈 서브시스템이 없습니다 — module 명령이 실패할 수 있습니다")
	}

	ids, err := bridge.ResolveAll(ctx, inv.Specs, inv.ResolverFlags, flavor)
	if err != nil {
		return err
	}

	mutator.Run(sess, ids, dir, flavor, inv.MechanismFlags)
	return nil
}

// shellKind는 세션 셸 종류를 결정한다. 설정의 수동 지정이 가장 우선하고,
// 부트스트랩이 남긴 SPENV_SHELL, 마지막으로 프로세스 테이블 감지 순이다.
func (a *App) shellKind(ctx context.Context, cfg *config.Config) session.Shell {
	if cfg.Shell != "" {
		return detect.Shell(ctx, a.Commander, cfg.Shell)
	}
	if env := os.Getenv("SPENV_SHELL"); env != "" {
		return detect.Shell(ctx, a.Commander, env)
	}
	return detect.Shell(ctx, a.Commander, "")
}
