package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hbjs97/spenv/internal/config"
	"github.com/hbjs97/spenv/internal/detect"
	"github.com/hbjs97/spenv/internal/session"
)

func (a *App) newBootstrapCmd() *cobra.Command {
	var shellFlag string
	var haveUse, haveModule bool

	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "세션의 모듈 서브시스템을 확정하고 검색 경로를 초기화한다",
		Long: `세션 시작 시 hook이 한 번 호출한다. 출력은 호출 셸이 eval하는
셸 코드다. use/module 함수 정의 여부는 Go 프로세스가 볼 수 없으므로
hook이 --have-use/--have-module 플래그로 전달한다.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBootstrap(cmd, shellFlag, haveUse, haveModule)
		},
	}
	cmd.Flags().StringVar(&shellFlag, "shell", "", "호출 셸 종류 (bash, zsh, sh, fish)")
	cmd.Flags().BoolVar(&haveUse, "have-use", false, "세션에 use 함수가 이미 정의되어 있음")
	cmd.Flags().BoolVar(&haveModule, "have-module", false, "세션에 module 함수가 이미 정의되어 있음")
	return cmd
}

func (a *App) runBootstrap(cmd *cobra.Command, shellFlag string, haveUse, haveModule bool) error {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	override := shellFlag
	if override == "" {
		override = cfg.Shell
	}
	kind := detect.Shell(cmd.Context(), a.Commander, override)
	if !kind.IsSupported() {
		// 세션을 introspect할 수 없는 셸 — 변경 명령 없이 passthrough만 가능하다.
		fmt.Fprintf(cmd.ErrOrStderr(), "경고: 지원하지 않는 셸(%s) — 환경 변경 명령은 비활성화됩니다\n", kind)
		return nil
	}

	sess := session.NewEmitter(kind, os.Environ())
	d := detect.NewDetector(a.Commander, cfg)
	d.EnsureModuleSystem(cmd.Context(), sess, detect.Options{
		Shell:      kind,
		HaveUse:    haveUse,
		HaveModule: haveModule,
	})

	return sess.Flush(cmd.OutOrStdout())
}
