package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hbjs97/spenv/internal/cmdexec"
	"github.com/hbjs97/spenv/internal/setup"
)

// App은 CLI 전역 의존성을 담는다. 테스트에서는 FakeCommander와 임시
// 설정 경로를 주입한다.
type App struct {
	Commander cmdexec.Commander
	CfgPath   string
	Form      setup.FormRunner
}

// NewApp은 프로덕션 의존성으로 App을 생성한다.
func NewApp() *App {
	return &App{
		Commander: &cmdexec.RealCommander{},
		CfgPath:   defaultCfgPath(),
		Form:      &setup.HuhFormRunner{},
	}
}

// NewRootCmd는 spenv CLI의 루트 명령을 생성한다.
// cd/use/unuse/load/unload와 모든 미등록 토큰은 루트 RunE로 떨어져
// 라우터가 분류한다. 루트의 플래그 파싱은 끈다 — 하부 도구의 전역
// 플래그를 그대로 전달해야 하기 때문이다.
func (a *App) NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "spenv",
		Short:         "패키지 매니저 셸 환경 통합",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,

		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runIntercept(cmd, args)
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})

	cmd.AddCommand(
		a.newBootstrapCmd(),
		a.newHookCmd(),
		a.newSetupCmd(),
		a.newStatusCmd(),
		a.newDoctorCmd(),
	)
	return cmd
}

func defaultCfgPath() string {
	if p := os.Getenv("SPENV_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(homeDir(), ".config", "spenv", "config.toml")
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "경고: 홈 디렉토리 확인 실패: %v\n", err)
		return "."
	}
	return home
}
