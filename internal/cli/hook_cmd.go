package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbjs97/spenv/internal/detect"
	"github.com/hbjs97/spenv/internal/shell"
)

func (a *App) newHookCmd() *cobra.Command {
	var shellFlag string

	cmd := &cobra.Command{
		Use:   "hook",
		Short: "셸 통합 스니펫을 출력한다",
		Long:  `RC 파일에서 eval "$(command spenv hook --shell zsh)" 형태로 사용한다.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := detect.Shell(cmd.Context(), a.Commander, shellFlag)
			snippet := shell.HookSnippet(kind)
			if snippet == "" {
				return fmt.Errorf("cli.hook: 지원하지 않는 셸: %s", kind)
			}
			fmt.Fprint(cmd.OutOrStdout(), snippet)
			return nil
		},
	}
	cmd.Flags().StringVar(&shellFlag, "shell", "", "셸 종류 (bash, zsh, sh, fish)")
	return cmd
}
