package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbjs97/spenv/internal/detect"
	"github.com/hbjs97/spenv/internal/setup"
)

func (a *App) newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "셸 RC 파일에 spenv 통합을 설치한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSetup(cmd)
		},
	}
}

func (a *App) runSetup(cmd *cobra.Command) error {
	detected := detect.Shell(cmd.Context(), a.Commander, "")

	kind, err := a.Form.RunShellSelect(detected)
	if err != nil {
		return fmt.Errorf("cli.setup: %w", err)
	}

	rcPath := setup.ShellRCPath(kind)
	if rcPath == "" {
		return fmt.Errorf("cli.setup: 지원하지 않는 셸: %s", kind)
	}

	if setup.HookInstalled(rcPath) {
		fmt.Fprintf(cmd.OutOrStdout(), "이미 설치되어 있습니다: %s\n", rcPath)
		return nil
	}

	ok, err := a.Form.RunConfirm(fmt.Sprintf("%s에 셸 통합을 추가할까요?", rcPath))
	if err != nil {
		return fmt.Errorf("cli.setup: %w", err)
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "설치를 취소했습니다.")
		return nil
	}

	if err := setup.InstallShellHook(kind, rcPath); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "설치 완료: %s\n", rcPath)
	fmt.Fprintln(cmd.OutOrStdout(), "새 셸을 열거나 RC 파일을 다시 source하면 적용됩니다.")
	return nil
}
