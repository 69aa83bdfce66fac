package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hbjs97/spenv/internal/pathlist"
)

func (a *App) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "현재 세션의 spenv 상태를 표시한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStatus(cmd)
		},
	}
}

func (a *App) runStatus(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	if os.Getenv("SPENV_BOOTSTRAPPED") != "1" {
		fmt.Fprintln(out, "세션이 부트스트랩되지 않았습니다. 'spenv setup' 실행 후 새 셸을 여세요.")
		return nil
	}

	fmt.Fprintf(out, "셸: %s\n", os.Getenv("SPENV_SHELL"))

	kind := os.Getenv("SPENV_MODULE_KIND")
	if prefix := os.Getenv("SPENV_MODULE_PREFIX"); prefix != "" {
		fmt.Fprintf(out, "모듈 서브시스템: %s (%s)\n", kind, prefix)
	} else {
		fmt.Fprintf(out, "모듈 서브시스템: %s\n", kind)
	}

	for _, name := range []string{"DK_NODE", "MODULEPATH"} {
		fmt.Fprintf(out, "%s:\n", name)
		entries := pathlist.Entries(os.Getenv(name))
		if len(entries) == 0 {
			fmt.Fprintln(out, "  (비어 있음)")
			continue
		}
		for _, e := range entries {
			fmt.Fprintf(out, "  %s\n", e)
		}
	}
	return nil
}
