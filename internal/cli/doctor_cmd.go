package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hbjs97/spenv/internal/config"
	"github.com/hbjs97/spenv/internal/doctor"
)

func (a *App) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "환경 설정을 진단한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDoctor(cmd)
		},
	}
}

func (a *App) runDoctor(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		fmt.Fprintf(out, "[FAIL] config: %v\n", err)
		fmt.Fprintln(out, "      Fix: 설정 파일을 확인하세요:", a.CfgPath)
		return nil
	}

	kind := a.shellKind(cmd.Context(), cfg)
	results := doctor.RunAll(cmd.Context(), a.Commander, cfg, kind)
	printDiagResults(out, results)
	return nil
}

// printDiagResults는 진단 결과 목록을 출력한다.
func printDiagResults(w io.Writer, results []doctor.DiagResult) {
	for _, r := range results {
		fmt.Fprintf(w, "  [%s] %s: %s\n", statusIcon(r.Status), r.Name, r.Message)
		if r.Fix != "" {
			fmt.Fprintf(w, "      Fix: %s\n", r.Fix)
		}
	}
}

func statusIcon(s doctor.Status) string {
	switch s {
	case doctor.StatusOK:
		return "OK"
	case doctor.StatusWarn:
		return "!!"
	case doctor.StatusFail:
		return "FAIL"
	default:
		return "??"
	}
}
