package doctor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hbjs97/spenv/internal/cmdexec"
	"github.com/hbjs97/spenv/internal/config"
	"github.com/hbjs97/spenv/internal/pathlist"
	"github.com/hbjs97/spenv/internal/session"
	"github.com/hbjs97/spenv/internal/setup"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// CheckTool은 하부 패키지 매니저 바이너리의 존재 여부를 확인한다.
func CheckTool(ctx context.Context, cmd cmdexec.Commander, toolBin string) DiagResult {
	out, err := cmd.Run(ctx, toolBin, "--version")
	if err != nil {
		return DiagResult{
			Name:    "tool",
			Status:  StatusFail,
			Message: fmt.Sprintf("%s 실행 실패", toolBin),
			Fix:     fmt.Sprintf("%s 설치 후 PATH에 추가하거나 config의 tool_bin을 확인하세요", toolBin),
		}
	}
	return DiagResult{
		Name:    "tool",
		Status:  StatusOK,
		Message: fmt.Sprintf("%s %s", toolBin, strings.TrimSpace(string(out))),
	}
}

// CheckHook은 셸 RC 파일에 통합이 설치되어 있는지 확인한다.
func CheckHook(kind session.Shell) DiagResult {
	rcPath := setup.ShellRCPath(kind)
	if rcPath == "" {
		return DiagResult{
			Name:    "hook",
			Status:  StatusWarn,
			Message: fmt.Sprintf("지원하지 않는 셸: %s", kind),
		}
	}
	if !setup.HookInstalled(rcPath) {
		return DiagResult{
			Name:    "hook",
			Status:  StatusFail,
			Message: fmt.Sprintf("%s에 셸 통합 없음", rcPath),
			Fix:     "spenv setup 실행",
		}
	}
	return DiagResult{
		Name:    "hook",
		Status:  StatusOK,
		Message: fmt.Sprintf("%s 설치됨", rcPath),
	}
}

// CheckModuleSystem은 세션의 모듈 서브시스템 상태를 확인한다.
func CheckModuleSystem() DiagResult {
	if os.Getenv("SPENV_BOOTSTRAPPED") != "1" {
		return DiagResult{
			Name:    "module_system",
			Status:  StatusWarn,
			Message: "세션이 부트스트랩되지 않음",
			Fix:     "새 셸을 열거나 RC 파일을 다시 source하세요",
		}
	}
	kind := os.Getenv("SPENV_MODULE_KIND")
	if kind == "none" || kind == "" {
		return DiagResult{
			Name:    "module_system",
			Status:  StatusWarn,
			Message: "모듈 서브시스템 없음 — use/unuse만 동작",
			Fix:     "environment-modules를 설치하세요",
		}
	}
	return DiagResult{
		Name:    "module_system",
		Status:  StatusOK,
		Message: fmt.Sprintf("모듈 서브시스템: %s", kind),
	}
}

// CheckSearchPaths는 방식별 검색 경로 변수와 그 디렉토리를 확인한다.
func CheckSearchPaths() []DiagResult {
	vars := []string{"DK_NODE", "MODULEPATH"}
	var results []DiagResult
	for _, name := range vars {
		entries := pathlist.Entries(os.Getenv(name))
		if len(entries) == 0 {
			results = append(results, DiagResult{
				Name:    name,
				Status:  StatusWarn,
				Message: "검색 경로 비어 있음",
			})
			continue
		}
		var missing []string
		for _, e := range entries {
			if info, err := os.Stat(e); err != nil || !info.IsDir() {
				missing = append(missing, e)
			}
		}
		if len(missing) > 0 {
			results = append(results, DiagResult{
				Name:    name,
				Status:  StatusWarn,
				Message: fmt.Sprintf("존재하지 않는 경로: %s", strings.Join(missing, ", ")),
			})
			continue
		}
		results = append(results, DiagResult{
			Name:    name,
			Status:  StatusOK,
			Message: fmt.Sprintf("%d개 경로", len(entries)),
		})
	}
	return results
}

// RunAll은 전체 진단을 실행한다.
func RunAll(ctx context.Context, cmd cmdexec.Commander, cfg *config.Config, kind session.Shell) []DiagResult {
	results := []DiagResult{
		CheckTool(ctx, cmd, cfg.ToolBin),
		CheckHook(kind),
		CheckModuleSystem(),
	}
	return append(results, CheckSearchPaths()...)
}
