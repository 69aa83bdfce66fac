// Package setup installs the spenv shell integration into the user's
// RC file and drives the interactive first-run flow.
package setup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hbjs97/spenv/internal/session"
	"github.com/hbjs97/spenv/internal/shell"
)

const hookMarker = "# spenv shell integration"

// ShellRCPath는 셸별 RC 파일 경로를 반환한다.
func ShellRCPath(kind session.Shell) string {
	home, _ := os.UserHomeDir() // 홈 디렉토리 조회 실패 시 빈 문자열
	switch kind {
	case session.ShellZsh:
		return filepath.Join(home, ".zshrc")
	case session.ShellBash:
		return filepath.Join(home, ".bashrc")
	case session.ShellSh:
		return filepath.Join(home, ".profile")
	case session.ShellFish:
		return filepath.Join(home, ".config", "fish", "conf.d", "spenv.fish")
	default:
		return ""
	}
}

// InstallShellHook은 셸 RC 파일에 spenv 통합 라인을 추가한다.
// 이미 설치되어 있으면 건너뛴다.
func InstallShellHook(kind session.Shell, rcPath string) error {
	line := shell.RCLine(kind)
	if line == "" || !kind.IsSupported() {
		return fmt.Errorf("setup.InstallShellHook: 지원하지 않는 셸: %s", kind)
	}

	existing, _ := os.ReadFile(rcPath) // 파일이 없으면 빈 바이트
	if strings.Contains(string(existing), hookMarker) ||
		strings.Contains(string(existing), line) {
		return nil // 이미 설치됨
	}

	if err := os.MkdirAll(filepath.Dir(rcPath), 0755); err != nil {
		return fmt.Errorf("setup.InstallShellHook: %w", err)
	}

	f, err := os.OpenFile(rcPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("setup.InstallShellHook: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "\n%s\n%s\n", hookMarker, line); err != nil {
		return fmt.Errorf("setup.InstallShellHook: %w", err)
	}

	return nil
}

// HookInstalled는 RC 파일에 통합 라인이 이미 있는지 확인한다.
func HookInstalled(rcPath string) bool {
	data, err := os.ReadFile(rcPath)
	if err != nil {
		return false
	}
	return strings.Contains(string(data), hookMarker)
}
