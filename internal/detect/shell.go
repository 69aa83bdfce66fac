// Package detect determines the invoking shell's kind and the module
// system state, once per session.
package detect

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hbjs97/spenv/internal/cmdexec"
	"github.com/hbjs97/spenv/internal/session"
)

// Shell은 호출 셸의 종류를 감지한다. 우선순위: override(설정) →
// 프로세스 테이블에서 부모 셸 조회 → $SHELL. 부모 프로세스를 보는 이유는
// 새로 띄운 서브셸의 부모는 사용자의 셸이 아니라 감지 프로세스 자신이기
// 때문이다.
func Shell(ctx context.Context, cmd cmdexec.Commander, override string) session.Shell {
	if override != "" {
		return normalizeShell(override)
	}

	out, err := cmd.Run(ctx, "ps", "-p", strconv.Itoa(os.Getppid()), "-o", "comm=")
	if err == nil {
		if kind := normalizeShell(strings.TrimSpace(string(out))); kind != session.ShellUnknown {
			return kind
		}
	}

	return normalizeShell(os.Getenv("SHELL"))
}

// normalizeShell은 프로세스 이름/경로를 Shell enum으로 정규화한다.
// 로그인 셸의 선행 '-'와 디렉토리 경로를 제거한다.
func normalizeShell(name string) session.Shell {
	name = filepath.Base(strings.TrimPrefix(strings.TrimSpace(name), "-"))
	switch name {
	case "bash":
		return session.ShellBash
	case "zsh":
		return session.ShellZsh
	case "sh", "dash", "ash":
		return session.ShellSh
	case "fish":
		return session.ShellFish
	default:
		return session.ShellUnknown
	}
}
