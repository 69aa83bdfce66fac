// Package resolver bridges partial user specs to concrete module
// identifiers by invoking the underlying tool's own resolution commands.
package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/hbjs97/spenv/internal/cmdexec"
)

// Flavor는 모듈 시스템 방식 태그다.
type Flavor string

const (
	// FlavorDotkit는 use/unuse 기반 dotkit 방식이다. DK_NODE를 사용한다.
	FlavorDotkit Flavor = "dotkit"
	// FlavorTcl는 module load/unload 기반 hierarchical 방식이다. MODULEPATH를 사용한다.
	FlavorTcl Flavor = "tcl"
)

// NotFoundError는 스펙에 일치하는 설치 artifact가 없을 때 반환된다.
// ExitCode는 외부 resolver의 종료 코드로, 그대로 전파된다.
type NotFoundError struct {
	Spec     string
	ExitCode int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("설치된 패키지를 찾을 수 없습니다: %s", e.Spec)
}

// AmbiguousSpecError는 단일 대상 요청에 둘 이상의 artifact가 일치할 때
// 반환된다. 첫 번째 일치를 임의로 고르는 일은 없다.
type AmbiguousSpecError struct {
	Spec    string
	Matches []string
}

func (e *AmbiguousSpecError) Error() string {
	return fmt.Sprintf("스펙이 모호합니다: %s — 일치 %d건: %s",
		e.Spec, len(e.Matches), strings.Join(e.Matches, ", "))
}

// Bridge는 외부 resolver를 Commander를 통해 실행한다.
type Bridge struct {
	cmd     cmdexec.Commander
	toolBin string
}

// New는 새 Bridge를 생성한다.
func New(cmd cmdexec.Commander, toolBin string) *Bridge {
	return &Bridge{cmd: cmd, toolBin: toolBin}
}

// Resolve는 부분 스펙 하나를 구체 모듈 식별자로 확정한다.
// 출력 계약: 성공 시 일치한 artifact당 정확히 한 줄, 줄 안의 공백 구분
// 토큰이 식별자들이다(-r 사용 시 의존성 식별자가 같은 줄에 이어진다).
// 0줄 또는 비정상 종료는 NotFoundError, 2줄 이상은 AmbiguousSpecError다.
// 재시도는 하지 않는다.
func (b *Bridge) Resolve(ctx context.Context, spec string, flags []string, flavor Flavor) ([]string, error) {
	args := []string{"module", "find", "--module-type", string(flavor)}
	args = append(args, flags...)
	args = append(args, spec)

	out, err := b.cmd.Run(ctx, b.toolBin, args...)
	if err != nil {
		return nil, fmt.Errorf("resolver.Resolve: %w",
			&NotFoundError{Spec: spec, ExitCode: cmdexec.ExitCode(err)})
	}

	lines := splitLines(string(out))
	switch {
	case len(lines) == 0:
		return nil, fmt.Errorf("resolver.Resolve: %w", &NotFoundError{Spec: spec, ExitCode: 1})
	case len(lines) > 1:
		return nil, fmt.Errorf("resolver.Resolve: %w", &AmbiguousSpecError{Spec: spec, Matches: lines})
	}
	return strings.Fields(lines[0]), nil
}

// ResolveAll은 여러 스펙을 각각 독립된 단일 대상 resolution으로 처리한다.
// 하나라도 실패하면 전체 배치가 즉시 실패한다 (fail-fast).
func (b *Bridge) ResolveAll(ctx context.Context, specs []string, flags []string, flavor Flavor) ([]string, error) {
	var ids []string
	for _, spec := range specs {
		resolved, err := b.Resolve(ctx, spec, flags, flavor)
		if err != nil {
			return nil, err
		}
		ids = append(ids, resolved...)
	}
	return ids, nil
}

// Location은 스펙의 설치 디렉토리를 조회한다. cd 흐름에서 사용한다.
func (b *Bridge) Location(ctx context.Context, spec string) (string, error) {
	out, err := b.cmd.Run(ctx, b.toolBin, "location", "--install-dir", spec)
	if err != nil {
		return "", fmt.Errorf("resolver.Location: %w",
			&NotFoundError{Spec: spec, ExitCode: cmdexec.ExitCode(err)})
	}
	dir := strings.TrimSpace(string(out))
	if dir == "" {
		return "", fmt.Errorf("resolver.Location: %w", &NotFoundError{Spec: spec, ExitCode: 1})
	}
	return dir, nil
}

// splitLines는 출력에서 공백이 아닌 줄만 추출한다.
func splitLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
