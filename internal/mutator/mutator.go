// Package mutator applies resolved module identifiers to the live
// session by invoking the flavor's load/unload mechanism through the
// session context.
package mutator

import (
	"github.com/hbjs97/spenv/internal/resolver"
	"github.com/hbjs97/spenv/internal/session"
)

// Direction은 변경 방향이다.
type Direction int

const (
	// Apply는 load/use 방향이다.
	Apply Direction = iota
	// Reverse는 unload/unuse 방향이다.
	Reverse
)

// Run은 확정된 식별자들을 세션에 적용한다. 호출은 전부 세션 컨텍스트를
// 통해 호출 셸 자신이 평가한다 — fork된 서브프로세스의 환경 변경은
// 부모에게 보이지 않는다. 메커니즘 레벨 실패(예: 로드되지 않은 모듈
// unload)는 셸 평가 시점에 드러나며, 부분 롤백은 시도하지 않는다.
// 메커니즘 자체가 멱등하다고 간주한다.
func Run(sess session.Context, ids []string, dir Direction, flavor resolver.Flavor, mechFlags []string) {
	for _, id := range ids {
		words := mechanismWords(dir, flavor)
		words = append(words, mechFlags...)
		words = append(words, id)
		sess.Invoke(words...)
	}
}

// mechanismWords는 방향과 방식에 해당하는 셸 명령 머리를 반환한다.
func mechanismWords(dir Direction, flavor resolver.Flavor) []string {
	if flavor == resolver.FlavorDotkit {
		if dir == Apply {
			return []string{"use"}
		}
		return []string{"unuse"}
	}
	if dir == Apply {
		return []string{"module", "load"}
	}
	return []string{"module", "unload"}
}
