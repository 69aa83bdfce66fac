package session

import (
	"fmt"
	"io"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Emitter는 세션 변경을 즉시 적용하는 대신 호출 셸이 eval할 셸 코드로
// 누적하는 Context 구현이다. 변경 명령의 stdout이 곧 세션 변경 수단이다.
type Emitter struct {
	shell Shell
	env   map[string]string
	lines []string
}

var _ Context = (*Emitter)(nil)

// NewEmitter는 환경 스냅샷(os.Environ 형식) 위에서 동작하는 Emitter를 생성한다.
func NewEmitter(shell Shell, environ []string) *Emitter {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		if i := strings.IndexByte(kv, '='); i > 0 {
			env[kv[:i]] = kv[i+1:]
		}
	}
	return &Emitter{shell: shell, env: env}
}

// Shell은 대상 셸 종류를 반환한다.
func (e *Emitter) Shell() Shell {
	return e.shell
}

// GetVar는 스냅샷에서 변수 값을 읽는다. 같은 호출 안에서 SetVar된 값도 보인다.
func (e *Emitter) GetVar(name string) string {
	return e.env[name]
}

// SetVar는 export(또는 fish의 set -gx) 라인을 누적한다.
func (e *Emitter) SetVar(name, value string) {
	e.env[name] = value
	if e.shell == ShellFish {
		e.lines = append(e.lines, fmt.Sprintf("set -gx %s %s", name, e.quote(value)))
		return
	}
	e.lines = append(e.lines, fmt.Sprintf("export %s=%s", name, e.quote(value)))
}

// ChangeDir는 호출 셸의 작업 디렉토리 변경 라인을 누적한다.
func (e *Emitter) ChangeDir(path string) {
	e.lines = append(e.lines, "cd "+e.quote(path))
}

// DefineFunc는 셸 함수 정의를 누적한다.
func (e *Emitter) DefineFunc(name, body string) {
	if e.shell == ShellFish {
		e.lines = append(e.lines, fmt.Sprintf("function %s\n  %s\nend", name, body))
		return
	}
	e.lines = append(e.lines, fmt.Sprintf("%s() {\n  %s\n}", name, body))
}

// Invoke는 셸 함수/명령 호출 라인을 누적한다. 각 단어는 개별 인용된다.
func (e *Emitter) Invoke(words ...string) {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = e.quote(w)
	}
	e.lines = append(e.lines, strings.Join(quoted, " "))
}

// Flush는 누적된 셸 코드를 기록한다. 에러 이전에 호출하면 안 된다 —
// 실패한 호출은 세션을 건드리지 않아야 하기 때문이다.
func (e *Emitter) Flush(w io.Writer) error {
	if len(e.lines) == 0 {
		return nil
	}
	if _, err := io.WriteString(w, strings.Join(e.lines, "\n")+"\n"); err != nil {
		return fmt.Errorf("session.Flush: %w", err)
	}
	return nil
}

// quote는 값을 대상 셸 문법에 맞게 인용한다.
func (e *Emitter) quote(s string) string {
	if e.shell == ShellFish {
		// mvdan/sh는 fish를 다루지 않으므로 Go 문자열 인용으로 대체한다.
		return fmt.Sprintf("%q", s)
	}
	lang := syntax.LangBash
	if e.shell == ShellSh {
		lang = syntax.LangPOSIX
	}
	q, err := syntax.Quote(s, lang)
	if err != nil {
		return fmt.Sprintf("%q", s)
	}
	return q
}
