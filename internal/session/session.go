// Package session models the calling shell's live environment.
// The core never mutates its parent process directly; the Emitter
// implementation collects shell code that the caller evals in its own
// context, and the Memory implementation substitutes for it in tests.
package session

// Shell은 감지된 호출 셸의 종류다.
type Shell string

const (
	ShellBash    Shell = "bash"
	ShellZsh     Shell = "zsh"
	ShellSh      Shell = "sh"
	ShellFish    Shell = "fish"
	ShellUnknown Shell = "unknown"
)

// IsSupported는 환경 변경 명령을 실행할 수 있는 셸인지 여부를 반환한다.
// csh 계열 등 세션을 introspect할 수 없는 셸은 지원하지 않는다.
func (s Shell) IsSupported() bool {
	switch s {
	case ShellBash, ShellZsh, ShellSh, ShellFish:
		return true
	default:
		return false
	}
}

// IsPosix는 POSIX sh 계열 셸인지 여부를 반환한다.
func (s Shell) IsPosix() bool {
	switch s {
	case ShellBash, ShellZsh, ShellSh:
		return true
	default:
		return false
	}
}

// Context는 호출 셸 세션의 환경에 대한 유일한 변경 통로다.
// 경로 변수, 작업 디렉토리, 셸 함수 호출은 전부 이 interface를 통해서만
// 이루어진다. ambient global을 직접 건드리는 코드는 없어야 한다.
type Context interface {
	// GetVar는 세션 환경 변수의 현재 값을 반환한다. 없으면 빈 문자열.
	GetVar(name string) string

	// SetVar는 세션 환경 변수를 설정한다.
	SetVar(name, value string)

	// ChangeDir는 호출 셸의 현재 작업 디렉토리를 변경한다.
	ChangeDir(path string)

	// DefineFunc는 세션에 셸 함수를 정의한다. body는 함수 본문 그대로다.
	DefineFunc(name, body string)

	// Invoke는 세션 컨텍스트에서 셸 함수/명령을 호출한다.
	// fork된 서브프로세스가 아니라 호출 셸 자신이 평가해야 하는 호출에 사용한다.
	Invoke(words ...string)
}
