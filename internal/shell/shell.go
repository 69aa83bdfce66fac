package shell

import (
	"fmt"

	"github.com/hbjs97/spenv/internal/session"
)

// HookSnippet는 셸 통합 스니펫을 반환한다. RC 파일에서 eval되며,
// spenv 함수 정의와 세션당 한 번의 bootstrap을 포함한다.
// 변경 하위 명령의 stdout은 캡처되어 호출 셸이 eval하고, 그 외는
// 바이너리가 그대로 하부 도구로 전달한다.
func HookSnippet(kind session.Shell) string {
	switch kind {
	case session.ShellZsh, session.ShellBash:
		return fmt.Sprintf(`# spenv shell integration (%[1]s)
spenv() {
  case "$1" in
    cd|use|unuse|load|unload)
      local _spenv_script
      _spenv_script="$(command spenv "$@")" || return $?
      eval "$_spenv_script"
      ;;
    *)
      command spenv "$@"
      ;;
  esac
}
_spenv_have() { type "$1" >/dev/null 2>&1; }
eval "$(command spenv bootstrap --shell %[1]s \
  --have-use=$(_spenv_have use && echo 1 || echo 0) \
  --have-module=$(_spenv_have module && echo 1 || echo 0))"
unset -f _spenv_have
`, kind)
	case session.ShellSh:
		return `# spenv shell integration (sh)
spenv() {
  case "$1" in
    cd|use|unuse|load|unload)
      _spenv_script="$(command spenv "$@")" || return $?
      eval "$_spenv_script"
      unset _spenv_script
      ;;
    *)
      command spenv "$@"
      ;;
  esac
}
_spenv_have() { type "$1" >/dev/null 2>&1; }
eval "$(command spenv bootstrap --shell sh \
  --have-use=$(_spenv_have use && echo 1 || echo 0) \
  --have-module=$(_spenv_have module && echo 1 || echo 0))"
unset -f _spenv_have
`
	case session.ShellFish:
		return `# spenv shell integration (fish)
function spenv
  switch "$argv[1]"
    case cd use unuse load unload
      set -l _spenv_script (command spenv $argv | string collect)
      or return $status
      eval $_spenv_script
    case '*'
      command spenv $argv
  end
end
function _spenv_have
  type -q $argv[1]
end
eval (command spenv bootstrap --shell fish \
  --have-use=(_spenv_have use; and echo 1; or echo 0) \
  --have-module=(_spenv_have module; and echo 1; or echo 0) | string collect)
functions -e _spenv_have
`
	default:
		return ""
	}
}

// RCLine은 RC 파일에 설치되는 한 줄짜리 통합 라인이다.
// 스니펫 본문을 직접 박아두는 대신 바이너리에서 받아오므로 업그레이드에
// RC 재설치가 필요 없다.
func RCLine(kind session.Shell) string {
	if kind == session.ShellFish {
		return "command spenv hook --shell fish | source"
	}
	return fmt.Sprintf(`eval "$(command spenv hook --shell %s)"`, kind)
}
