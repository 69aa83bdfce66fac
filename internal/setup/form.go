package setup

import (
	"github.com/charmbracelet/huh"

	"github.com/hbjs97/spenv/internal/session"
)

// FormRunner는 setup의 대화형 입력을 추상화하는 interface다.
// 프로덕션에서는 huh 기반 구현, 테스트에서는 mock을 사용한다.
type FormRunner interface {
	// RunShellSelect는 통합을 설치할 셸 선택 UI를 표시한다.
	// detected가 지원 셸이면 기본 선택으로 표시한다.
	RunShellSelect(detected session.Shell) (session.Shell, error)

	// RunConfirm은 확인 프롬프트를 표시한다.
	RunConfirm(message string) (bool, error)
}

// HuhFormRunner는 charmbracelet/huh 기반의 FormRunner 구현이다.
type HuhFormRunner struct{}

var _ FormRunner = (*HuhFormRunner)(nil)

// RunShellSelect는 셸 선택 폼을 실행한다.
func (h *HuhFormRunner) RunShellSelect(detected session.Shell) (session.Shell, error) {
	selected := detected
	if !selected.IsSupported() {
		selected = session.ShellBash
	}

	err := huh.NewSelect[session.Shell]().
		Title("통합을 설치할 셸을 선택하세요").
		Options(
			huh.NewOption("bash", session.ShellBash),
			huh.NewOption("zsh", session.ShellZsh),
			huh.NewOption("sh", session.ShellSh),
			huh.NewOption("fish", session.ShellFish),
		).
		Value(&selected).
		Run()
	if err != nil {
		return session.ShellUnknown, err
	}
	return selected, nil
}

// RunConfirm은 확인 프롬프트를 실행한다.
func (h *HuhFormRunner) RunConfirm(message string) (bool, error) {
	confirmed := true
	err := huh.NewConfirm().
		Title(message).
		Value(&confirmed).
		Run()
	if err != nil {
		return false, err
	}
	return confirmed, nil
}
