package cli

import (
	"errors"
	"fmt"

	"github.com/hbjs97/spenv/internal/config"
	"github.com/hbjs97/spenv/internal/router"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrEmptySpec는 변경 명령에 스펙이 없을 때의 sentinel error다.
	ErrEmptySpec = router.ErrEmptySpec
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
)

// ErrMissingDir는 cd 대상 설치 디렉토리가 디스크에 없을 때의 sentinel error다.
var ErrMissingDir = errors.New("설치 디렉토리가 존재하지 않습니다")

// ExitStatusError는 하부 프로세스의 종료 코드를 그대로 전파한다.
type ExitStatusError struct {
	Code int
}

func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("종료 코드 %d", e.Code)
}
