package cli

import (
	"errors"

	"github.com/hbjs97/spenv/internal/resolver"
)

// ExitCode는 spenv의 종료 코드다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 일반 에러다. cd 실패(미해결/디렉토리 없음)도 여기 속한다.
	ExitGeneral ExitCode = 1
	// ExitEmptySpec는 스펙 없는 변경 명령이다.
	ExitEmptySpec ExitCode = 2
	// ExitAmbiguous는 모호한 스펙 resolution이다.
	ExitAmbiguous ExitCode = 3
	// ExitConfigError는 설정 파일 오류다.
	ExitConfigError ExitCode = 5
)

// MapExitCode는 sentinel error를 기반으로 적절한 종료 코드를 반환한다.
// 하부 프로세스의 종료 코드(passthrough, resolver)는 그대로 전파된다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitStatusError
	var notFound *resolver.NotFoundError
	var ambiguous *resolver.AmbiguousSpecError

	switch {
	case errors.As(err, &exitErr):
		return ExitCode(exitErr.Code)
	case errors.As(err, &ambiguous):
		return ExitAmbiguous
	case errors.As(err, &notFound):
		if notFound.ExitCode > 0 {
			return ExitCode(notFound.ExitCode)
		}
		return ExitGeneral
	case errors.Is(err, ErrEmptySpec):
		return ExitEmptySpec
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	default:
		return ExitGeneral
	}
}
