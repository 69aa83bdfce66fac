// Package router classifies raw invocations into passthrough and
// environment-mutating commands, and splits a mutating command's flags
// between the spec resolver and the host mechanism.
package router

import "errors"

// ErrEmptySpec는 변경 명령에 스펙이 하나도 남지 않았을 때 반환된다.
// "설치된 전부"로 조용히 해석하는 일은 없다.
var ErrEmptySpec = errors.New("스펙이 비어 있습니다")

// Subcommand는 라우팅 대상 하위 명령의 닫힌 enum이다.
type Subcommand int

const (
	// Passthrough는 하부 도구로 그대로 전달되는 호출이다.
	Passthrough Subcommand = iota
	// ChangeDirectory는 호출 셸의 작업 디렉토리를 변경하는 cd다.
	ChangeDirectory
	// Activate는 dotkit 방식 use다.
	Activate
	// Deactivate는 dotkit 방식 unuse다.
	Deactivate
	// Load는 hierarchical 방식 load다.
	Load
	// Unload는 hierarchical 방식 unload다.
	Unload
)

// Mutating은 세션 환경을 변경하는 하위 명령인지 여부를 반환한다.
func (s Subcommand) Mutating() bool {
	return s != Passthrough
}

// Invocation은 분류가 끝난 한 번의 호출이다. 파싱 이후 불변이다.
type Invocation struct {
	Subcommand Subcommand

	// ResolverFlags는 Spec Resolver Bridge로 전달되는 플래그다 (-r 등).
	ResolverFlags []string

	// MechanismFlags는 인식하지 못한 플래그다. 하부 메커니즘(use/module)에
	// 순서 그대로 전달된다.
	MechanismFlags []string

	// Specs는 플래그를 제외한 스펙 토큰이다. 토큰 하나가 스펙 하나다.
	Specs []string

	// Help는 하위 명령 자체의 -h/--help 요청 여부다.
	Help bool
}

// globalFlags는 하위 명령 앞에 오면 passthrough를 강제하는 전역 플래그다.
// 이 플래그들은 라우터가 후처리할 출력을 내기 전에 종료하기 때문이다.
var globalFlags = map[string]bool{
	"-h": true, "--help": true,
	"-V": true, "--version": true,
}

// resolverFlags는 Spec Resolver Bridge 소관의 플래그다.
var resolverFlags = map[string]bool{
	"-r": true, "--dependencies": true,
}

// subcommands는 가로채는 하위 명령 이름과 분류의 대응이다.
var subcommands = map[string]Subcommand{
	"cd":     ChangeDirectory,
	"use":    Activate,
	"unuse":  Deactivate,
	"load":   Load,
	"unload": Unload,
}

// Classify는 원시 호출 토큰을 분류한다. 전역 help/version 플래그가 하위
// 명령보다 앞에 있거나 하위 명령이 가로채기 대상이 아니면 Passthrough다.
func Classify(args []string) (*Invocation, error) {
	if len(args) == 0 {
		return &Invocation{Subcommand: Passthrough}, nil
	}
	if globalFlags[args[0]] {
		return &Invocation{Subcommand: Passthrough}, nil
	}

	sub, ok := subcommands[args[0]]
	if !ok {
		return &Invocation{Subcommand: Passthrough}, nil
	}

	inv := &Invocation{Subcommand: sub}
	for _, tok := range args[1:] {
		switch {
		case tok == "-h" || tok == "--help":
			inv.Help = true
		case resolverFlags[tok]:
			inv.ResolverFlags = append(inv.ResolverFlags, tok)
		case len(tok) > 1 && tok[0] == '-':
			inv.MechanismFlags = append(inv.MechanismFlags, tok)
		default:
			inv.Specs = append(inv.Specs, tok)
		}
	}

	if len(inv.Specs) == 0 && !inv.Help {
		return nil, ErrEmptySpec
	}
	return inv, nil
}
