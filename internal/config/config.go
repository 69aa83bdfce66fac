package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("설정 파일 오류")

// Config는 spenv 설정 파일의 최상위 구조체다.
type Config struct {
	Version int `toml:"version"`

	// ToolBin은 하부 패키지 매니저 실행 파일이다. 기본값 "spack".
	ToolBin string `toml:"tool_bin"`

	// Root는 툴체인 루트 디렉토리다. 비어 있으면 SPENV_ROOT를 따른다.
	Root string `toml:"root"`

	// Shell은 셸 감지를 수동으로 덮어쓴다 (bash, zsh, sh, fish).
	Shell string `toml:"shell"`

	// ModuleRoots는 모듈 루트 조회(config get)를 생략하는 수동 설정이다.
	ModuleRoots ModuleRoots `toml:"module_roots"`
}

// ModuleRoots는 방식별 모듈 루트 디렉토리다.
type ModuleRoots struct {
	Dotkit string `toml:"dotkit"`
	Tcl    string `toml:"tcl"`
}

// Load는 config.toml을 파싱하여 Config를 반환한다.
// 파일이 없으면 기본값 Config를 반환한다 — 설정 파일은 선택 사항이다.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			cfg.applyDefaults()
			return &cfg, nil
		}
		return nil, fmt.Errorf("config.Load: %w: %v", ErrConfig, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.ToolBin == "" {
		c.ToolBin = os.Getenv("SPENV_TOOL")
	}
	if c.ToolBin == "" {
		c.ToolBin = "spack"
	}
	if c.Root == "" {
		c.Root = os.Getenv("SPENV_ROOT")
	}
}

func (c *Config) validate() error {
	switch c.Shell {
	case "", "bash", "zsh", "sh", "fish":
	default:
		return fmt.Errorf("config.validate: %w: 지원하지 않는 shell 값: %s", ErrConfig, c.Shell)
	}
	return nil
}
