package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hbjs97/spenv/internal/cli"
)

func main() {
	app := cli.NewApp()
	cmd := app.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		// passthrough 종료 코드는 하부 도구가 이미 메시지를 냈으므로
		// 조용히 전파만 한다.
		var exitErr *cli.ExitStatusError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "spenv: %v\n", err)
		}
		os.Exit(int(cli.MapExitCode(err)))
	}
}
