// Package main provides the vivid command: System-N time and declared
// mixed-radix schemes.
package main

import (
	"fmt"
	"os"

	"github.com/yvan-vivid/vivid-time/internal/cli"
	"github.com/yvan-vivid/vivid-time/internal/config"
	"github.com/yvan-vivid/vivid-time/internal/unix"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCommandError)
	}

	if err := cli.NewRootCommand(cfg, unix.SystemClock{}).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
