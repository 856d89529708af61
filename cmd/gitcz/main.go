/*
Copyright © 2024 huimingz

gitcz - Interactive conventional commit messages for developers
*/
package main

import (
	"errors"
	"os"

	"github.com/huimingz/gitcz/internal/cli"
	"github.com/huimingz/gitcz/internal/ui"
)

// Version information (injected at build time)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	cli.SetVersionInfo(Version, GitCommit, BuildTime)
	if err := cli.Execute(); err != nil {
		if errors.Is(err, ui.ErrInterrupted) {
			os.Exit(130)
		}
		os.Exit(1)
	}
}
