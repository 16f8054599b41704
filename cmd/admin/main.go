package main

import (
	"os"

	"teamsynchub/internal/cli"
	"teamsynchub/pkg/logger"
)

func main() {
	logger.SetOutput(os.Stderr)
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
