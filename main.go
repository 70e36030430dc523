package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/zhubert/hopper/cmd"
	"github.com/zhubert/hopper/internal/logger"
	"github.com/zhubert/hopper/internal/picker"
)

// Version information set via ldflags at build time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, date)

	err := cmd.Execute()
	logger.Close()
	if err != nil {
		// A cancelled selection is not an error; exit non-zero, quietly.
		if errors.Is(err, picker.ErrAborted) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
