// Package cmd implements the hopper command line interface.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhubert/hopper/internal/logger"
)

var (
	debugMode             bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "hopper",
	Short: "Open projects without caring about the working directory",
	Long: `Hopper keeps a list of project locations (plain paths or glob patterns,
optionally tagged with a zellij layout), lets you pick one interactively,
and opens a wezterm tab attached to a zellij session rooted there.

Running hopper with no subcommand is the same as 'hopper open'.`,
	RunE:          runOpen,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.Flags().BoolVarP(&newWindow, "new-window", "n", false, "Open in a new terminal window instead of a tab")
}

func initLogging() {
	if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("hopper %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("hopper %s\n", version)
}
