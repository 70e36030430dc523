package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhubert/hopper/internal/config"
	"github.com/zhubert/hopper/internal/entry"
	"github.com/zhubert/hopper/internal/launch"
	"github.com/zhubert/hopper/internal/logger"
	"github.com/zhubert/hopper/internal/picker"
	"github.com/zhubert/hopper/internal/store"
)

var newWindow bool

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Pick a project and open it in a zellij session",
	RunE:  runOpen,
}

func init() {
	openCmd.Flags().BoolVarP(&newWindow, "new-window", "n", false, "Open in a new terminal window instead of a tab")
	rootCmd.AddCommand(openCmd)
}

// prepare loads settings and the entry list and expands the stored
// patterns into concrete candidates.
func prepare() (*config.Settings, []entry.Entry, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, nil, err
	}
	if settings.Debug {
		logger.SetDebug(true)
	}

	st, err := store.Load()
	if err != nil {
		return nil, nil, err
	}

	expanded, err := entry.Expand(st.Entries())
	if err != nil {
		return nil, nil, err
	}
	if len(expanded) == 0 {
		return nil, nil, fmt.Errorf("no projects to open; add one with 'hopper add <path>'")
	}
	return settings, expanded, nil
}

func runOpen(cmd *cobra.Command, args []string) error {
	settings, expanded, err := prepare()
	if err != nil {
		return err
	}

	chosen, err := picker.Pick("Open project", expanded)
	if err != nil {
		return err
	}

	return launch.New(settings).Open(chosen, newWindow)
}
