package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zhubert/hopper/internal/launch"
	"github.com/zhubert/hopper/internal/notification"
	"github.com/zhubert/hopper/internal/picker"
)

var guiNewWindow bool

var openGUICmd = &cobra.Command{
	Use:   "open-gui",
	Short: "Pick a project through a graphical chooser",
	Long: `Like 'open', but selection happens through an external launcher
(anyrun on Linux, choose on macOS) instead of a terminal prompt, so hopper
can be bound to a desktop shortcut. Failures raise a desktop notification
since there is no terminal to read them from.`,
	RunE: runOpenGUI,
}

func init() {
	openGUICmd.Flags().BoolVarP(&guiNewWindow, "new-window", "n", false, "Open in a new terminal window instead of a tab")
	rootCmd.AddCommand(openGUICmd)
}

func runOpenGUI(cmd *cobra.Command, args []string) error {
	settings, expanded, err := prepare()
	if err != nil {
		return err
	}

	chosen, err := picker.PickGUI(expanded)
	if err != nil {
		return err
	}

	if err := launch.New(settings).Open(chosen, guiNewWindow); err != nil {
		notification.LaunchFailed(chosen.Path, err)
		return err
	}
	return nil
}
