package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhubert/hopper/internal/picker"
	"github.com/zhubert/hopper/internal/store"
)

var removeCmd = &cobra.Command{
	Use:   "remove [path]",
	Short: "Remove entries from the list",
	Long: `With a path argument, removes every entry whose stored path matches it
exactly. Without one, presents an interactive multi-select of the stored
entries.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	st, err := store.Load()
	if err != nil {
		return err
	}

	var removed int
	if len(args) == 1 {
		path, err := expandTilde(args[0])
		if err != nil {
			return err
		}
		removed = st.RemovePath(path)
	} else {
		if st.Len() == 0 {
			return fmt.Errorf("no entries to remove")
		}
		indices, err := picker.PickMany("Remove entries", st.Entries())
		if err != nil {
			return err
		}
		removed = st.RemoveAt(indices)
	}

	if err := st.Save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d entr%s\n", removed, pluralSuffix(removed))
	return nil
}

func pluralSuffix(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
