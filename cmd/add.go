package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhubert/hopper/internal/entry"
	"github.com/zhubert/hopper/internal/store"
)

var (
	addPrepend bool
	addLayout  string
)

var addCmd = &cobra.Command{
	Use:   "add <path>",
	Short: "Add a project path or glob pattern to the list",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().BoolVarP(&addPrepend, "prepend", "p", false, "Add to the start of the list, giving it a higher priority")
	addCmd.Flags().StringVarP(&addLayout, "layout", "l", "", "Zellij layout to open this project with")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	path, err := expandTilde(args[0])
	if err != nil {
		return err
	}

	st, err := store.Load()
	if err != nil {
		return err
	}

	e := entry.Entry{Path: path, Layout: addLayout}
	if addPrepend {
		st.Prepend(e)
	} else {
		st.Append(e)
	}

	if err := st.Save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", e)
	return nil
}
