package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhubert/hopper/internal/store"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the stored entry list as JSON",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	st, err := store.Load()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(st.Entries(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
