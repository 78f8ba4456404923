package cmd

import (
	"github.com/spf13/cobra"
)

// mergeCmd represents the merge related commands
var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Commands to run governed merges",
	Long: `Commands to run governed merges.

A governed merge walks a fixed sequence: predict conflicts, halt for
confirmation when any are found, back up the target branch and only
then touch the repository. When the underlying git operation fails the
backup sticks around, so the target can always be put back.`,
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
