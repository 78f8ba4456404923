package cmd

import (
	"github.com/spf13/cobra"
)

// branchCmd represents the branch related commands
var branchCmd = &cobra.Command{
	Use:   "branch",
	Short: "Commands to inspect and scaffold branches",
	Long: `Commands to inspect and scaffold branches.

Inspection compares a branch with the integration base it will merge
into: how far it drifted, whether the remote copy agrees, how long it
has been idle and which files would collide. Scaffolding creates typed
branches (feature, bugfix, hotfix) with their canonical name prefix.`,
}

func init() {
	rootCmd.AddCommand(branchCmd)
}
