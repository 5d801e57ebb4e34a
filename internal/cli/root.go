package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "repodeck",
		Short:   "Repodeck drives several git working copies through one concurrent command surface",
		Version: version,
		Long: `Repodeck drives several git working copies through one concurrent command
surface: query status, history, and branches, and run staging, commits, pushes,
pulls, merges, and branch management without one slow repository blocking the
rest.`,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to the config file")
	rootCmd.PersistentFlags().String("repo", "", "Path to the working copy to operate on (defaults to the current directory)")

	rootCmd.AddCommand(
		newStatusCmd(),
		newLogCmd(),
		newBranchesCmd(),
		newStageCmd(),
		newCommitCmd(),
		newPushCmd(),
		newPullCmd(),
		newSwitchCmd(),
		newBranchCmd(),
		newMergeCmd(),
		newCherryPickCmd(),
		newShowCmd(),
		newDiffCmd(),
		newDiscardCmd(),
		newRemoteCmd(),
		newCloneCmd(),
		newReposCmd(),
		newUICmd(),
	)

	return rootCmd
}
