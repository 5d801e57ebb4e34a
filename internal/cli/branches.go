package cli

import (
	"github.com/spf13/cobra"

	"repodeck.dev/repodeck/internal/engine"
	"repodeck.dev/repodeck/internal/output"
)

// newBranchesCmd creates the branches command
func newBranchesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "branches",
		Short: "List local and remote branches",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			repo, err := app.targetRepo(cmd)
			if err != nil {
				return err
			}

			result, err := app.exec(&engine.Request{RepoPath: repo, Kind: engine.KindBranches})
			if err != nil {
				return err
			}

			listing := result.(engine.BranchesResult).Branches
			for _, name := range listing.Local {
				marker := "  "
				if name == listing.Active {
					marker = "* "
				}
				app.splog.Info("%s%s", marker, name)
			}
			for _, name := range listing.Remote {
				app.splog.Info("  %s", output.Dim(name))
			}
			return nil
		},
	}
	return cmd
}
