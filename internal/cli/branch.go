package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"repodeck.dev/repodeck/internal/engine"
)

// newBranchCmd creates the branch command group
func newBranchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "branch",
		Short: "Create and delete branches",
	}
	cmd.AddCommand(newBranchCreateCmd(), newBranchDeleteCmd())
	return cmd
}

func newBranchCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new branch at HEAD and switch to it",
		Args:  cobra.ExactArgs(1),
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

			result, err := app.exec(&engine.Request{
				RepoPath: repo,
				Kind:     engine.KindCreateBranch,
				Args:     engine.CreateBranchArgs{Name: args[0]},
			})
			if err != nil {
				return err
			}
			app.splog.Info("%s", result.(engine.Confirmation).Text)
			return nil
		},
	}
	return cmd
}

func newBranchDeleteCmd() *cobra.Command {
	var force, yes bool

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a local branch",
		Long: `Delete a local branch. Without --force the deletion is refused when the
branch has commits not merged into its upstream.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			branch := args[0]
			if !yes {
				confirmed := false
				prompt := &survey.Confirm{
					Message: fmt.Sprintf("Delete branch %q?", branch),
				}
				if err := survey.AskOne(prompt, &confirmed); err != nil {
					return err
				}
				if !confirmed {
					return nil
				}
			}

			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			repo, err := app.targetRepo(cmd)
			if err != nil {
				return err
			}

			result, err := app.exec(&engine.Request{
				RepoPath: repo,
				Kind:     engine.KindDeleteBranch,
				Args:     engine.DeleteBranchArgs{Branch: branch, Force: force},
			})
			if err != nil {
				return err
			}
			app.splog.Info("%s", result.(engine.Confirmation).Text)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Delete even when the branch has unmerged commits")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
