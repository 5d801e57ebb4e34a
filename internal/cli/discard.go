package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"repodeck.dev/repodeck/internal/engine"
)

// newDiscardCmd creates the discard command
func newDiscardCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "discard <path>",
		Short: "Discard unstaged changes to a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if !yes {
				confirmed := false
				prompt := &survey.Confirm{
					Message: fmt.Sprintf("Discard unstaged changes to %q? This cannot be undone.", path),
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
				Kind:     engine.KindCheckoutFile,
				Args:     engine.CheckoutFileArgs{Path: path},
			})
			if err != nil {
				return err
			}
			app.splog.Info("%s", result.(engine.Confirmation).Text)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
