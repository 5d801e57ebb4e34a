package cli

import (
	"os"

	"github.com/spf13/cobra"

	"repodeck.dev/repodeck/internal/engine"
	"repodeck.dev/repodeck/internal/git"
)

// newCloneCmd creates the clone command
func newCloneCmd() *cobra.Command {
	var register bool

	cmd := &cobra.Command{
		Use:   "clone <url> [dir]",
		Short: "Clone a repository",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			url := args[0]
			target := ""
			if len(args) == 2 {
				target = args[1]
			} else {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				target = git.CloneTargetDir(wd, url)
			}

			result, err := app.exec(&engine.Request{
				RepoPath: target,
				Kind:     engine.KindClone,
				Args:     engine.CloneArgs{URL: url},
			})
			if err != nil {
				return err
			}
			app.splog.Info("%s", result.(engine.Confirmation).Text)

			if register {
				if err := app.cfg.AddRepo(target); err != nil {
					return err
				}
				app.splog.Info("registered %s", target)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&register, "register", false, "Add the clone to the repository roster")
	return cmd
}
