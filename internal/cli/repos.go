package cli

import (
	"os"

	"github.com/spf13/cobra"

	"repodeck.dev/repodeck/internal/git"
)

// newReposCmd creates the repos command group
func newReposCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repos",
		Short: "Manage the registered repository roster",
	}
	cmd.AddCommand(newReposAddCmd(), newReposRemoveCmd(), newReposListCmd())
	return cmd
}

func newReposAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [path]",
		Short: "Register a working copy (defaults to the current directory)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				path = wd
			}

			// Only valid working copies enter the roster; the root path is
			// what gets recorded even when a subdirectory was given
			repo, err := git.Open(path)
			if err != nil {
				return err
			}
			if err := app.cfg.AddRepo(repo.Root()); err != nil {
				return err
			}
			app.splog.Info("registered %s", repo.Root())
			return nil
		},
	}
	return cmd
}

func newReposRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <path>",
		Short: "Remove a working copy from the roster (files are untouched)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			if err := app.cfg.RemoveRepo(args[0]); err != nil {
				return err
			}
			app.splog.Info("removed %s", args[0])
			return nil
		},
	}
	return cmd
}

func newReposListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the registered working copies",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			for _, repo := range app.cfg.Repos() {
				app.splog.Info("%s", repo)
			}
			return nil
		},
	}
	return cmd
}
