package cli

import (
	"github.com/spf13/cobra"

	"repodeck.dev/repodeck/internal/config"
	"repodeck.dev/repodeck/internal/tui"
)

// newUICmd creates the ui command
func newUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive multi-repository dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	return cmd
}
