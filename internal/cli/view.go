package cli

import (
	"github.com/spf13/cobra"

	"github.com/evergreenhq/wishtree/internal/logging"
	"github.com/evergreenhq/wishtree/internal/tui"
)

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open the interactive wish tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, client, err := loadSetup(cmd)
			if err != nil {
				return err
			}
			closer, err := logging.SetupTUI(cfg.Debug)
			if err != nil {
				return err
			}
			if closer != nil {
				defer closer.Close()
			}
			return tui.Run(client, cfg.AdminPassword)
		},
	}
	return cmd
}
