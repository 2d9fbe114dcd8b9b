package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evergreenhq/wishtree/internal/logging"
	"github.com/evergreenhq/wishtree/internal/store"
)

func newListCmd() *cobra.Command {
	var category string
	var availableOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the wish list",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, client, err := loadSetup(cmd)
			if err != nil {
				return err
			}
			logging.SetupCLI(cfg.Debug)

			wishes, err := client.List()
			if err != nil {
				return err
			}
			for _, w := range wishes {
				if category != "" && w.Category != store.Category(category) {
					continue
				}
				if availableOnly && !w.Available() {
					continue
				}
				status := "available"
				if !w.Available() {
					status = fmt.Sprintf("fulfilled by %s", w.FulfilledBy)
				}
				fmt.Printf("#%d\t%s (%d)\t%s\t[%s]\t%s\n", w.ID, w.ChildName, w.Age, w.Category, status, w.Text)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Only show wishes in this category")
	cmd.Flags().BoolVarP(&availableOnly, "available", "a", false, "Only show wishes that can still be reserved")
	return cmd
}
