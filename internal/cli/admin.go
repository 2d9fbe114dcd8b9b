package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/evergreenhq/wishtree/internal/config"
	"github.com/evergreenhq/wishtree/internal/logging"
	"github.com/evergreenhq/wishtree/internal/store"
)

func newAddCmd() *cobra.Command {
	var draft struct {
		name     string
		age      int
		text     string
		category string
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a wish to the tree (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, client, err := loadSetup(cmd)
			if err != nil {
				return err
			}
			logging.SetupCLI(cfg.Debug)

			d := store.Draft{
				ChildName: draft.name,
				Age:       draft.age,
				Text:      draft.text,
				Category:  store.Category(draft.category),
			}
			if err := client.Create(d, requireAdminPassword(cfg)); err != nil {
				return describeAdminErr(err)
			}
			fmt.Println("wish added")
			return nil
		},
	}

	cmd.Flags().StringVarP(&draft.name, "name", "n", "", "Child's name")
	cmd.Flags().IntVarP(&draft.age, "age", "a", 0, "Child's age")
	cmd.Flags().StringVarP(&draft.text, "wish", "w", "", "Wish text")
	cmd.Flags().StringVarP(&draft.category, "category", "c", string(store.CategoryToys), "Wish category")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("age")
	cmd.MarkFlagRequired("wish")
	return cmd
}

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear fulfilled status on all wishes (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, client, err := loadSetup(cmd)
			if err != nil {
				return err
			}
			logging.SetupCLI(cfg.Debug)

			if err := client.Reset(requireAdminPassword(cfg)); err != nil {
				return describeAdminErr(err)
			}
			fmt.Println("fulfilled wishes reset")
			return nil
		},
	}
	return cmd
}

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a wish from the tree (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid wish id %q", args[0])
			}
			cfg, client, err := loadSetup(cmd)
			if err != nil {
				return err
			}
			logging.SetupCLI(cfg.Debug)

			if err := client.Remove(id, requireAdminPassword(cfg)); err != nil {
				return describeAdminErr(err)
			}
			fmt.Println("wish deleted")
			return nil
		},
	}
	return cmd
}

func requireAdminPassword(cfg *config.Config) string {
	return cfg.AdminPassword
}

func describeAdminErr(err error) error {
	if errors.Is(err, store.ErrForbidden) {
		return errors.New("wrong admin password (set WISHTREE_ADMIN_PASSWORD)")
	}
	return err
}
