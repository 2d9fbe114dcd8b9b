package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/evergreenhq/wishtree/internal/config"
	"github.com/evergreenhq/wishtree/internal/store"
)

func Execute() error {
	root := &cobra.Command{
		Use:   "wishtree",
		Short: "Terminal client for the Wish Tree charity service",
		Long:  "Wishtree: browse children's holiday wishes on a decorative tree, reserve one to fulfill, and manage the list as an admin.",
	}

	root.PersistentFlags().StringP("endpoint", "e", "", "Wish Store endpoint URL (default: WISHTREE_ENDPOINT or the hosted store)")
	root.PersistentFlags().Bool("debug", false, "Enable debug logging")

	// Add subcommands
	root.AddCommand(newViewCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newAddCmd())
	root.AddCommand(newResetCmd())
	root.AddCommand(newDeleteCmd())

	if err := root.Execute(); err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	return nil
}

// loadSetup resolves configuration with flag overrides and builds the store
// client shared by all subcommands.
func loadSetup(cmd *cobra.Command) (*config.Config, *store.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if ep := mustGetStringFlag(cmd.Root(), "endpoint"); ep != "" {
		cfg.Endpoint = ep
	}
	if mustGetBoolFlag(cmd.Root(), "debug") {
		cfg.Debug = true
	}
	return cfg, store.NewClient(cfg.Endpoint), nil
}

func mustGetStringFlag(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "flag error:", err)
		os.Exit(2)
	}
	return v
}

func mustGetBoolFlag(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "flag error:", err)
		os.Exit(2)
	}
	return v
}
