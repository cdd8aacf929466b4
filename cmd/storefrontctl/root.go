package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/murkotick/storefront-connect/internal/clock"
	"github.com/murkotick/storefront-connect/internal/config"
	"github.com/murkotick/storefront-connect/pkg/core"
	"github.com/murkotick/storefront-connect/pkg/platform/local"
)

// Global flag values.
var (
	flagConfig  string
	flagDataDir string
	flagJSON    bool
)

// integration is the local platform integration, initialized on startup by
// PersistentPreRunE and closed by PersistentPostRunE.
var integration *local.Integration

var rootCmd = &cobra.Command{
	Use:   "storefrontctl",
	Short: "storefrontctl manages the local storefront development platform",
	Long: `storefrontctl is the operator CLI for the SQLite-backed development
platform. It seeds and inspects products, drives carts, and manages user
accounts through the same integration surface applications use.`,
	SilenceUsage:       true,
	PersistentPreRunE:  initIntegration,
	PersistentPostRunE: closeIntegration,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "settings file (default: ./storefront.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "platform data directory (overrides settings)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(productCmd)
	rootCmd.AddCommand(cartCmd)
	rootCmd.AddCommand(userCmd)
}

// initIntegration loads settings and sets the local integration up.
func initIntegration(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	overrides := core.Settings{}
	if flagDataDir != "" {
		overrides[local.SettingDataDir] = flagDataDir
	}

	settings, err := config.LoadMerged(flagConfig, ".", overrides)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	integration, err = local.Setup(settings, clock.RealClock{})
	if err != nil {
		return fmt.Errorf("setup local platform: %w", err)
	}
	return nil
}

// closeIntegration releases the platform database.
func closeIntegration(cmd *cobra.Command, args []string) error {
	if integration != nil {
		return integration.Close()
	}
	return nil
}
