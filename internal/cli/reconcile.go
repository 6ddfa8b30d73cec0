package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ReconcileCmd runs one repair sweep and exits.
func ReconcileCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Repair drift between stored state and the live platform",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			if err := a.connectPlatform(ctx); err != nil {
				return err
			}
			if err := a.buildServices(); err != nil {
				return err
			}

			stats, err := a.reconciler.Reconcile(ctx)
			if err != nil {
				return fmt.Errorf("reconcile: %w", err)
			}

			fmt.Printf("%s %d active periods checked\n", color.GreenString("✓"), stats.Checked)
			fmt.Printf("  departed members: %d\n", stats.Departed)
			fmt.Printf("  resources recreated: %d/%d\n", stats.Recreated, stats.Attempted)
			if stats.Errors > 0 {
				fmt.Printf("  %s %d accounts failed, see logs\n", color.RedString("!"), stats.Errors)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "path to config file")
	return cmd
}
