package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Timothyfranx/ultimatebosu/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bosu",
		Short: "Community reply quota tracker",
		Long:  "bosu tracks member reply quotas: per-member tracking channels, daily targets, reminders and spreadsheet feed export.",
	}

	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.ReconcileCmd())
	rootCmd.AddCommand(cli.ReportCmd())
	rootCmd.AddCommand(cli.AdminCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
