package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ReportCmd groups the read-only reporting commands. They talk to the
// database directly and never touch the gateway.
func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Progress and duplicate reports",
	}
	cmd.PersistentFlags().StringP("config", "c", "config.yaml", "path to config file")

	cmd.AddCommand(reportProgressCmd())
	cmd.AddCommand(reportSummaryCmd())
	cmd.AddCommand(reportDuplicatesCmd())
	return cmd
}

func reportApp(cmd *cobra.Command) (*app, error) {
	configPath, _ := cmd.Flags().GetString("config")
	return newApp(configPath)
}

func reportProgressCmd() *cobra.Command {
	var memberID int64

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show one member's progress through their tracking period",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := reportApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			report, err := a.feed.Progress(context.Background(), memberID, time.Now())
			if err != nil {
				return err
			}

			fmt.Printf("@%s  target %d/day  %s to %s (%s)\n",
				report.Handle, report.Target,
				report.StartDate.Format("2006-01-02"), report.EndDate.Format("2006-01-02"),
				report.Status,
			)
			fmt.Printf("  total: %d of %d expected (%.1f%%)\n",
				report.TotalReplies, report.Expected, report.CompletionPct)
			fmt.Printf("  today: %d/%d, active on %d of %d elapsed days\n",
				report.TodayCount, report.Target, report.ActiveDays, report.DaysElapsed)
			return nil
		},
	}
	cmd.Flags().Int64Var(&memberID, "member", 0, "member external id")
	_ = cmd.MarkFlagRequired("member")
	return cmd
}

func reportSummaryCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show every active member's standing for one day",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := reportApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			day := time.Now()
			if date != "" {
				day, err = time.ParseInLocation("2006-01-02", date, time.UTC)
				if err != nil {
					return fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
				}
			}

			summary, err := a.feed.DailySummary(context.Background(), day)
			if err != nil {
				return err
			}
			if len(summary) == 0 {
				fmt.Println("no active tracking periods for that day")
				return nil
			}

			for _, p := range summary {
				fmt.Printf("%s @%s: %d/%d (%.0f%%)\n",
					completionMark(p.CompletionPct), p.Handle, p.Done, p.Target, p.CompletionPct)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day to report on (YYYY-MM-DD, default today)")
	return cmd
}

func reportDuplicatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "duplicates",
		Short: "Scan for resubmitted posts, within and across accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := reportApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			report, err := a.feed.ScanDuplicates(context.Background())
			if err != nil {
				return err
			}

			clean := true
			for _, acc := range report.Scanned {
				if len(acc.Duplicates) == 0 {
					continue
				}
				clean = false
				fmt.Printf("%s @%s (%d submissions):\n", color.YellowString("!"), acc.Handle, acc.Total)
				for _, d := range acc.Duplicates {
					fmt.Printf("  post %s submitted %d times: %s\n", d.PostID, len(d.Ordinals), d.Link)
				}
			}
			for _, cross := range report.CrossAccount {
				clean = false
				fmt.Printf("%s post %s submitted by several accounts: %v\n",
					color.RedString("!!"), cross.PostID, cross.Accounts)
			}
			if clean {
				fmt.Printf("%s no duplicates found across %d accounts\n",
					color.GreenString("✓"), len(report.Scanned))
			}
			return nil
		},
	}
}

func completionMark(pct float64) string {
	switch {
	case pct >= 100:
		return color.GreenString("✓")
	case pct >= 50:
		return color.YellowString("~")
	default:
		return color.RedString("✗")
	}
}
