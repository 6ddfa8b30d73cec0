package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// AdminCmd groups the operator actions. Each subcommand connects to the
// gateway, performs one action and exits.
func AdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Operator actions on tracking periods",
	}
	cmd.PersistentFlags().StringP("config", "c", "config.yaml", "path to config file")

	cmd.AddCommand(adminActionCmd("pause", "Pause a member's tracking period",
		func(ctx context.Context, a *app, id int64) (string, error) {
			return "tracking paused", a.admin.Pause(ctx, id)
		}))
	cmd.AddCommand(adminActionCmd("resume", "Resume a member's paused period",
		func(ctx context.Context, a *app, id int64) (string, error) {
			return "tracking resumed", a.admin.Resume(ctx, id)
		}))
	cmd.AddCommand(adminActionCmd("delete", "Delete a member's tracking resource and close the period",
		func(ctx context.Context, a *app, id int64) (string, error) {
			return "tracking deleted", a.admin.Delete(ctx, id)
		}))
	cmd.AddCommand(adminSetTargetCmd())
	cmd.AddCommand(adminSetupCmd())
	cmd.AddCommand(adminSetupAllCmd())
	return cmd
}

// adminActionCmd builds a subcommand taking a single member id argument.
func adminActionCmd(use, short string, fn func(ctx context.Context, a *app, id int64) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <member-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid member id %q", args[0])
			}
			return withAdmin(cmd, func(ctx context.Context, a *app) error {
				msg, err := fn(ctx, a, id)
				if err != nil {
					return err
				}
				fmt.Printf("%s %s for member %d\n", color.GreenString("✓"), msg, id)
				return nil
			})
		},
	}
}

func adminSetTargetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-target <member-id> <target>",
		Short: "Change a member's daily reply target",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid member id %q", args[0])
			}
			target, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid target %q", args[1])
			}
			return withAdmin(cmd, func(ctx context.Context, a *app) error {
				if err := a.admin.ChangeTarget(ctx, id, target); err != nil {
					return err
				}
				fmt.Printf("%s daily target for member %d set to %d\n", color.GreenString("✓"), id, target)
				return nil
			})
		},
	}
}

func adminSetupCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "setup <member-id>",
		Short: "Start onboarding for one member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid member id %q", args[0])
			}
			return withAdmin(cmd, func(ctx context.Context, a *app) error {
				display := name
				if display == "" {
					display = fmt.Sprintf("member-%d", id)
				}
				if err := a.admin.SetupMember(ctx, id, display); err != nil {
					return err
				}
				fmt.Printf("%s onboarding started for member %d\n", color.GreenString("✓"), id)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name for the tracking resource")
	return cmd
}

func adminSetupAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup-all",
		Short: "Start onboarding for every role holder without an active period",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAdmin(cmd, func(ctx context.Context, a *app) error {
				started, err := a.admin.SetupAll(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("%s onboarding started for %d members\n", color.GreenString("✓"), started)
				return nil
			})
		},
	}
}

// withAdmin brings up the full stack, runs fn and tears down.
func withAdmin(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	configPath, _ := cmd.Flags().GetString("config")
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
	return fn(ctx, a)
}
