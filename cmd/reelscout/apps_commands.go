package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"reelscout/internal/apps"
)

func newAppsCommand(ctx *commandContext) *cobra.Command {
	appsCmd := &cobra.Command{
		Use:   "apps",
		Short: "Manage which streaming apps you subscribe to",
		Long:  "Recommendations and availability answers are scoped to the enabled set. All supported apps start enabled.",
	}

	appsCmd.AddCommand(newAppsListCommand(ctx))
	appsCmd.AddCommand(newAppsEnableCommand(ctx))
	appsCmd.AddCommand(newAppsDisableCommand(ctx))
	appsCmd.AddCommand(newAppsResetCommand(ctx))

	return appsCmd
}

func newAppsListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show supported apps and their enabled state",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.appsStore()
			if err != nil {
				return err
			}
			enabled, err := store.Load()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderAppsList(enabled))
			return nil
		},
	}
}

// renderAppsList emits a rounded table for terminals and plain tab-separated
// lines when output is piped.
func renderAppsList(enabled []string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lines := make([]string, 0, len(apps.Supported()))
		for _, app := range apps.Supported() {
			lines = append(lines, app+"\t"+yesNo(apps.Contains(enabled, app)))
		}
		return strings.Join(lines, "\n")
	}

	rows := make([][]string, 0, len(apps.Supported()))
	for _, app := range apps.Supported() {
		rows = append(rows, []string{app, yesNo(apps.Contains(enabled, app))})
	}
	return renderTable([]string{"App", "Enabled"}, rows)
}

func newAppsEnableCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "enable <app>",
		Short: "Enable a streaming app",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.appsStore()
			if err != nil {
				return err
			}
			enabled, err := store.Enable(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Enabled: %s\n", strings.Join(enabled, ", "))
			return nil
		},
	}
}

func newAppsDisableCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "disable <app>",
		Short: "Disable a streaming app",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.appsStore()
			if err != nil {
				return err
			}
			enabled, err := store.Disable(args[0])
			if err != nil {
				return err
			}
			if len(enabled) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Enabled: (none)")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Enabled: %s\n", strings.Join(enabled, ", "))
			return nil
		},
	}
}

func newAppsResetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Re-enable every supported app",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.appsStore()
			if err != nil {
				return err
			}
			enabled, err := store.Reset()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Enabled: %s\n", strings.Join(enabled, ", "))
			return nil
		},
	}
}
