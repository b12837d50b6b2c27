package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show API liveness and system status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := requestContext(cmd)
		defer cancel()

		c := newClient()
		out := cmd.OutOrStdout()

		health, err := c.Health(ctx)
		if err != nil {
			return fmt.Errorf("error checking health: %w", err)
		}
		fmt.Fprintf(out, "API: %s (%s)\n", headingColor.Sprint(health.Status), health.Timestamp)

		status, err := c.SystemStatus(ctx)
		if err != nil {
			return fmt.Errorf("error getting system status: %w", err)
		}

		indicator := color.New(color.FgHiGreen).Sprint("operational")
		if !status.Operational {
			indicator = errorColor.Sprint("degraded")
		}
		uptime := (time.Duration(status.UptimeSeconds) * time.Second).String()
		fmt.Fprintf(out, "System: %s, %s\n", indicator, status.Message)
		fmt.Fprintf(out, "Uptime: %s, last updated %s\n", uptime, status.LastUpdated)
		return nil
	},
}
