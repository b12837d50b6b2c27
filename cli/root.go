// Package cli implements blogctl, a terminal client for the blog API.
package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/rpupo63/personal-blog/client"
	"github.com/spf13/cobra"
)

const defaultAPIURL = "http://localhost:3000"

var (
	apiURL     string
	reqTimeout time.Duration
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:           "blogctl [command] [flags]",
	Short:         "blogctl: read, publish and comment on the blog from a terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&apiURL, "api", envOr("BLOG_API_URL", defaultAPIURL), "base URL of the blog API")
	RootCmd.PersistentFlags().DurationVar(&reqTimeout, "timeout", 30*time.Second, "timeout for each API call")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.New(color.FgHiRed, color.Bold).Sprint("Error: "+err.Error()))
		os.Exit(1)
	}
}

func newClient() *client.Client {
	return client.New(apiURL)
}

func requestContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, reqTimeout)
}

func parseID(raw, name string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
