package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eringen/repolink"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "repolink",
		Short: "repolink - a single page linking to a source repository",
		Long: `repolink renders a page that links to a source repository, with title,
meta description, canonical link and schema.org JSON-LD set for crawlers.

Configuration is read from an optional YAML file and from environment
variables (SITE_URL, HTTP_ADDR, REPO_NAME, REPO_URL, REPO_LANGUAGE,
PAGE_CACHE_SIZE, PAGE_CACHE_TTL, RENDER_LIMIT, LOG_LEVEL, SHUTDOWN_TIMEOUT).`,
		Example: `  repolink serve
  repolink serve -c config.yml
  repolink build -o dist`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")

	load := func() (repolink.SiteConfig, error) {
		return repolink.LoadConfig(configPath)
	}

	rootCmd.AddCommand(
		serveCommand(load),
		buildCommand(load),
		versionCommand(),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the repolink version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "repolink %s\n", version)
		},
	}
}
