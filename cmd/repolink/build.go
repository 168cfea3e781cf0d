package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/repolink"
)

func buildCommand(load func() (repolink.SiteConfig, error)) *cobra.Command {
	var outDir, shellPath string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the page for the configured site URL into static files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			app := repolink.New(cfg, repolink.WithShell(shellPath))
			if err := app.Init(); err != nil {
				return err
			}
			defer app.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Building %s\n\n", app.Config.PageURL())
			written, err := app.Export(cmd.Context(), outDir)
			for _, path := range written {
				fmt.Fprintf(out, "  created %s\n", path)
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "dist", "Output directory")
	cmd.Flags().StringVar(&shellPath, "shell", "", "HTML shell to mount the page into (default: embedded)")
	return cmd
}
