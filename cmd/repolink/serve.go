package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/eringen/repolink"
)

func serveCommand(load func() (repolink.SiteConfig, error)) *cobra.Command {
	var shellPath, staticDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the page over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			app := repolink.New(cfg, repolink.WithShell(shellPath), repolink.WithStaticDir(staticDir))
			defer app.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- app.Start()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			app.Echo.Logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), app.Config.ShutdownTimeout)
			defer cancel()
			return app.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVar(&shellPath, "shell", "", "HTML shell to mount the page into (default: embedded)")
	cmd.Flags().StringVar(&staticDir, "static", "public", "Directory served under /public")
	return cmd
}
