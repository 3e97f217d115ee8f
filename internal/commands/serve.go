package commands

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpapi "github.com/i474232898/weatherline/internal/api/http"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the weather line and frontmatter over HTTP",
		Long: `Run an HTTP API exposing the configured weather.

Endpoints:
  GET /health
  GET /api/v1/weather/current
  GET /api/v1/weather/line
  GET /api/v1/weather/frontmatter

Query parameters location, units, provider, template, show_wind and
show_humidity override the configuration per request.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(cmd, opts)
			if err != nil {
				return err
			}

			app := httpapi.NewApp(rt.service, rt.cfg.Settings(), true)

			errCh := make(chan error, 1)
			go func() {
				log.Printf("INFO: listening on %s", addr)
				errCh <- app.Listen(addr)
			}()

			// Wait for termination signal
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			select {
			case err := <-errCh:
				return rt.fail(err)
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := app.ShutdownWithContext(shutdownCtx); err != nil {
				log.Printf("error during shutdown: %v", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")

	return cmd
}
