package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/malusev998/currency-rates/transport"
)

const shutdownTimeout = 10 * time.Second

func serveCommand(a *app) *cobra.Command {
	var addr string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the converter HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.settings.HTTPAddr
			}

			// fail fast on an unreadable source instead of on the first request
			if _, err := a.registry.Table(); err != nil {
				return err
			}

			if !a.debug {
				gin.SetMode(gin.ReleaseMode)
			}

			handler := transport.NewHandler(transport.Config{
				Resolver: a.resolver,
				Logger:   log.With(a.logger, "component", "http"),
				Metrics:  promhttp.HandlerFor(a.metrics, promhttp.HandlerOpts{}),
			})

			return serve(a.ctx, a, &http.Server{
				Addr:              addr,
				Handler:           handler,
				ReadHeaderTimeout: 5 * time.Second,
			})
		},
	}

	serveCmd.Flags().StringVar(&addr, "addr", "", "Listen address, overrides http.addr")

	return serveCmd
}

// serve runs server until ctx is cancelled. SIGHUP re-reads the rate table.
func serve(ctx context.Context, a *app, server *http.Server) error {
	hangup := make(chan os.Signal, 1)
	signal.Notify(hangup, syscall.SIGHUP)
	defer signal.Stop(hangup)

	errorChannel := make(chan error, 1)

	go func() {
		level.Info(a.logger).Log("msg", "listening", "addr", server.Addr)
		errorChannel <- server.ListenAndServe()
	}()

	for {
		select {
		case <-hangup:
			_, _ = a.registry.Refresh()
		case err := <-errorChannel:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}

			return err
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			level.Info(a.logger).Log("msg", "shutting down")

			return server.Shutdown(shutdownCtx)
		}
	}
}
