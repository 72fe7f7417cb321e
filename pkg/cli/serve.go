package cli

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/mctl/pkg/cli/config"
	server "github.com/m-mizutani/mctl/pkg/controller/http"
	"github.com/m-mizutani/mctl/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg  config.Server
		gatewayCfg config.Gateway
		catalogCfg config.Catalog
		appCfg     config.App
	)

	flags := serverCfg.Flags()
	flags = append(flags, gatewayCfg.Flags()...)
	flags = append(flags, catalogCfg.Flags()...)
	flags = append(flags, appCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Run the dashboard API server",
		Flags:   flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger := ctxlog.From(ctx)
			logger.Info("starting server",
				"server", serverCfg,
				"gateway", gatewayCfg,
				"catalog", catalogCfg,
				"app", appCfg,
			)

			gw, err := gatewayCfg.Configure()
			if err != nil {
				return err
			}
			cat, err := catalogCfg.Load()
			if err != nil {
				return err
			}
			loc, err := appCfg.Location()
			if err != nil {
				return err
			}
			serverOptions, err := serverCfg.Options()
			if err != nil {
				return goerr.Wrap(err, "invalid server options")
			}

			uc := usecase.New(
				usecase.WithGatewayClient(gw),
				usecase.WithCatalog(cat),
				usecase.WithLocation(loc),
			)

			httpServer := http.Server{
				Addr:              serverCfg.Addr,
				Handler:           server.New(uc, serverOptions...),
				ReadTimeout:       30 * time.Second,
				ReadHeaderTimeout: 10 * time.Second,
				BaseContext: func(l net.Listener) context.Context {
					return ctx
				},
			}

			errCh := make(chan error, 1)
			go func() {
				defer close(errCh)
				logger.Info("server started", "addr", serverCfg.Addr)
				if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "server stopped", goerr.V("addr", serverCfg.Addr))
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case <-sigCh:
				logger.Info("shutting down server...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return httpServer.Shutdown(shutdownCtx)
			}
		},
	}
}
