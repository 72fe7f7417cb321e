package cli

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/mctl/pkg/cli/config"
	"github.com/m-mizutani/mctl/pkg/controller/tui"
	"github.com/m-mizutani/mctl/pkg/presenter"
	"github.com/m-mizutani/mctl/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdWatch(loggerCfg *config.Logger) *cli.Command {
	var (
		dashboardCfg config.Dashboard
		catalogCfg   config.Catalog
	)

	flags := dashboardCfg.Flags()
	flags = append(flags, catalogCfg.Flags()...)

	return &cli.Command{
		Name:    "watch",
		Aliases: []string{"w"},
		Usage:   "Show the dashboard in the terminal",
		Flags:   flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctxlog.From(ctx).Info("starting terminal dashboard",
				"dashboard", dashboardCfg,
				"catalog", catalogCfg,
			)

			client, err := dashboardCfg.Configure()
			if err != nil {
				return err
			}
			cat, err := catalogCfg.Load()
			if err != nil {
				return err
			}

			// log lines written to the terminal would tear the full screen UI
			if loggerCfg.ToTerminal() {
				ctx = ctxlog.With(ctx, logging.Discard())
			}

			p := presenter.New(client, presenter.WithCatalog(cat))
			return tui.Run(ctx, p, dashboardCfg.RefreshInterval)
		},
	}
}
