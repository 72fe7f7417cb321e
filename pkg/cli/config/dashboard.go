package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/mctl/pkg/adapters/dashboard"
	"github.com/m-mizutani/mctl/pkg/presenter"
	"github.com/urfave/cli/v3"
)

// Dashboard holds the terminal client's view of the API server
type Dashboard struct {
	URL             string
	RefreshInterval time.Duration
	Timeout         time.Duration
}

func (x *Dashboard) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dashboard-url",
			Sources:     cli.EnvVars("MCTL_DASHBOARD_URL"),
			Usage:       "Base URL of the mctl API server",
			Value:       "http://127.0.0.1:3000",
			Destination: &x.URL,
		},
		&cli.DurationFlag{
			Name:        "refresh-interval",
			Sources:     cli.EnvVars("MCTL_REFRESH_INTERVAL"),
			Usage:       "How often the snapshot is reloaded",
			Value:       presenter.DefaultRefreshInterval,
			Destination: &x.RefreshInterval,
		},
		&cli.DurationFlag{
			Name:        "dashboard-timeout",
			Sources:     cli.EnvVars("MCTL_DASHBOARD_TIMEOUT"),
			Usage:       "Timeout of one API server request; keep it above the server's gateway-timeout",
			Value:       dashboard.DefaultTimeout,
			Destination: &x.Timeout,
		},
	}
}

func (x Dashboard) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("url", x.URL),
		slog.Duration("refresh_interval", x.RefreshInterval),
		slog.Duration("timeout", x.Timeout),
	)
}

func (x *Dashboard) Configure() (*dashboard.Client, error) {
	if x.RefreshInterval < time.Second {
		return nil, goerr.New("refresh interval must be at least 1s", goerr.V("refresh_interval", x.RefreshInterval))
	}
	if x.Timeout <= 0 {
		return nil, goerr.New("dashboard timeout must be positive", goerr.V("timeout", x.Timeout))
	}
	client, err := dashboard.New(x.URL, dashboard.WithTimeout(x.Timeout))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to configure dashboard client")
	}
	return client, nil
}
