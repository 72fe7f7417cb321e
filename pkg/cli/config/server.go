package config

import (
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	server "github.com/m-mizutani/mctl/pkg/controller/http"
	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"
)

// Server holds the listener and browser-facing settings of the API
type Server struct {
	Addr        string
	CORSOrigins []string
	ActionRate  float64
	ActionBurst int
}

func (x *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Aliases:     []string{"a"},
			Sources:     cli.EnvVars("MCTL_ADDR"),
			Usage:       "Listen address",
			Value:       "127.0.0.1:3000",
			Destination: &x.Addr,
		},
		&cli.StringSliceFlag{
			Name:        "cors-origins",
			Sources:     cli.EnvVars("MCTL_CORS_ORIGINS"),
			Usage:       "Origins allowed to call the API from a browser (comma separated)",
			Destination: &x.CORSOrigins,
		},
		&cli.FloatFlag{
			Name:        "action-rate",
			Sources:     cli.EnvVars("MCTL_ACTION_RATE"),
			Usage:       "Actions per second allowed per client, 0 disables the limit",
			Value:       float64(server.DefaultActionRate),
			Destination: &x.ActionRate,
		},
		&cli.IntFlag{
			Name:        "action-burst",
			Sources:     cli.EnvVars("MCTL_ACTION_BURST"),
			Usage:       "Burst size of the per-client action limit",
			Value:       server.DefaultActionBurst,
			Destination: &x.ActionBurst,
		},
	}
}

func (x Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", x.Addr),
		slog.Any("cors_origins", x.CORSOrigins),
		slog.Float64("action_rate", x.ActionRate),
		slog.Int("action_burst", x.ActionBurst),
	)
}

// Options validates the settings and turns them into server options
func (x *Server) Options() ([]server.Options, error) {
	if x.Addr == "" {
		return nil, goerr.New("listen address is required")
	}
	if x.ActionRate < 0 {
		return nil, goerr.New("action rate must not be negative", goerr.V("action_rate", x.ActionRate))
	}
	if x.ActionRate > 0 && x.ActionBurst < 1 {
		return nil, goerr.New("action burst must be at least 1", goerr.V("action_burst", x.ActionBurst))
	}

	var origins []string
	for _, o := range x.CORSOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return []server.Options{
		server.WithCORSOrigins(origins),
		server.WithActionRateLimit(rate.Limit(x.ActionRate), x.ActionBurst),
	}, nil
}
