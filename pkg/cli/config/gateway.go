package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/mctl/pkg/adapters/gateway"
	"github.com/urfave/cli/v3"
)

// Gateway holds the connection settings of the automation gateway
type Gateway struct {
	URL     string
	Token   string `masq:"secret"`
	Timeout time.Duration
}

func (x *Gateway) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gateway-url",
			Category:    "gateway",
			Usage:       "Base URL of the automation gateway",
			Sources:     cli.EnvVars("MCTL_GATEWAY_URL"),
			Value:       "http://127.0.0.1:18789",
			Destination: &x.URL,
		},
		&cli.StringFlag{
			Name:        "gateway-token",
			Category:    "gateway",
			Usage:       "Bearer token for the gateway API",
			Sources:     cli.EnvVars("MCTL_GATEWAY_TOKEN"),
			Destination: &x.Token,
		},
		&cli.DurationFlag{
			Name:        "gateway-timeout",
			Category:    "gateway",
			Usage:       "Timeout of each gateway call",
			Sources:     cli.EnvVars("MCTL_GATEWAY_TIMEOUT"),
			Value:       gateway.DefaultTimeout,
			Destination: &x.Timeout,
		},
	}
}

func (x Gateway) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("url", x.URL),
		slog.Bool("token_set", x.Token != ""),
		slog.Duration("timeout", x.Timeout),
	)
}

// Configure builds the gateway client. A missing token is allowed because a
// loopback gateway may not require one.
func (x *Gateway) Configure() (*gateway.Client, error) {
	if x.Timeout <= 0 {
		return nil, goerr.New("gateway timeout must be positive", goerr.V("timeout", x.Timeout))
	}

	client, err := gateway.New(x.URL,
		gateway.WithToken(x.Token),
		gateway.WithTimeout(x.Timeout),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to configure gateway client")
	}
	return client, nil
}
