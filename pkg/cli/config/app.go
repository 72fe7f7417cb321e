package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/mctl/pkg/domain/types/apperr"
	"github.com/urfave/cli/v3"
)

// App contains display settings shared by the server and the terminal client
type App struct {
	DisplayTimezone string
}

func (a *App) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "display-timezone",
			Usage:       "IANA timezone for rendered timestamps, e.g. Asia/Tokyo",
			Sources:     cli.EnvVars("MCTL_DISPLAY_TIMEZONE"),
			Value:       "Local",
			Destination: &a.DisplayTimezone,
		},
	}
}

func (a App) LogValue() slog.Value {
	return slog.GroupValue(slog.String("display_timezone", a.DisplayTimezone))
}

// Location resolves DisplayTimezone
func (a *App) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(a.DisplayTimezone)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid display timezone",
			goerr.TV(apperr.TimezoneKey, a.DisplayTimezone), goerr.T(apperr.ErrTagValidation))
	}
	return loc, nil
}
