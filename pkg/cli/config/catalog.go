package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/mctl/pkg/domain/model/catalog"
	"github.com/m-mizutani/mctl/pkg/domain/types/apperr"
	"github.com/urfave/cli/v3"
)

// Catalog selects the static catalog file. Empty means the embedded default.
type Catalog struct {
	Path string
}

func (x *Catalog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "catalog",
			Usage:       "Path to a YAML catalog of projects, agent traits and bot profile (default: embedded)",
			Sources:     cli.EnvVars("MCTL_CATALOG"),
			Destination: &x.Path,
		},
	}
}

func (x Catalog) LogValue() slog.Value {
	path := x.Path
	if path == "" {
		path = "(embedded)"
	}
	return slog.StringValue(path)
}

// Load reads and validates the catalog once
func (x *Catalog) Load() (*catalog.Catalog, error) {
	if x.Path == "" {
		return catalog.Default(), nil
	}

	data, err := os.ReadFile(filepath.Clean(x.Path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read catalog file", goerr.TV(apperr.PathKey, x.Path))
	}

	c, err := catalog.Parse(data)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid catalog file", goerr.TV(apperr.PathKey, x.Path))
	}
	return c, nil
}
