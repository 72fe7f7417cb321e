package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/mctl/pkg/domain/model/catalog"
	"github.com/m-mizutani/mctl/pkg/domain/types/apperr"
	"github.com/urfave/cli/v3"
)

// CmdGenerateConfig returns the generate-config command
func CmdGenerateConfig() *cli.Command {
	return &cli.Command{
		Name:    "generate-config",
		Aliases: []string{"g"},
		Usage:   "Generate configuration file templates",
		Commands: []*cli.Command{
			cmdGenerateCatalog(),
		},
	}
}

func cmdGenerateCatalog() *cli.Command {
	var (
		outputPath string
		force      bool
	)

	return &cli.Command{
		Name:  "catalog",
		Usage: "Write the built-in catalog as a template for --catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Output file path",
				Value:       "catalog.yaml",
				Destination: &outputPath,
			},
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "Overwrite existing file",
				Destination: &force,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := WriteCatalogTemplate(outputPath, force); err != nil {
				return err
			}

			ctxlog.From(ctx).Info("catalog template generated", "path", outputPath)
			fmt.Printf("Catalog template written to %s\n", outputPath)
			fmt.Println("Edit it and start the server with --catalog", outputPath)
			return nil
		},
	}
}

// WriteCatalogTemplate writes the embedded catalog to path. An existing file
// is kept unless force is set.
func WriteCatalogTemplate(path string, force bool) error {
	path = filepath.Clean(path)
	if _, err := os.Stat(path); err == nil && !force {
		return goerr.New("file already exists, use --force to overwrite", goerr.TV(apperr.PathKey, path))
	}

	if err := os.WriteFile(path, catalog.DefaultYAML(), 0600); err != nil {
		return goerr.Wrap(err, "failed to write catalog template", goerr.TV(apperr.PathKey, path))
	}
	return nil
}
