package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/mctl/pkg/cli"
)

func TestRun_GenerateCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")

	err := cli.Run(context.Background(), []string{"mctl", "--log-quiet", "tool", "generate-config", "catalog", "-o", path})
	gt.NoError(t, err).Required()

	info, err := os.Stat(path)
	gt.NoError(t, err).Required()
	gt.True(t, info.Size() > 0)
}

func TestRun_InvalidLogLevel(t *testing.T) {
	err := cli.Run(context.Background(), []string{"mctl", "--log-level", "loud", "tool"})
	gt.Error(t, err)
}
