package config

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/mctl/pkg/domain/types/apperr"
	"github.com/m-mizutani/mctl/pkg/utils/logging"
	"github.com/m-mizutani/mctl/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

// Logger holds the configuration for logging
type Logger struct {
	level      string
	format     string
	output     string
	quiet      bool
	stacktrace bool

	closer func()
}

// Flags returns CLI flags for logger configuration
func (x *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Category:    "logging",
			Aliases:     []string{"l"},
			Sources:     cli.EnvVars("MCTL_LOG_LEVEL"),
			Usage:       "Set log level [debug|info|warn|error]",
			Value:       "info",
			Destination: &x.level,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Category:    "logging",
			Aliases:     []string{"f"},
			Sources:     cli.EnvVars("MCTL_LOG_FORMAT"),
			Usage:       "Set log format [console|json]",
			Value:       "console",
			Destination: &x.format,
		},
		&cli.StringFlag{
			Name:        "log-output",
			Category:    "logging",
			Aliases:     []string{"o"},
			Sources:     cli.EnvVars("MCTL_LOG_OUTPUT"),
			Usage:       "Set log output (create file other than '-', 'stdout', 'stderr')",
			Value:       "stdout",
			Destination: &x.output,
		},
		&cli.BoolFlag{
			Name:        "log-quiet",
			Category:    "logging",
			Aliases:     []string{"q"},
			Usage:       "Quiet mode (no log output)",
			Sources:     cli.EnvVars("MCTL_LOG_QUIET"),
			Destination: &x.quiet,
		},
		&cli.BoolFlag{
			Name:        "log-stacktrace",
			Category:    "logging",
			Aliases:     []string{"s"},
			Usage:       "Show stacktrace (only for console format)",
			Sources:     cli.EnvVars("MCTL_LOG_STACKTRACE"),
			Destination: &x.stacktrace,
			Value:       true,
		},
	}
}

// LogValue returns the logger configuration as a slog.Value for logging
func (x Logger) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", x.level),
		slog.String("format", x.format),
		slog.String("output", x.output),
		slog.Bool("quiet", x.quiet),
		slog.Bool("stacktrace", x.stacktrace),
	)
}

// Configure sets up logger and returns the configured logger
func (x *Logger) Configure() (*slog.Logger, error) {
	if x.quiet {
		return logging.Quiet(), nil
	}

	level, err := logging.ParseLevel(x.level)
	if err != nil {
		return nil, err
	}

	format, err := x.parseFormat()
	if err != nil {
		return nil, err
	}

	output, closer, err := x.openOutput()
	if err != nil {
		return nil, err
	}
	x.closer = closer

	logger := logging.New(output, level, format, x.stacktrace)
	logging.SetDefault(logger)

	return logger, nil
}

// Close releases the log file opened by Configure, if any
func (x *Logger) Close() {
	if x.closer != nil {
		x.closer()
		x.closer = nil
	}
}

// ToTerminal reports whether logs go to stdout or stderr, where they would
// collide with a full screen terminal UI.
func (x *Logger) ToTerminal() bool {
	if x.quiet {
		return false
	}
	switch strings.ToLower(x.output) {
	case "stdout", "-", "stderr":
		return true
	default:
		return false
	}
}

// parseFormat determines the log format to use
func (x *Logger) parseFormat() (logging.Format, error) {
	if x.format == "" {
		return x.autoDetectFormat(), nil
	}
	return logging.ParseFormat(x.format)
}

// autoDetectFormat detects the appropriate format based on the terminal
func (x *Logger) autoDetectFormat() logging.Format {
	term := os.Getenv("TERM")
	if strings.Contains(term, "color") || strings.Contains(term, "xterm") {
		return logging.FormatConsole
	}
	return logging.FormatJSON
}

// openOutput opens the output writer based on configuration
func (x *Logger) openOutput() (io.Writer, func(), error) {
	switch strings.ToLower(x.output) {
	case "stdout", "-":
		return os.Stdout, func() {}, nil

	case "stderr":
		return os.Stderr, func() {}, nil

	default:
		f, err := os.OpenFile(filepath.Clean(x.output), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
		if err != nil {
			return nil, func() {}, goerr.Wrap(err, "failed to open log file",
				goerr.TV(apperr.PathKey, x.output),
			)
		}

		closer := func() {
			safe.Close(context.Background(), f)
		}

		return f, closer, nil
	}
}
