package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/masq"
)

// Format represents the logging output format
type Format int

const (
	FormatConsole Format = iota + 1
	FormatJSON
)

// SetDefault sets the process wide logger used when a context carries none
func SetDefault(logger *slog.Logger) {
	slog.SetDefault(logger)
}

// Quiet sets the logger to discard all output
func Quiet() *slog.Logger {
	logger := Discard()
	SetDefault(logger)
	return logger
}

// Discard returns a logger that drops everything without touching the default.
// The terminal dashboard swaps it in so log lines do not tear the screen.
func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

// ParseLevel converts a flag value to slog.Level
func ParseLevel(v string) (slog.Level, error) {
	switch strings.ToLower(v) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, goerr.New("invalid log level",
			goerr.V("level", v),
			goerr.V("valid_levels", []string{"debug", "info", "warn", "error"}),
		)
	}
}

// ParseFormat converts a flag value to Format
func ParseFormat(v string) (Format, error) {
	switch strings.ToLower(v) {
	case "console":
		return FormatConsole, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatConsole, goerr.New("invalid log format",
			goerr.V("format", v),
			goerr.V("valid_formats", []string{"console", "json"}),
		)
	}
}

// New creates a new slog.Logger with the specified configuration
func New(w io.Writer, level slog.Level, format Format, stacktrace bool) *slog.Logger {
	// Configure masq filter for sensitive data
	filter := createMasqFilter()

	// Configure attribute hook based on stacktrace setting
	attrHook := clog.GoerrHook
	if !stacktrace {
		attrHook = goerrNoStacktrace
	}

	var handler slog.Handler
	switch format {
	case FormatConsole:
		handler = createConsoleHandler(w, level, filter, attrHook)
	case FormatJSON:
		handler = createJSONHandler(w, level, filter)
	default:
		panic(fmt.Sprintf("unsupported log format: %d", format))
	}

	return slog.New(handler)
}

// createMasqFilter redacts the gateway bearer token wherever it may surface:
// tagged config fields, header maps and raw "Bearer ..." strings.
func createMasqFilter() func([]string, slog.Attr) slog.Attr {
	return masq.New(
		masq.WithTag("secret"),
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldName("Authorization"),
		masq.WithFieldName("Token"),
		masq.WithFieldName("GatewayToken"),
		masq.WithFieldName("gateway_token"),
		masq.WithContain("Bearer "),
	)
}

// createConsoleHandler creates a console handler with colors
func createConsoleHandler(w io.Writer, level slog.Level, filter func([]string, slog.Attr) slog.Attr, attrHook func([]string, slog.Attr) *clog.HandleAttr) slog.Handler {
	return clog.New(
		clog.WithWriter(w),
		clog.WithLevel(level),
		clog.WithReplaceAttr(filter),
		clog.WithAttrHook(attrHook),
		clog.WithColorMap(defaultColorMap()),
	)
}

// createJSONHandler creates a JSON handler
func createJSONHandler(w io.Writer, level slog.Level, filter func([]string, slog.Attr) slog.Attr) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource:   true,
		Level:       level,
		ReplaceAttr: filter,
	})
}

// defaultColorMap returns the default color mapping for console output
func defaultColorMap() *clog.ColorMap {
	return &clog.ColorMap{
		Level: map[slog.Level]*color.Color{
			slog.LevelDebug: color.New(color.FgGreen, color.Bold),
			slog.LevelInfo:  color.New(color.FgCyan, color.Bold),
			slog.LevelWarn:  color.New(color.FgYellow, color.Bold),
			slog.LevelError: color.New(color.FgRed, color.Bold),
		},
		LevelDefault: color.New(color.FgBlue, color.Bold),
		Time:         color.New(color.FgWhite),
		Message:      color.New(color.FgHiWhite),
		AttrKey:      color.New(color.FgHiCyan),
		AttrValue:    color.New(color.FgHiWhite),
	}
}

// goerrNoStacktrace removes stacktrace from goerr errors for cleaner output
func goerrNoStacktrace(_ []string, attr slog.Attr) *clog.HandleAttr {
	goErr, ok := attr.Value.Any().(*goerr.Error)
	if !ok {
		return nil
	}

	var attrs []any
	for k, v := range goErr.Values() {
		attrs = append(attrs, slog.Any(k, v))
	}

	attrs = append(attrs, slog.String("message", goErr.Error()))

	if cause := goErr.Unwrap(); cause != nil {
		attrs = append(attrs, slog.Any("cause", cause))
	}

	newAttr := slog.Group(attr.Key, attrs...)
	return &clog.HandleAttr{
		NewAttr: &newAttr,
	}
}
