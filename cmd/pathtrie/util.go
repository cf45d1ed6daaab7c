package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
)

const stdIOPath = "-"

func getFileOrStdin(path string) (io.ReadCloser, error) {
	if path == stdIOPath {
		return io.NopCloser(os.Stdin), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return file, nil
}

// configLogger installs a JSON logger as the slog default. An unknown level
// is an error.
func configLogger(cctx *cli.Context, writer io.Writer) (*slog.Logger, error) {
	var level slog.Level
	switch name := strings.ToLower(cctx.String("log-level")); name {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		return nil, fmt.Errorf("unknown log level: %q", name)
	}
	logger := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger, nil
}
