package config

import (
	"io"
	"log/slog"
)

// NewLogger creates a JSON slog.Logger writing to w at the configured level.
func NewLogger(cfg LogConfig, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})), nil
}
