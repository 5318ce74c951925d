package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ErrLogConfig indicates an unknown --log-level or --log-format value.
var ErrLogConfig = errors.New("leetrace: bad log configuration")

// newLogger builds the command's logger. level is one of debug, info,
// warn, error; format is text or json. Matching is case-insensitive.
func newLogger(level, format string, outW io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("%w: level %q", ErrLogConfig, level)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(outW, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(outW, opts)), nil
	}
	return nil, fmt.Errorf("%w: format %q", ErrLogConfig, format)
}
