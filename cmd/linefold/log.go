package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
)

func newLog(w io.Writer, verbosity int) *slog.Logger {
	level := slog.LevelInfo
	if verbosity > 0 {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			if a.Key == slog.LevelKey {
				if a.Value.String() == "INFO" {
					return slog.Attr{}
				}
			}
			return a
		},
	}))
}

var warnColor = color.New(color.FgYellow)

func warn(w io.Writer, err error) {
	warnColor.Fprint(w, "Warning:")
	fmt.Fprintf(w, " %v\n", err)
}
