package telemetry

import (
	"log/slog"
	"os"
)

// InitSlog sets the default slog handler; verbose enables debug-level
// output, which also makes resty instrumentation dump request/response
// bodies.
func InitSlog(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
