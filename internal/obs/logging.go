// Package obs contains observability utilities such as logging.
package obs

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the global structured logger used by the service.
//
// Logger is exported to allow other packages to use it for logging. It
// starts with a JSON handler at info level so packages that log before
// InitLogger runs never hit a nil logger.
var Logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

// InitLogger reconfigures the global Logger with a JSON handler at the
// named level. Unknown level names fall back to info.
func InitLogger(level string) {
	lv := slog.LevelInfo
	switch level {
	case "debug":
		lv = slog.LevelDebug
	case "warn":
		lv = slog.LevelWarn
	case "error":
		lv = slog.LevelError
	}
	Logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lv}))
}

// InitDiscardLogger routes all log output to io.Discard. Used by tests.
func InitDiscardLogger() {
	Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
}
