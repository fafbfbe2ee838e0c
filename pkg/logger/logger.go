package logger

import (
	"log/slog"
	"os"
)

// Log is safe to use before Init; Init only swaps the minimum level for
// production runs.
var Log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
	Level: slog.LevelDebug,
}))

func Init(level slog.Level) {
	Log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}
