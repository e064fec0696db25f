package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ChairulIkhsan23/niyyah-backend/pkg/cleanup"
)

type Config struct {
	Level string
	// File enables a rotating log file next to stdout output.
	File string
}

// Init builds a JSON slog logger and installs it as the default.
func Init(cfg Config) *slog.Logger {
	var writer io.Writer = os.Stdout
	if cfg.File != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		cleanup.Register(&cleanup.Job{
			Name: "closing log file",
			F:    fileWriter.Close,
		})
		writer = io.MultiWriter(os.Stdout, fileWriter)
	}
	logger := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}))
	slog.SetDefault(logger)
	return logger
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
