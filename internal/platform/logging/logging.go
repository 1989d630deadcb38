package logging

import (
	"io"
	"log/slog"

	"github.com/go-chi/httplog/v3"
)

// New builds the process logger: JSON lines in the ECS schema, tagged with
// the service name and environment. Debug level is enabled outside production.
func New(w io.Writer, env string) *slog.Logger {
	level := slog.LevelDebug
	if env == "production" {
		level = slog.LevelInfo
	}
	logFormat := httplog.SchemaECS.Concise(false)
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrconsole"),
		slog.String("env", env),
	)
}
