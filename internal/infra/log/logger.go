// Package logs builds the process-wide structured logger.
package logs

import (
	"log/slog"
	"os"
	"strings"

	"accounts/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// New builds a slog.Logger from the log section of the config. JSON output
// by default; the pretty flag switches to the text handler for local runs.
func New(params Params) (*slog.Logger, error) {
	level, err := levelFromName(params.Config.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, opts)
	if params.Config.Env.Log.Pretty {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler), nil
}

func levelFromName(name string) (slog.Level, error) {
	if level, ok := logLevels[strings.ToLower(name)]; ok {
		return level, nil
	}

	return slog.LevelInfo, errors.Errorf("unknown log level: %q", name)
}
