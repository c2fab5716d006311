// Package logger holds the process-wide zap logger used by the command line
// tool.
package logger

import (
	"go.uber.org/zap"
)

// Log is the shared logger. It discards everything until [Initialize] is
// called.
var Log = zap.NewNop()

// New builds a logger writing console-encoded entries to stderr at the given
// level ("debug", "INFO", "warn", ...).
func New(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// Initialize replaces [Log] with a logger at the given level.
func Initialize(level string) error {
	zl, err := New(level)
	if err != nil {
		return err
	}
	Log = zl
	return nil
}
