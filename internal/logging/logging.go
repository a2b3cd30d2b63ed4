// Package logging provides categorized structured logging for alch.
// Commands log through a named child logger per category so a debug run
// can be filtered to the subsystem of interest. The CLI is quiet by
// default: only warnings and errors reach the terminal unless verbose
// mode raises the level to debug.
package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category names a logging subsystem.
type Category string

const (
	CategoryRegistry Category = "registry" // bulk load, dedup, lookups
	CategoryBrew     Category = "brew"     // combination engine
	CategorySearch   Category = "search"   // search and best-fit resolution
	CategoryConfig   Category = "config"   // config and game settings
	CategoryCodec    Category = "codec"    // registry file parse/write
	CategoryUI       Category = "ui"       // interactive browser
)

var (
	mu   sync.RWMutex
	root = zap.NewNop()
)

// Init builds the process logger. Verbose lowers the level to debug;
// otherwise only warnings and errors are emitted. Output goes to stderr
// so command output on stdout stays pipeable.
func Init(verbose bool) error {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	mu.Lock()
	root = logger
	mu.Unlock()
	return nil
}

// L returns the logger for a category.
func L(cat Category) *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root.Named(string(cat))
}

// Sync flushes buffered log entries. Safe to call on exit paths.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = root.Sync()
}
