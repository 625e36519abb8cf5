// Package console mirrors response text to the operator's terminal.
//
// Each line written through a console Writer becomes one log entry of a
// message-only zap logger on stdout. In silent mode the logger is a no-op.
package console

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zapio"
)

type Config struct {
	// Silent suppresses all console output
	Silent bool `conf:"silent"`
}

type Console struct {
	log *zap.Logger
}

// New creates a console writing to stdout, or a silent one.
func New(config Config) (*Console, error) {
	if config.Silent {
		return NewWithLogger(zap.NewNop()), nil
	}

	log, err := newStdoutLogger()
	if err != nil {
		return nil, err
	}

	return NewWithLogger(log), nil
}

// NewWithLogger creates a console on top of an existing logger.
func NewWithLogger(log *zap.Logger) *Console {
	return &Console{log: log}
}

func NewLifecycleConsole(config Config, lc fx.Lifecycle) (*Console, error) {
	c, err := New(config)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			c.Sync()
			return nil
		},
	})

	return c, nil
}

// Writer returns a line-buffered writer for a single request. Callers
// must Close it to flush a trailing partial line. The returned writer
// is not safe for concurrent use.
func (c *Console) Writer() io.WriteCloser {
	return &zapio.Writer{Log: c.log, Level: zap.InfoLevel}
}

// Printf writes one formatted line.
func (c *Console) Printf(format string, args ...any) {
	c.log.Info(fmt.Sprintf(format, args...))
}

// Sync flushes buffered output. Errors from syncing a terminal are
// ignored.
func (c *Console) Sync() {
	_ = c.log.Sync()
}

func newStdoutLogger() (*zap.Logger, error) {
	config := zap.Config{
		Level:       zap.NewAtomicLevelAt(zap.InfoLevel),
		Encoding:    "console",
		OutputPaths: []string{"stdout"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey: "msg",
			LineEnding: zapcore.DefaultLineEnding,
		},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
