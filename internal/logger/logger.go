// Package logger provides verbose logging for gitevents.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to show which GitHub queries run and how their
// payloads are normalised.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.Mutex
	output  io.Writer = os.Stderr
	verbose atomic.Bool
	base    = newBase()
)

// switchWriter forwards to the current output so SetOutput also affects
// loggers obtained earlier through Named.
type switchWriter struct{}

func (switchWriter) Write(p []byte) (int, error) {
	mu.Lock()
	defer mu.Unlock()
	return output.Write(p)
}

func newBase() *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		LevelKey:         "level",
		NameKey:          "logger",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      bracketLevelEncoder,
		EncodeName:       zapcore.FullNameEncoder,
		ConsoleSeparator: " ",
	})
	enabled := zap.LevelEnablerFunc(func(zapcore.Level) bool {
		return verbose.Load()
	})
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(switchWriter{}), enabled))
}

func bracketLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + l.CapitalString() + "]")
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	verbose.Store(v)
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	return verbose.Load()
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Named returns a structured logger for a component. It honours the
// verbose flag and output of this package.
func Named(name string) *zap.Logger {
	return base.Named(name)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	base.Debug(fmt.Sprintf(format, args...))
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	if !verbose.Load() {
		return
	}
	fmt.Fprintf(switchWriter{}, "\n=== %s ===\n", name)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	base.Info(fmt.Sprintf(format, args...))
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	base.Warn(fmt.Sprintf(format, args...))
}
