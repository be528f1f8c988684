// Package debug writes an opt-in trace of widget and demo activity.
// Nothing is logged unless Init is called with enable set, normally from a
// --debug flag. The log lives at ~/.fieldkit/debug.log and is truncated on
// every launch so a trace covers exactly one session.
package debug

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	// LogFileName is the debug log file name.
	LogFileName = "debug.log"
	// LogDirName is the per-user directory holding the log file.
	LogDirName = ".fieldkit"
)

// sink is the single package-wide log destination.
type sink struct {
	mu     sync.RWMutex
	on     bool
	logger *log.Logger
	file   *os.File
}

var (
	out sink

	// getLogPath is swappable for tests.
	getLogPath = userLogPath
)

// init sets up the trace. With enable false every logging call is a no-op;
// with enable true the log file is created or truncated.
func (s *sink) init(enable bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.on = enable
	if !enable {
		s.logger = log.New(io.Discard, "", 0)
		return nil
	}

	path, err := getLogPath()
	if err != nil {
		return fmt.Errorf("determine log path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	s.file = f
	s.logger = log.New(f, "", log.Ldate|log.Ltime|log.Lmicroseconds)
	s.logger.Printf("=== fieldkit debug log started at %s ===", time.Now().Format(time.RFC3339))
	return nil
}

// Init enables or disables the trace for this process.
func Init(enable bool) error {
	return out.init(enable)
}

// Close closes the log file if one is open. Safe to call when disabled.
func Close() {
	out.mu.Lock()
	defer out.mu.Unlock()

	if out.file != nil {
		_ = out.file.Close()
		out.file = nil
	}
}

// Log writes a message in the manner of fmt.Print when tracing is on.
func Log(v ...any) {
	out.mu.RLock()
	defer out.mu.RUnlock()

	if out.on && out.logger != nil {
		out.logger.Print(v...)
	}
}

// Logf writes a formatted message when tracing is on.
func Logf(format string, v ...any) {
	out.mu.RLock()
	defer out.mu.RUnlock()

	if out.on && out.logger != nil {
		out.logger.Printf(format, v...)
	}
}

// Enabled reports whether tracing is on.
func Enabled() bool {
	out.mu.RLock()
	defer out.mu.RUnlock()
	return out.on
}

func userLogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, LogDirName, LogFileName), nil
}

// GetLogPath returns where the trace is written, for surfacing in demo UIs.
func GetLogPath() (string, error) {
	return getLogPath()
}
