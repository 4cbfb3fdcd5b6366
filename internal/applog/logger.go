// Package applog is planit's logging facade: console output always goes
// through zap's console encoder, and a per-session file sink is created
// lazily — on the first message that actually targets it — under the
// configured log directory, named with a random session id so concurrent
// runs never collide.
package applog

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Target selects which sinks a given message is written to.
type Target int

const (
	ConsoleOnly Target = iota
	ConsoleAndFile
	FileOnly
)

// Logger wraps a console zap.Logger and a lazily-created file zap.Logger.
type Logger struct {
	console *zap.Logger

	mu              sync.Mutex
	logDir          string
	fileLogger      *zap.Logger
	fileAttempted   bool
	fileEnabled     bool
	sessionLogPath  string
}

// New builds a Logger that writes to the console immediately; no file is
// touched until SetLogDir has been called and a file-targeted message is
// logged.
func New() *Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	encoder := zapcore.NewConsoleEncoder(cfg)
	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), zapcore.DebugLevel)
	return &Logger{console: zap.New(core), fileEnabled: true}
}

// SetLogDir sets where the session log file will be created. It has no
// effect once the file sink has already been attempted.
func (l *Logger) SetLogDir(dir string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fileAttempted {
		return
	}
	l.logDir = dir
}

// SetFileLoggingEnabled toggles whether file-targeted messages are also
// written to disk.
func (l *Logger) SetFileLoggingEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fileEnabled = enabled
}

func (l *Logger) FileLoggingEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fileEnabled
}

// LogPath returns the session log file's path, if one has been created.
func (l *Logger) LogPath() (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.sessionLogPath == "" {
		return "", false
	}
	return l.sessionLogPath, true
}

// ensureFileSink tries, at most once, to create the file sink. Failure is
// reported to stderr and the logger continues console-only.
func (l *Logger) ensureFileSink() *zap.Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fileAttempted {
		return l.fileLogger
	}
	l.fileAttempted = true

	if l.logDir == "" {
		return nil
	}
	if err := os.MkdirAll(l.logDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not create log directory %s: %v\n", l.logDir, err)
		return nil
	}
	path := filepath.Join(l.logDir, fmt.Sprintf("session-%s.log", uuid.NewString()))
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not create log file %s: %v\n", path, err)
		return nil
	}
	cfg := zap.NewProductionEncoderConfig()
	encoder := zapcore.NewJSONEncoder(cfg)
	core := zapcore.NewCore(encoder, zapcore.AddSync(f), zapcore.DebugLevel)
	l.fileLogger = zap.New(core)
	l.sessionLogPath = path
	return l.fileLogger
}

func (l *Logger) log(level zapcore.Level, message string, target Target) {
	if target != FileOnly {
		switch level {
		case zapcore.InfoLevel:
			l.console.Info(message)
		case zapcore.WarnLevel:
			l.console.Warn(message)
		default:
			l.console.Error(message)
		}
	}
	if target == ConsoleOnly {
		return
	}
	if !l.FileLoggingEnabled() {
		return
	}
	if fl := l.ensureFileSink(); fl != nil {
		switch level {
		case zapcore.InfoLevel:
			fl.Info(message)
		case zapcore.WarnLevel:
			fl.Warn(message)
		default:
			fl.Error(message)
		}
	}
}

func (l *Logger) Info(message string, target Target)  { l.log(zapcore.InfoLevel, message, target) }
func (l *Logger) Warn(message string, target Target)  { l.log(zapcore.WarnLevel, message, target) }
func (l *Logger) Error(message string, target Target) { l.log(zapcore.ErrorLevel, message, target) }

// Sync flushes any buffered log entries.
func (l *Logger) Sync() {
	_ = l.console.Sync()
	l.mu.Lock()
	fl := l.fileLogger
	l.mu.Unlock()
	if fl != nil {
		_ = fl.Sync()
	}
}
