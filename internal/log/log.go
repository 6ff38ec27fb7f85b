package log

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	initOnce    sync.Once
	initialized atomic.Bool
)

// Setup points the default slog logger at a rotating JSON log file. Only
// the first call has any effect.
func Setup(logFile string, debug bool) {
	initOnce.Do(func() {
		logRotator := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    5,     // Max size in MB
			MaxBackups: 3,     // Number of backups
			MaxAge:     30,    // Days
			Compress:   false, // Enable compression
		}

		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}

		logger := slog.NewJSONHandler(logRotator, &slog.HandlerOptions{
			Level:     level,
			AddSource: true,
		})

		slog.SetDefault(slog.New(logger))
		initialized.Store(true)
	})
}

// Initialized reports whether Setup has configured the log file.
func Initialized() bool {
	return initialized.Load()
}

// RecoverPanic writes a panic report next to the data directory and runs
// cleanup. It must be deferred.
func RecoverPanic(name string, dir string, cleanup func()) {
	if r := recover(); r != nil {
		if Initialized() {
			slog.Error("Recovered from panic", "name", name, "panic", r)
		}
		timestamp := time.Now().Format("20060102-150405")
		filename := filepath.Join(dir, fmt.Sprintf("atelier-panic-%s-%s.log", name, timestamp))

		file, err := os.Create(filename)
		if err == nil {
			defer file.Close()

			fmt.Fprintf(file, "Panic in %s: %v\n\n", name, r)
			fmt.Fprintf(file, "Time: %s\n\n", time.Now().Format(time.RFC3339))
			fmt.Fprintf(file, "Stack Trace:\n%s\n", debug.Stack())
		}

		if cleanup != nil {
			cleanup()
		}
	}
}
