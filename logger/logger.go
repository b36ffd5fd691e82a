package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
)

type logger struct {
	mu     sync.Mutex
	out    io.Writer
	closer io.Closer
	level  slog.Level
}

type logMessage struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"additional_info,omitempty"`
}

// Output is discarded until Configure or SetOutput is called.
var logInstance = &logger{level: slog.LevelInfo, out: io.Discard}

func (l *logger) log(level slog.Level, msg string, data map[string]any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	logData, err := json.Marshal(logMessage{
		Timestamp: time.Now().Format(time.RFC3339),
		Level:     level.String(),
		Message:   msg,
		Data:      data,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error marshaling log message:", err)
		return
	}

	logData = append(logData, '\n')
	_, _ = l.out.Write(logData)
}

func (l *logger) setOutput(w io.Writer, c io.Closer) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closer != nil {
		if err := l.closer.Close(); err != nil {
			return err
		}
	}

	l.out = w
	l.closer = c
	return nil
}

func (l *logger) SetLevel(level slog.Level) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.level = level
}

// Configure sends log output to daily rotated files under dir, linked as app.log.
func Configure(dir string) error {
	if dir == "" {
		dir = os.Getenv("GALAPLATE_LOGS_DIR")
	}
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = filepath.Join(cwd, "storage", "logs")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	rl, err := rotatelogs.New(
		filepath.Join(dir, "app.%Y-%m-%d.log"),
		rotatelogs.WithLinkName(filepath.Join(dir, "app.log")),
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize rotatelogs: %w", err)
	}

	return logInstance.setOutput(rl, rl)
}

// SetOutput replaces the destination. Tests use it with a bytes.Buffer.
func SetOutput(w io.Writer) error {
	return logInstance.setOutput(w, nil)
}

func SetLevel(level slog.Level) {
	logInstance.SetLevel(level)
}

func first(data []map[string]any) map[string]any {
	if len(data) > 0 {
		return data[0]
	}
	return nil
}

func Debug(msg string, data ...map[string]any) {
	logInstance.log(slog.LevelDebug, msg, first(data))
}

func Info(msg string, data ...map[string]any) {
	logInstance.log(slog.LevelInfo, msg, first(data))
}

func Warn(msg string, data ...map[string]any) {
	logInstance.log(slog.LevelWarn, msg, first(data))
}

func Error(msg string, data ...map[string]any) {
	logInstance.log(slog.LevelError, msg, first(data))
}

// Fatal logs at error level, prints the details to stderr and exits.
func Fatal(msg string, data ...map[string]any) {
	logData := first(data)
	logInstance.log(slog.LevelError, msg, logData)

	fmt.Fprintf(os.Stderr, "FATAL ERROR: %s\n", msg)
	if len(logData) > 0 {
		fmt.Fprintf(os.Stderr, "📋 Details:\n")
		for key, value := range logData {
			fmt.Fprintf(os.Stderr, "   %s: %v\n", key, value)
		}
	}

	os.Exit(1)
}

func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
