package log

import (
	"encoding/json"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is a lightweight structured logger. Fields attached via WithField /
// WithFields are JSON-encoded and appended to the rendered line. A Logger is
// immutable: the With* helpers return derived instances.
type Logger struct {
	fields map[string]any
	std    *stdlog.Logger
}

// GlobalLogger is the process-wide logger set up by SetupLogger.
var GlobalLogger *Logger

var (
	setupOnce sync.Once

	appLogger     *Logger
	discordLogger *Logger
	errLogger     *Logger

	rotators []*lumberjack.Logger
)

// SetupLogger initializes the global and category loggers. Each category
// writes to its own rotated file under dir plus the matching standard stream.
// It is idempotent; only the first call's dir takes effect.
func SetupLogger(dir string) error {
	var err error
	setupOnce.Do(func() {
		if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
			err = fmt.Errorf("create log directory: %w", mkErr)
			return
		}

		appLogger = newFileLogger(os.Stdout, filepath.Join(dir, "application.log"))
		discordLogger = newFileLogger(os.Stdout, filepath.Join(dir, "discord.log"))
		errLogger = newFileLogger(os.Stderr, filepath.Join(dir, "error.log"))
		GlobalLogger = appLogger
	})
	return err
}

func newFileLogger(stream io.Writer, path string) *Logger {
	rot := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     28, // days
		Compress:   true,
	}
	rotators = append(rotators, rot)
	return &Logger{
		fields: map[string]any{},
		std:    stdlog.New(io.MultiWriter(stream, rot), "", stdlog.LstdFlags|stdlog.Lmicroseconds),
	}
}

// ApplicationLogger returns the application-category logger.
func ApplicationLogger() *Logger { return ensure(&appLogger) }

// DiscordLogger returns the Discord-traffic logger.
func DiscordLogger() *Logger { return ensure(&discordLogger) }

// ErrorLogger returns the error-stream logger.
func ErrorLogger() *Logger { return ensure(&errLogger) }

// ensure lets short-lived programs and tests log before SetupLogger ran.
func ensure(slot **Logger) *Logger {
	if *slot == nil {
		*slot = &Logger{
			fields: map[string]any{},
			std:    stdlog.New(os.Stderr, "", stdlog.LstdFlags|stdlog.Lmicroseconds),
		}
	}
	return *slot
}

// Sync closes the rotated file writers. Safe to call on shutdown.
func Sync() {
	for _, r := range rotators {
		_ = r.Close()
	}
}

// WithField returns a derived logger carrying one additional field.
func (l *Logger) WithField(key string, value any) *Logger {
	fields := make(map[string]any, len(l.fields)+1)
	for k, v := range l.fields {
		fields[k] = v
	}
	fields[key] = value
	return &Logger{fields: fields, std: l.std}
}

// WithFields returns a derived logger with fields merged in.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	merged := make(map[string]any, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &Logger{fields: merged, std: l.std}
}

// WithError attaches an error as a string field. Nil-safe.
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l
	}
	return l.WithField("error", err.Error())
}

func (l *Logger) buildMessage(level, msg string) string {
	if len(l.fields) == 0 {
		return fmt.Sprintf("[%s] %s", level, msg)
	}
	normalized := make(map[string]any, len(l.fields))
	for k, v := range l.fields {
		normalized[k] = normalizeValue(v)
	}
	b, err := json.Marshal(normalized)
	if err != nil {
		return fmt.Sprintf("[%s] %s | fields=%v", level, msg, normalized)
	}
	return fmt.Sprintf("[%s] %s | %s", level, msg, string(b))
}

// normalizeValue converts values that do not marshal well into stable forms:
// errors become their message, times become RFC3339Nano strings.
func normalizeValue(v any) any {
	switch x := v.(type) {
	case error:
		if x == nil {
			return nil
		}
		return x.Error()
	case time.Time:
		return x.Format(time.RFC3339Nano)
	case fmt.Stringer:
		return x.String()
	default:
		return v
	}
}

func (l *Logger) output(level, msg string) {
	l.std.Println(l.buildMessage(level, msg))
}

func (l *Logger) Debug(msg string) { l.output("DEBUG", msg) }
func (l *Logger) Info(msg string)  { l.output("INFO", msg) }
func (l *Logger) Warn(msg string)  { l.output("WARN", msg) }
func (l *Logger) Error(msg string) { l.output("ERROR", msg) }

func (l *Logger) Debugf(format string, v ...any) { l.output("DEBUG", fmt.Sprintf(format, v...)) }
func (l *Logger) Infof(format string, v ...any)  { l.output("INFO", fmt.Sprintf(format, v...)) }
func (l *Logger) Warnf(format string, v ...any)  { l.output("WARN", fmt.Sprintf(format, v...)) }
func (l *Logger) Errorf(format string, v ...any) { l.output("ERROR", fmt.Sprintf(format, v...)) }

// Fatal logs and exits with a short grace for file writers.
func (l *Logger) Fatal(msg string) {
	l.output("FATAL", msg)
	Sync()
	time.Sleep(10 * time.Millisecond)
	os.Exit(1)
}

func (l *Logger) Fatalf(format string, v ...any) {
	l.Fatal(fmt.Sprintf(format, v...))
}
