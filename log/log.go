// Package log provides the structured logger used by betterenum.
//
// Lines look like
//
//	2025-12-06T10:45:00 [WARN] [registry] no enum instances declared type=*main.Status
//
// and are written to stderr at WARN and above unless redirected. Every line is
// also published to subscribers, which lets callers observe registration
// warnings programmatically.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/zjrosen/betterenum/internal/pubsub"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Category groups related log messages.
type Category string

const (
	CatRegistry Category = "registry" // registration and partition lifecycle
	CatTable    Category = "table"    // declarative YAML tables
)

// Topic is the pubsub topic every entry is published on.
const Topic pubsub.Topic = "log"

// Entry is one structured log line.
type Entry struct {
	Time     time.Time
	Level    Level
	Category Category
	Message  string
	Fields   []any
}

// String renders the entry in the line format written to the output.
func (e Entry) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s] [%s] %s", e.Time.Format("2006-01-02T15:04:05"), e.Level, e.Category, e.Message)
	for i := 0; i+1 < len(e.Fields); i += 2 {
		fmt.Fprintf(&sb, " %v=%v", e.Fields[i], e.Fields[i+1])
	}
	if len(e.Fields)%2 != 0 {
		fmt.Fprintf(&sb, " %v=<missing>", e.Fields[len(e.Fields)-1])
	}
	return sb.String()
}

// Event is a published log entry.
type Event = pubsub.Event[Entry]

// Listener pulls published entries one at a time.
type Listener = pubsub.Listener[Entry]

// Logger writes structured entries to an io.Writer and a broker.
type Logger struct {
	mu       sync.Mutex
	writer   io.Writer
	enabled  bool
	minLevel Level
	broker   *pubsub.Broker[Entry]
}

// New creates an enabled logger writing to w at LevelWarn and above.
// A nil w disables writing but entries are still published.
func New(w io.Writer) *Logger {
	return &Logger{
		writer:   w,
		enabled:  true,
		minLevel: LevelWarn,
		broker:   pubsub.NewBroker[Entry](),
	}
}

var defaultLogger = New(os.Stderr)

// Default returns the package logger.
func Default() *Logger { return defaultLogger }

// SetOutput redirects the package logger. It returns the previous writer.
func SetOutput(w io.Writer) io.Writer { return defaultLogger.SetOutput(w) }

// SetEnabled toggles the package logger on or off.
func SetEnabled(enabled bool) { defaultLogger.SetEnabled(enabled) }

// SetMinLevel sets the minimum level of the package logger.
func SetMinLevel(level Level) { defaultLogger.SetMinLevel(level) }

// Subscribe streams entries from the package logger until ctx is done.
func Subscribe(ctx context.Context) <-chan Event { return defaultLogger.Subscribe(ctx) }

// Listen returns a pull listener on the package logger until ctx is done.
func Listen(ctx context.Context) *Listener { return defaultLogger.Listen(ctx) }

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	defaultLogger.Log(LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	defaultLogger.Log(LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	defaultLogger.Log(LevelWarn, cat, msg, fields...)
}

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) {
	defaultLogger.Log(LevelError, cat, msg, fields...)
}

// ErrorErr logs msg at error level with err attached as the "error" field.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	defaultLogger.ErrorErr(cat, msg, err, fields...)
}

// SetOutput replaces the writer and returns the previous one.
func (l *Logger) SetOutput(w io.Writer) io.Writer {
	l.mu.Lock()
	defer l.mu.Unlock()
	prev := l.writer
	l.writer = w
	return prev
}

// SetEnabled toggles logging on/off.
func (l *Logger) SetEnabled(enabled bool) {
	l.mu.Lock()
	l.enabled = enabled
	l.mu.Unlock()
}

// SetMinLevel sets the minimum level that is written and published.
func (l *Logger) SetMinLevel(level Level) {
	l.mu.Lock()
	l.minLevel = level
	l.mu.Unlock()
}

// Subscribe streams entries until ctx is done.
func (l *Logger) Subscribe(ctx context.Context) <-chan Event {
	return l.broker.Subscribe(ctx)
}

// Listen returns a pull listener that receives entries until ctx is done.
func (l *Logger) Listen(ctx context.Context) *Listener {
	return pubsub.NewListener(ctx, l.broker)
}

// ErrorErr logs an error with the error value.
func (l *Logger) ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	l.Log(LevelError, cat, msg, fields...)
}

// Log records msg with key/value fields. An odd trailing key is rendered as
// key=<missing>.
func (l *Logger) Log(level Level, cat Category, msg string, fields ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled || level < l.minLevel {
		return
	}

	e := Entry{
		Time:     time.Now(),
		Level:    level,
		Category: cat,
		Message:  msg,
		Fields:   fields,
	}
	if l.writer != nil {
		_, _ = io.WriteString(l.writer, e.String()+"\n")
	}
	l.broker.Publish(Topic, e)
}
