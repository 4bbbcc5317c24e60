package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

var levels = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

type implLogger struct {
	logger *log.Logger
	out    io.Writer
	level  string
	json   bool
}

// New creates a text Logger writing to stdout
func New(level string) Logger {
	return NewWithFormat(level, "text", os.Stdout)
}

// NewWithFormat creates a Logger writing to out. Format is "text" or "json";
// anything else falls back to text.
func NewWithFormat(level, format string, out io.Writer) Logger {
	if out == nil {
		out = os.Stdout
	}
	return &implLogger{
		logger: log.New(out, "", log.LstdFlags),
		out:    out,
		level:  strings.ToLower(level),
		json:   strings.EqualFold(format, "json"),
	}
}

func (l *implLogger) shouldLog(level string) bool {
	currentLevel, ok := levels[l.level]
	if !ok {
		currentLevel = 1 // default to info
	}

	targetLevel, ok := levels[level]
	if !ok {
		return true
	}

	return targetLevel >= currentLevel
}

func (l *implLogger) write(ctx context.Context, level, msg string, args ...interface{}) {
	if !l.shouldLog(level) {
		return
	}
	text := fmt.Sprintf(msg, args...)
	reqID := RequestID(ctx)

	if l.json {
		entry := map[string]string{
			"time":  time.Now().UTC().Format(time.RFC3339),
			"level": level,
			"msg":   text,
		}
		if reqID != "" {
			entry["request_id"] = reqID
		}
		line, err := json.Marshal(entry)
		if err != nil {
			return
		}
		fmt.Fprintln(l.out, string(line))
		return
	}

	prefix := "[" + strings.ToUpper(level) + "] "
	if reqID != "" {
		prefix += "[req=" + reqID + "] "
	}
	l.logger.Print(prefix + text)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "debug", msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "info", msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "warn", msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "error", msg, args...)
}

type nopLogger struct{}

// Nop returns a Logger that discards everything, for tests
func Nop() Logger { return nopLogger{} }

func (nopLogger) Debug(context.Context, string, ...interface{}) {}
func (nopLogger) Info(context.Context, string, ...interface{})  {}
func (nopLogger) Warn(context.Context, string, ...interface{})  {}
func (nopLogger) Error(context.Context, string, ...interface{}) {}
