package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

type contextKey string

const contextKeyRequestID contextKey = "request_id"

var (
	debugEnabled atomic.Bool
	out          io.Writer = os.Stdout
)

// SetDebug toggles Debug output.
func SetDebug(enabled bool) {
	debugEnabled.Store(enabled)
}

// SetOutput redirects all log output. Intended for tests.
func SetOutput(w io.Writer) {
	out = w
}

// WithRequestID adds request ID to context for logging
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID, requestID)
}

// RequestID retrieves the request ID stored by WithRequestID.
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(contextKeyRequestID).(string); ok {
		return id
	}
	return ""
}

func formatLog(level string, requestID string, format string, a ...interface{}) string {
	msg := fmt.Sprintf(format, a...)
	if requestID != "" {
		return fmt.Sprintf("[%s] [req_id=%s] %s", level, requestID, msg)
	}
	return fmt.Sprintf("[%s] %s", level, msg)
}

func write(tag func(a ...interface{}) string, label, line string) {
	fmt.Fprintf(out, "%s %s\n", tag(label), line)
}

var (
	infoTag  = color.New(color.FgWhite, color.BgGreen).SprintFunc()
	warnTag  = color.New(color.FgWhite, color.BgYellow).SprintFunc()
	errorTag = color.New(color.FgRed).SprintFunc()
	debugTag = color.New(color.FgCyan).SprintFunc()
)

// Info log information
func Info(format string, a ...interface{}) {
	write(infoTag, "[INFO] ", fmt.Sprintf(format, a...))
}

// InfoWithContext logs information with the request ID if the context carries one.
func InfoWithContext(ctx context.Context, format string, a ...interface{}) {
	write(infoTag, "[INFO] ", formatLog("INFO", RequestID(ctx), format, a...))
}

// Warn log warning
func Warn(format string, a ...interface{}) {
	write(warnTag, "[WARN] ", fmt.Sprintf(format, a...))
}

func WarnWithContext(ctx context.Context, format string, a ...interface{}) {
	write(warnTag, "[WARN] ", formatLog("WARN", RequestID(ctx), format, a...))
}

// Error log error
func Error(format string, a ...interface{}) {
	write(errorTag, "[Error]", fmt.Sprintf(format, a...))
}

func ErrorWithContext(ctx context.Context, format string, a ...interface{}) {
	write(errorTag, "[Error]", formatLog("ERROR", RequestID(ctx), format, a...))
}

// Debug logs only when debug output is enabled.
func Debug(format string, a ...interface{}) {
	if !debugEnabled.Load() {
		return
	}
	write(debugTag, "[DEBUG]", fmt.Sprintf(format, a...))
}

// InfoStruct dumps values in debug mode.
func InfoStruct(a ...interface{}) {
	if !debugEnabled.Load() {
		return
	}
	write(debugTag, "[DEBUG]", spew.Sdump(a...))
}
