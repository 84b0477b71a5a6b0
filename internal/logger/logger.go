package logger

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fatih/color"
)

var (
	infoColor    = color.New(color.FgBlue)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	debugColor   = color.New(color.FgCyan)
	grayColor    = color.New(color.FgHiBlack)
)

func stamp() string {
	return time.Now().Format("15:04:05")
}

// Info logs general information (blue).
func Info(format string, args ...interface{}) {
	grayColor.Printf("[%s] ", stamp())
	infoColor.Printf(format+"\n", args...)
}

// Success logs a success (green).
func Success(format string, args ...interface{}) {
	grayColor.Printf("[%s] ", stamp())
	successColor.Printf("✓ "+format+"\n", args...)
}

// Warning logs a warning (yellow).
func Warning(format string, args ...interface{}) {
	grayColor.Printf("[%s] ", stamp())
	warnColor.Printf("⚠ "+format+"\n", args...)
}

// Error logs an error (red).
func Error(format string, args ...interface{}) {
	grayColor.Printf("[%s] ", stamp())
	errorColor.Printf("✗ "+format+"\n", args...)
}

// Debug logs a debug message (cyan).
func Debug(format string, args ...interface{}) {
	grayColor.Printf("[%s] ", stamp())
	debugColor.Printf("DEBUG: "+format+"\n", args...)
}

// Request logs one HTTP request with its status and duration.
func Request(method, path string, statusCode int, duration time.Duration) {
	var statusColor *color.Color
	switch {
	case statusCode < http.StatusMultipleChoices:
		statusColor = successColor
	case statusCode < http.StatusBadRequest:
		statusColor = debugColor
	case statusCode < http.StatusInternalServerError:
		statusColor = warnColor
	default:
		statusColor = errorColor
	}

	var durationStr string
	switch {
	case duration < time.Millisecond:
		durationStr = fmt.Sprintf("%dµs", duration.Microseconds())
	case duration < time.Second:
		durationStr = fmt.Sprintf("%dms", duration.Milliseconds())
	default:
		durationStr = fmt.Sprintf("%.2fs", duration.Seconds())
	}

	grayColor.Printf("[%s] ", stamp())
	fmt.Printf("%-6s %-40s ", method, path)
	statusColor.Printf("[%d] ", statusCode)
	grayColor.Printf("(%s)\n", durationStr)
}
