package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
)

var globalLogger = NewDefault()

func init() {
	configureFromEnv()
}

// configureFromEnv applies LOG_LEVEL and LOG_FORMAT; bad values are ignored
func configureFromEnv() {
	if level, err := ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		globalLogger.SetLevel(level)
	}
	if format, err := ParseFormat(os.Getenv("LOG_FORMAT")); err == nil {
		globalLogger.SetFormat(format)
	}
}

// ParseLevel parses a log level name such as "debug" or "WARNING"
func ParseLevel(level string) (LogLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	case "FATAL":
		return FATAL, nil
	default:
		return INFO, fmt.Errorf("unknown log level %q", level)
	}
}

// ParseFormat parses "json" or "text"
func ParseFormat(format string) (LogFormat, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return JSONFormat, nil
	case "text":
		return TextFormat, nil
	default:
		return JSONFormat, fmt.Errorf("unknown log format %q", format)
	}
}

// Configure sets the global level and format. Component loggers created
// earlier follow the change. A nil output leaves the current writer.
func Configure(level LogLevel, format LogFormat, output io.Writer) {
	globalLogger.SetLevel(level)
	globalLogger.SetFormat(format)
	if output != nil {
		globalLogger.SetOutput(output)
	}
}

// GetGlobalLogger returns the global logger instance
func GetGlobalLogger() *Logger {
	return globalLogger
}

// WithComponent returns a component logger backed by the global sink
func WithComponent(component string) *Logger {
	return globalLogger.WithComponent(component)
}

// Debug logs a debug message using the global logger
func Debug(message string, fields ...map[string]interface{}) {
	globalLogger.log(DEBUG, message, first(fields), nil)
}

// Info logs an info message using the global logger
func Info(message string, fields ...map[string]interface{}) {
	globalLogger.log(INFO, message, first(fields), nil)
}

// Warn logs a warning message using the global logger
func Warn(message string, fields ...map[string]interface{}) {
	globalLogger.log(WARN, message, first(fields), nil)
}

// Error logs an error message using the global logger
func Error(message string, err error, fields ...map[string]interface{}) {
	globalLogger.log(ERROR, message, first(fields), err)
}

// Fatal logs a fatal message using the global logger and exits
func Fatal(message string, err error, fields ...map[string]interface{}) {
	globalLogger.log(FATAL, message, first(fields), err)
}

// Infof logs a formatted info message using the global logger
func Infof(format string, args ...interface{}) {
	globalLogger.log(INFO, fmt.Sprintf(format, args...), nil, nil)
}
