package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

const (
	levelTrace int = iota
	levelDebug
	levelInfo
	levelWarn
	levelError
)

// ConsoleLogger writes leveled, timestamped messages.
// Format: "[HH:MM:SS] [LEVEL] <message>"
type ConsoleLogger struct {
	writer      io.Writer
	level       int
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger writing to writer. A nil writer
// discards everything. Unknown levels fall back to "info".
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		level:       parseLevel(logLevel),
		colorOutput: (writer == os.Stdout || writer == os.Stderr) && !color.NoColor,
	}
}

func parseLevel(level string) int {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

func (cl *ConsoleLogger) LogTrace(message string) { cl.log(levelTrace, "TRACE", message) }
func (cl *ConsoleLogger) LogDebug(message string) { cl.log(levelDebug, "DEBUG", message) }
func (cl *ConsoleLogger) LogInfo(message string) { cl.log(levelInfo, "INFO", message) }
func (cl *ConsoleLogger) LogWarn(message string) { cl.log(levelWarn, "WARN", message) }
func (cl *ConsoleLogger) LogError(message string) { cl.log(levelError, "ERROR", message) }

func (cl *ConsoleLogger) log(level int, name, message string) {
	if cl.writer == nil || level < cl.level {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := time.Now().Format("15:04:05")
	if cl.colorOutput {
		name = levelColor(level).Sprint(name)
	}
	fmt.Fprintf(cl.writer, "[%s] [%s] %s\n", ts, name, message)
}

func levelColor(level int) *color.Color {
	switch level {
	case levelTrace:
		return color.New(color.FgHiBlack)
	case levelDebug:
		return color.New(color.FgCyan)
	case levelWarn:
		return color.New(color.FgYellow)
	case levelError:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgBlue)
	}
}
