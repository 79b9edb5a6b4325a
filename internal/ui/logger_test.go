package ui

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleLogger_Levels(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected []string
	}{
		{name: "info hides debug", level: "info", expected: []string{"INFO", "WARN", "ERROR"}},
		{name: "warn", level: "warn", expected: []string{"WARN", "ERROR"}},
		{name: "trace shows everything", level: "TRACE", expected: []string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR"}},
		{name: "unknown falls back to info", level: "loud", expected: []string{"INFO", "WARN", "ERROR"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewConsoleLogger(&buf, tt.level)

			logger.LogTrace("m")
			logger.LogDebug("m")
			logger.LogInfo("m")
			logger.LogWarn("m")
			logger.LogError("m")

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			assert.Len(t, lines, len(tt.expected))
			for i, level := range tt.expected {
				assert.Contains(t, lines[i], "["+level+"]")
			}
		})
	}
}

func TestConsoleLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	NewConsoleLogger(&buf, "info").LogInfo("Basedir:  ./target/")

	assert.Regexp(t, regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] \[INFO\] Basedir:  \./target/\n$`), buf.String())
}

func TestConsoleLogger_NilWriter(t *testing.T) {
	assert.NotPanics(t, func() {
		NewConsoleLogger(nil, "trace").LogError("dropped")
	})
}
