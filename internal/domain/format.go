package domain

import (
	"fmt"
	"strings"
)

// Format selects how the matched file list is rendered
type Format int

const (
	FormatJSON Format = iota
	FormatText
	FormatJUnit
)

var formatNames = map[Format]string{
	FormatJSON:  "json",
	FormatText:  "text",
	FormatJUnit: "junit",
}

// String returns the configuration name of the format
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// ParseFormat resolves a configured type name ("json", "text" or "junit")
func ParseFormat(name string) (Format, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for format, n := range formatNames {
		if n == normalized {
			return format, nil
		}
	}
	return 0, &ConfigurationError{
		Field: "type",
		Err:   fmt.Errorf("unsupported type %q (want json, text or junit)", name),
	}
}
