// Package render turns a matched file list into the bytes written to the
// output file. There is one Renderer per domain.Format.
package render

import (
	"fmt"
	"runtime"

	"flist/internal/domain"
)

// NewLine is the host platform's line terminator
var NewLine = newLine(runtime.GOOS)

func newLine(goos string) string {
	if goos == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Renderer serializes a file list
type Renderer interface {
	Render(paths []string) ([]byte, error)
}

// For returns the renderer for format. suite is used only by FormatJUnit.
func For(format domain.Format, suite domain.Suite) (Renderer, error) {
	switch format {
	case domain.FormatJSON:
		return JSONRenderer{}, nil
	case domain.FormatText:
		return TextRenderer{}, nil
	case domain.FormatJUnit:
		return JUnitRenderer{Suite: suite}, nil
	default:
		return nil, &domain.ConfigurationError{
			Field: "type",
			Err:   fmt.Errorf("no renderer for %s", format),
		}
	}
}
