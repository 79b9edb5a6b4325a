package render

import "strings"

// TextRenderer writes one path per line
type TextRenderer struct{}

func (TextRenderer) Render(paths []string) ([]byte, error) {
	var sb strings.Builder
	for _, p := range paths {
		sb.WriteString(p)
		sb.WriteString(NewLine)
	}
	return []byte(sb.String()), nil
}
