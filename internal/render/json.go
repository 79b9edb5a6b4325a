package render

import (
	"encoding/json"
	"fmt"
)

// JSONRenderer writes the paths as a pretty-printed JSON array
type JSONRenderer struct{}

func (JSONRenderer) Render(paths []string) ([]byte, error) {
	if paths == nil {
		paths = []string{}
	}
	data, err := json.MarshalIndent(paths, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal file list: %w", err)
	}
	return data, nil
}
