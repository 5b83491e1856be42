package render

import (
	"encoding/json"
	"fmt"
)

// JSON renders a report as indented JSON with a trailing newline.
func JSON(r *Report) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render.JSON: %w", err)
	}
	return append(data, '\n'), nil
}
