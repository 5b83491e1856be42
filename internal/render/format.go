package render

import (
	"fmt"
	"io"
	"strings"
)

// Format names an output encoding.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "md"
	FormatJSON     Format = "json"
	FormatHTML     Format = "html"
)

// ParseFormat accepts a format name or a common alias.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt":
		return FormatText, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "html", "htm":
		return FormatHTML, nil
	}
	return "", fmt.Errorf("render.ParseFormat: unknown format %q", s)
}

// Ext is the file extension for the format.
func (f Format) Ext() string {
	if f == FormatText {
		return "txt"
	}
	return string(f)
}

// Write renders r to w in format f. HTML output is the static printable page.
func Write(w io.Writer, r *Report, f Format) error {
	switch f {
	case FormatText:
		_, err := io.WriteString(w, Text(r))
		return err
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(r))
		return err
	case FormatJSON:
		data, err := JSON(r)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case FormatHTML:
		return HTML(w, r, HTMLOptions{})
	}
	return fmt.Errorf("render.Write: unknown format %q", f)
}
