// Package render turns the markdown digest into the output formats offered by the CLI.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
)

// Format selects how a digest is written.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatTerminal Format = "terminal"
)

const defaultWidth = 80

// ParseFormat accepts the names used on the command line.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatMarkdown, FormatHTML, FormatTerminal:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	case "term", "tty":
		return FormatTerminal, nil
	default:
		return "", fmt.Errorf("unknown output format %q", name)
	}
}

// Options tune terminal rendering.
type Options struct {
	// Style is a glamour style name; "auto" or empty picks one from the terminal.
	Style string
	Width int
}

// Digest renders markdown in the requested format.
func Digest(markdown string, format Format, opts Options) (string, error) {
	switch format {
	case FormatMarkdown, "":
		return markdown, nil
	case FormatHTML:
		return HTML(markdown)
	case FormatTerminal:
		return Terminal(markdown, opts)
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

// HTML converts markdown to an HTML fragment.
func HTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}

// Terminal styles markdown for display in a terminal.
func Terminal(markdown string, opts Options) (string, error) {
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}

	style := glamour.WithAutoStyle()
	if opts.Style != "" && opts.Style != "auto" {
		style = glamour.WithStylePath(opts.Style)
	}

	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("terminal renderer: %w", err)
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render terminal: %w", err)
	}
	return out, nil
}
