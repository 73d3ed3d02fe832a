package renderer

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Terminal renders markdown with styles for the terminal, wrapped at width.
func Terminal(markdown string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create terminal renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// HTML writes markdown as a standalone HTML page. Tables use GitHub
// flavored markdown.
func HTML(w io.Writer, title, markdown string) error {
	var body bytes.Buffer
	gm := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := gm.Convert([]byte(markdown), &body); err != nil {
		return fmt.Errorf("convert markdown: %w", err)
	}
	_, err := fmt.Fprintf(w, htmlPage, html.EscapeString(title), body.String())
	return err
}

const htmlPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; max-width: 60em; margin: auto; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.2em 0.6em; }
</style>
</head>
<body>
%s</body>
</html>
`
