package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// DescriptionHTML converts a markdown chart description to HTML
func DescriptionHTML(description string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(description), &buf); err != nil {
		return "", fmt.Errorf("failed to convert description markdown: %w", err)
	}
	return buf.String(), nil
}

// WithDescription inserts the rendered description at the top of the page body
func WithDescription(page []byte, description string) ([]byte, error) {
	if description == "" {
		return page, nil
	}
	body, err := DescriptionHTML(description)
	if err != nil {
		return nil, err
	}
	block := []byte(fmt.Sprintf("\n<div class=\"chart-description\">\n%s</div>\n", body))

	marker := []byte("<body>")
	at := bytes.Index(page, marker)
	if at < 0 {
		return append(block, page...), nil
	}
	at += len(marker)

	out := make([]byte, 0, len(page)+len(block))
	out = append(out, page[:at]...)
	out = append(out, block...)
	return append(out, page[at:]...), nil
}
