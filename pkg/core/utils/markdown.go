package utils

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// tearSheetMarkdown enables the table extension; the report renderer leans
// on pipe tables heavily.
var tearSheetMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.Table),
)

// ValidateMarkdown checks that the string parses as Markdown. Goldmark is
// very permissive, so this is a basic structural check.
func ValidateMarkdown(input string) bool {
	parser := goldmark.DefaultParser()
	reader := text.NewReader([]byte(input))
	return parser.Parse(reader) != nil
}

// MarkdownToHTML renders Markdown (with table support) to HTML.
func MarkdownToHTML(input string) (string, error) {
	var buf bytes.Buffer
	if err := tearSheetMarkdown.Convert([]byte(input), &buf); err != nil {
		return "", fmt.Errorf("MARKDOWN_RENDER_ERROR: %v", err)
	}
	return buf.String(), nil
}
