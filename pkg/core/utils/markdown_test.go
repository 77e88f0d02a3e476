package utils

import (
	"strings"
	"testing"
)

func TestMarkdownToHTML(t *testing.T) {
	html, err := MarkdownToHTML("# Returns\n\nMOIC of **2.0x**.")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(html, "<h1>") {
		t.Errorf("Expected a rendered heading, got %s", html)
	}
	if !strings.Contains(html, "<strong>2.0x</strong>") {
		t.Errorf("Expected bold emphasis, got %s", html)
	}
}

func TestMarkdownToHTMLTables(t *testing.T) {
	md := "| Year | FCF |\n|------|-----|\n| 1 | 29.6 |\n"

	html, err := MarkdownToHTML(md)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(html, "<table>") {
		t.Errorf("Expected pipe table rendered as <table>, got %s", html)
	}
}

func TestValidateMarkdown(t *testing.T) {
	if !ValidateMarkdown("## Debt Schedule\n\n- tranche one\n") {
		t.Errorf("Expected valid markdown to pass")
	}
}
