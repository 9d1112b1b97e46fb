package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdown_Basic(t *testing.T) {
	out, err := Markdown("# Heading\n\nSome *text*.\n")
	require.NoError(t, err)
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "<em>text</em>")
}

func TestMarkdown_GFMTable(t *testing.T) {
	out, err := Markdown("| a | b |\n|---|---|\n| 1 | 2 |\n")
	require.NoError(t, err)
	assert.Contains(t, out, "<table>")
}

func TestMarkdown_RawHTMLPassesThrough(t *testing.T) {
	// Page section markers emitted by the preprocessor must survive
	// rendering as literal HTML.
	out, err := Markdown("<section class=\"page\" data-page=\"1\">\n\ntext\n\n</section>\n")
	require.NoError(t, err)
	assert.Contains(t, out, `<section class="page" data-page="1">`)
	assert.Contains(t, out, "</section>")
}

func TestTitleFromMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fallback string
		want     string
	}{
		{"first heading", "# My Title\n\ntext", "page", "My Title"},
		{"skips body text", "intro\n\n## Section Two\n", "page", "Section Two"},
		{"closing hashes stripped", "# Title ##\n", "page", "Title"},
		{"hash without space ignored", "#nospace\n# Real\n", "page", "Real"},
		{"no heading falls back", "just text\n", "page", "page"},
		{"empty input falls back", "", "page", "page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleFromMarkdown(tt.input, tt.fallback))
		})
	}
}

func TestFile_RendersToBuildDir(t *testing.T) {
	dir := t.TempDir()
	buildDir := filepath.Join(dir, "out")

	mdPath := filepath.Join(dir, "page.md")
	require.NoError(t, os.WriteFile(mdPath, []byte("# Hello\n\nbody text\n"), 0o644))

	tmplPath := filepath.Join(dir, "shell.html")
	tmpl := "<html><head><title>{{title}}</title>" +
		"<link href=\"{{css}}\"/><script src=\"{{dev_js}}\"></script></head>" +
		"<body>{{body}}</body></html>"
	require.NoError(t, os.WriteFile(tmplPath, []byte(tmpl), 0o644))

	outPath, err := File(mdPath, buildDir, "style.css", "reload.js", tmplPath)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(buildDir, "page.html"), outPath)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, "<title>Hello</title>")
	assert.Contains(t, html, `href="style.css"`)
	assert.Contains(t, html, "body text")
}

func TestFile_MissingSource(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "absent.md"), t.TempDir(), "c", "j", "t.html")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read markdown file")
}
