// Package render converts preprocessed Markdown into standalone HTML pages.
package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// mdParser is a pre-configured goldmark instance. GFM covers tables, task
// lists, strikethrough, and linkify; the Typographer handles smart quotes and
// dashes. Raw HTML must pass through because the preprocessor emits literal
// <section> page markers.
var mdParser = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Typographer,
		extension.Footnote,
		extension.DefinitionList,
	),
	goldmark.WithParserOptions(
		parser.WithAttribute(),
	),
	goldmark.WithRendererOptions(
		html.WithUnsafe(),
	),
)

// atxHeading matches an ATX heading line, capturing its text.
var atxHeading = regexp.MustCompile(`^#+\s+(.*)$`)

// trailingHashes matches optional closing hashes on an ATX heading.
var trailingHashes = regexp.MustCompile(`\s+#+\s*$`)

// Markdown renders Markdown text to an HTML body fragment.
func Markdown(text string) (string, error) {
	var buf bytes.Buffer
	if err := mdParser.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// TitleFromMarkdown returns the text of the first ATX heading, or fallback if
// the document has none.
func TitleFromMarkdown(text, fallback string) string {
	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)
		if !strings.HasPrefix(stripped, "#") {
			continue
		}

		m := atxHeading.FindStringSubmatch(stripped)
		if m == nil {
			continue
		}

		heading := strings.TrimSpace(trailingHashes.ReplaceAllString(m[1], ""))
		if heading != "" {
			return heading
		}
	}
	return fallback
}

// File renders one Markdown file to an HTML file under buildDir, wrapping the
// body in the document shell template. Returns the output path.
func File(mdPath, buildDir, cssHref, jsHref, templatePath string) (string, error) {
	raw, err := os.ReadFile(mdPath)
	if err != nil {
		return "", fmt.Errorf("read markdown file: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(mdPath), filepath.Ext(mdPath))
	outPath := filepath.Join(buildDir, name+".html")

	text := string(raw)
	body, err := Markdown(text)
	if err != nil {
		return "", err
	}
	title := TitleFromMarkdown(text, name)

	full, err := WrapDocument(body, title, cssHref, jsHref, templatePath)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(buildDir, 0o755); err != nil {
		return "", fmt.Errorf("create build directory: %w", err)
	}
	if err := os.WriteFile(outPath, []byte(full), 0o644); err != nil {
		return "", fmt.Errorf("write html file: %w", err)
	}
	return outPath, nil
}
