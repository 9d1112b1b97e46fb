// template.go wraps rendered HTML bodies in the document shell template.
package render

import (
	"fmt"
	"html"
	"os"
	"strings"
)

// LoadTemplate reads the HTML shell template from disk.
func LoadTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("template file not found: %w", err)
	}
	return string(data), nil
}

// WrapDocument substitutes the shell template's placeholders:
// {{title}} (HTML-escaped), {{css}}, {{dev_js}}, and {{body}}.
func WrapDocument(bodyHTML, title, cssHref, jsHref, templatePath string) (string, error) {
	tmpl, err := LoadTemplate(templatePath)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(cssHref) == "" {
		return "", fmt.Errorf("required setting %q is not set", "css")
	}
	if strings.TrimSpace(jsHref) == "" {
		return "", fmt.Errorf("required setting %q is not set", "dev_js")
	}

	out := tmpl
	out = strings.ReplaceAll(out, "{{title}}", html.EscapeString(title))
	out = strings.ReplaceAll(out, "{{css}}", cssHref)
	out = strings.ReplaceAll(out, "{{dev_js}}", jsHref)
	out = strings.ReplaceAll(out, "{{body}}", bodyHTML)
	return out, nil
}
