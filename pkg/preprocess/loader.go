// loader.go builds the directive registry from a line-oriented config file.
package preprocess

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	fenceMarker   = "```"
	includeMarker = "@file:"
	commentMarker = "#"
)

// templateKind tags the three RHS forms a directive config may use. The
// variant is resolved to a plain template string during loading, so nothing
// downstream branches on string prefixes.
type templateKind int

const (
	templateInline templateKind = iota
	templateFenced
	templateIncluded
)

// templateSource is the tagged RHS of one config entry before resolution.
type templateSource struct {
	kind templateKind
	text string // inline or fenced body
	path string // include path, relative to the config file
}

// LoadDirectives reads a directive config file and builds the registry.
// Every configuration error is fatal; a broken directive config indicates a
// broken build definition, not a per-document content problem.
func LoadDirectives(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read directive config: %w", err)
	}
	return ParseDirectives(string(data), path)
}

// ParseDirectives parses directive config text. The path is used for
// diagnostics and as the base for resolving @file: includes.
//
// Non-blank, non-comment lines have the form `LHS = RHS` where LHS is a
// bracketed signature. The RHS is either inline text, a fenced block closed
// by a line exactly equal to the fence marker, or @file:<relative-path>.
// Zero-parameter directives are additionally registered as legacy
// substitution tokens in their literal bracket form.
func ParseDirectives(text, path string) (*Registry, error) {
	reg := &Registry{directives: make(map[string]DirectiveRule)}
	substSeen := make(map[string]bool)
	baseDir := filepath.Dir(path)

	lines := strings.Split(text, "\n")
	i := 0

	for i < len(lines) {
		lineno := i + 1
		line := strings.TrimSpace(lines[i])
		where := fmt.Sprintf("%s:%d", path, lineno)

		if line == "" || strings.HasPrefix(line, commentMarker) {
			i++
			continue
		}

		lhs, rhs, err := splitAssignment(line, where)
		if err != nil {
			return nil, err
		}
		name, params, err := ParseSignature(lhs, where)
		if err != nil {
			return nil, err
		}

		src, next, err := parseRHS(lines, i, rhs, where, lhs)
		if err != nil {
			return nil, err
		}
		i = next

		template, err := src.resolve(baseDir, where, lhs)
		if err != nil {
			return nil, err
		}

		if _, dup := reg.directives[name]; dup {
			return nil, fmt.Errorf("%s: duplicate directive name %q", where, name)
		}
		reg.directives[name] = DirectiveRule{Name: name, Params: params, Template: template}

		// Back-compat: zero-param directives double as literal substitution
		// tokens for the anywhere-in-text pass.
		if len(params) == 0 {
			token := "[[" + name + "]]"
			if substSeen[token] {
				return nil, fmt.Errorf("%s: duplicate token %q", where, token)
			}
			substSeen[token] = true
			reg.substitutions = append(reg.substitutions, SubstitutionRule{Token: token, Replacement: template})
		}
	}

	return reg, nil
}

// splitAssignment splits a config line into its bracketed LHS and raw RHS.
// The LHS must end with ']]' and be followed by '='.
func splitAssignment(line, where string) (lhs, rhs string, err error) {
	end := strings.Index(line, "]]")
	if end == -1 {
		return "", "", fmt.Errorf("%s: expected directive LHS ending with \"]]\": %q", where, line)
	}

	lhs = strings.TrimSpace(line[:end+2])
	rest := strings.TrimLeft(line[end+2:], " \t")

	if !strings.HasPrefix(rest, "=") {
		return "", "", fmt.Errorf("%s: expected '=' after directive LHS: %q", where, line)
	}

	rhs = strings.TrimSpace(rest[1:])
	if rhs == "" {
		return "", "", fmt.Errorf("%s: empty RHS for %q", where, lhs)
	}
	return lhs, rhs, nil
}

// parseRHS classifies the RHS into its tagged form. For fenced blocks it
// consumes subsequent lines verbatim until the closing fence; an unterminated
// fence is fatal, reported at the opening line. Returns the index of the
// first unconsumed line.
func parseRHS(lines []string, i int, rhs, where, lhs string) (templateSource, int, error) {
	switch {
	case strings.HasPrefix(rhs, fenceMarker):
		var block []string
		j := i + 1
		for j < len(lines) && lines[j] != fenceMarker {
			block = append(block, lines[j])
			j++
		}
		if j >= len(lines) {
			return templateSource{}, i, fmt.Errorf("%s: unterminated fenced block for %q (expected closing line %s)", where, lhs, fenceMarker)
		}
		return templateSource{kind: templateFenced, text: strings.Join(block, "\n")}, j + 1, nil

	case strings.HasPrefix(rhs, includeMarker):
		rel := strings.TrimSpace(rhs[len(includeMarker):])
		if rel == "" {
			return templateSource{}, i, fmt.Errorf("%s: %s requires a path for %q", where, includeMarker, lhs)
		}
		return templateSource{kind: templateIncluded, path: rel}, i + 1, nil

	default:
		return templateSource{kind: templateInline, text: rhs}, i + 1, nil
	}
}

// resolve flattens the tagged source into the final template string, reading
// include files relative to the config's directory.
func (s templateSource) resolve(baseDir, where, lhs string) (string, error) {
	if s.kind != templateIncluded {
		return s.text, nil
	}

	incPath := filepath.Join(baseDir, s.path)
	data, err := os.ReadFile(incPath)
	if err != nil {
		return "", fmt.Errorf("%s: include file not found for %q: %w", where, lhs, err)
	}
	return string(data), nil
}
