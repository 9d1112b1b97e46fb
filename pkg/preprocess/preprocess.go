// preprocess.go orchestrates the full per-document pipeline:
// expand directives, apply legacy substitutions, paginate.
package preprocess

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

// Pipeline runs the preprocessing passes over documents using one registry.
// The registry is built once per run and treated as read-only; the pipeline
// holds no per-document state, so independent callers could run documents in
// parallel, though the build tool processes them sequentially.
type Pipeline struct {
	Registry *Registry
	Options  Options

	// Report receives per-line errors suppressed by ContinueOnError.
	Report func(err *LineError)
	// Logf, when non-nil, receives progress messages (one per file).
	Logf func(format string, args ...any)
}

// ApplySubstitutions performs the legacy anywhere-in-text replacement of each
// zero-parameter directive's literal bracket token. Trailing whitespace is
// trimmed from the result.
func ApplySubstitutions(text string, rules []SubstitutionRule) string {
	if len(rules) == 0 {
		return text
	}
	for _, rule := range rules {
		text = strings.ReplaceAll(text, rule.Token, rule.Replacement)
	}
	return strings.TrimRightFunc(text, unicode.IsSpace)
}

// Text runs all passes over one in-memory document. sourcePath is used only
// for diagnostics. Returns the processed text and the per-line error count.
func (p *Pipeline) Text(text, sourcePath string) (string, int, error) {
	exp := &Expander{Registry: p.Registry, Options: p.Options, Report: p.Report}

	out, errCount, err := exp.Expand(text, sourcePath)
	if err != nil {
		return "", errCount, err
	}

	out = ApplySubstitutions(out, p.Registry.Substitutions())
	out = Paginate(out)
	return out, errCount, nil
}

// File preprocesses srcPath and writes the result to dstPath, creating parent
// directories as needed. Returns the per-line error count.
func (p *Pipeline) File(srcPath, dstPath string) (int, error) {
	raw, err := os.ReadFile(srcPath)
	if err != nil {
		return 0, fmt.Errorf("read markdown file: %w", err)
	}

	out, errCount, err := p.Text(string(raw), srcPath)
	if err != nil {
		return errCount, err
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return errCount, fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(dstPath, []byte(out), 0o644); err != nil {
		return errCount, fmt.Errorf("write preprocessed file: %w", err)
	}
	return errCount, nil
}

// Dir preprocesses every *.md file in srcDir into dstDir, preserving file
// names. Returns the total per-line error count across all files.
func (p *Pipeline) Dir(srcDir, dstDir string) (int, error) {
	files, err := ListMarkdownFiles(srcDir)
	if err != nil {
		return 0, err
	}
	if len(files) == 0 {
		p.logf("no .md files found in: %s", srcDir)
		return 0, nil
	}

	total := 0
	for _, src := range files {
		dst := filepath.Join(dstDir, filepath.Base(src))
		p.logf("%s -> %s", src, dst)

		n, err := p.File(src, dst)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.Logf != nil {
		p.Logf(format, args...)
	}
}

// ListMarkdownFiles returns the *.md files directly under dir, sorted by
// name.
func ListMarkdownFiles(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("list markdown files: %w", err)
	}
	sort.Strings(files)
	return files, nil
}
