// expand.go drives whole-line directive recognition and expansion.
package preprocess

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// wholeLineDirective matches a line whose entire trimmed content is exactly
// one bracketed directive. Anything else on the line disqualifies it.
var wholeLineDirective = regexp.MustCompile(`^\s*(\[\[[^\]]+\]\])\s*$`)

// Options governs the expander's run-wide error policy. Immutable for one
// run.
type Options struct {
	// ContinueOnError reports per-line errors and keeps going instead of
	// aborting the document on the first one.
	ContinueOnError bool
	// EmbedErrors additionally inserts a visibly marked error block into the
	// output ahead of the offending line. Only effective with
	// ContinueOnError.
	EmbedErrors bool
}

// Expander expands whole-line directives over a document using an immutable
// registry. Report, when non-nil, receives each per-line error that
// ContinueOnError suppresses.
type Expander struct {
	Registry *Registry
	Options  Options
	Report   func(err *LineError)
}

// Expand processes the document line by line and returns the expanded text
// plus the number of per-line errors encountered.
//
// A line is a candidate only if, after trimming, it is exactly one bracketed
// directive. Non-candidate lines and candidates naming an unregistered
// directive pass through unchanged; the latter is intentional so unrelated
// bracket text can coexist with directives. Registered candidates are
// resolved and substituted, with the template's lines spliced in place of the
// directive line. Output ends with a trailing newline iff the input did.
// Expansion is single-pass: expanded template text is never re-scanned.
func (e *Expander) Expand(text, sourcePath string) (string, int, error) {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	out := make([]string, 0, len(lines))
	errCount := 0

	for n, line := range lines {
		m := wholeLineDirective.FindStringSubmatch(line)
		if m == nil {
			out = append(out, line)
			continue
		}

		where := fmt.Sprintf("line %d", n+1)
		if sourcePath != "" {
			where = fmt.Sprintf("%s:%d", sourcePath, n+1)
		}

		expanded, matched, err := e.expandLine(m[1], where)
		if err != nil {
			errCount++

			if !e.Options.ContinueOnError {
				return "", errCount, err
			}

			lerr := asLineError(err, where)
			if e.Report != nil {
				e.Report(lerr)
			}
			if e.Options.EmbedErrors {
				out = append(out, embeddedError(lerr)...)
			}
			out = append(out, line)
			continue
		}
		if !matched {
			out = append(out, line)
			continue
		}

		out = append(out, strings.Split(expanded, "\n")...)
	}

	result := strings.Join(out, "\n")
	if strings.HasSuffix(text, "\n") {
		result += "\n"
	}
	return result, errCount, nil
}

// expandLine expands one candidate directive. matched is false when the
// directive name is not registered.
func (e *Expander) expandLine(directive, where string) (expanded string, matched bool, err error) {
	inner, err := stripBrackets(directive, where)
	if err != nil {
		return "", false, err
	}

	inv, err := ParseInvocation(inner, where)
	if err != nil {
		return "", false, err
	}

	rule, ok := e.Registry.Lookup(inv.Name)
	if !ok {
		return "", false, nil
	}

	values, err := resolveArgs(rule, inv, where)
	if err != nil {
		return "", true, err
	}

	out, err := substitutePlaceholders(rule.Template, values, where)
	if err != nil {
		return "", true, err
	}
	return out, true, nil
}

// asLineError extracts the *LineError from err, wrapping foreign errors so
// downstream formatting always has a location.
func asLineError(err error, where string) *LineError {
	var lerr *LineError
	if errors.As(err, &lerr) {
		return lerr
	}
	return &LineError{Where: where, Msg: err.Error()}
}

// embeddedError renders a per-line error as a Markdown blockquote so it is
// visible in the rendered output. The offending directive line follows it
// unchanged.
func embeddedError(err *LineError) []string {
	oneLine := strings.TrimSpace(strings.Join(strings.Split(err.Msg, "\n"), " "))
	return []string{
		"> **BUILD ERROR**",
		"> **Where:** " + err.Where,
		"> **Message:** " + oneLine,
		"> (directive left unchanged)",
		"",
	}
}
