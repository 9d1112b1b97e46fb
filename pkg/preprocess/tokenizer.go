// tokenizer.go implements the comma-separated, quote-aware list splitter
// shared by signature and invocation parsing.
package preprocess

import "strings"

// SplitList splits a comma-separated list into trimmed, non-empty tokens.
//
// Commas separate tokens except inside double-quoted spans. Inside quotes,
// \" yields a literal quote and \\ a literal backslash; a backslash followed
// by any other character is emitted as the two-character sequence unchanged.
// An unterminated quoted span and a token that trims to empty are errors.
//
// Both the signature parser and the invocation parser use this splitter, so
// authors get identical quoting semantics in config and in documents.
func SplitList(text, where string) ([]string, error) {
	var (
		tokens  []string
		buf     strings.Builder
		inQuote bool
		escaped bool
	)

	flush := func() error {
		tok := strings.TrimSpace(buf.String())
		if tok == "" {
			return lineErrorf(where, "empty token in comma-separated list")
		}
		tokens = append(tokens, tok)
		buf.Reset()
		return nil
	}

	for _, ch := range text {
		if inQuote {
			if escaped {
				if ch != '"' && ch != '\\' {
					buf.WriteByte('\\')
				}
				buf.WriteRune(ch)
				escaped = false
				continue
			}
			switch ch {
			case '\\':
				escaped = true
			case '"':
				inQuote = false
			default:
				buf.WriteRune(ch)
			}
			continue
		}

		switch ch {
		case '"':
			inQuote = true
		case ',':
			if err := flush(); err != nil {
				return nil, err
			}
		default:
			buf.WriteRune(ch)
		}
	}

	// A trailing lone backslash has nothing to escape; keep it literally.
	if escaped {
		buf.WriteByte('\\')
	}

	if inQuote {
		return nil, lineErrorf(where, "unterminated double quote in list")
	}

	if err := flush(); err != nil {
		return nil, err
	}
	return tokens, nil
}
