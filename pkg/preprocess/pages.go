// pages.go wraps document content into numbered page sections.
package preprocess

import (
	"strconv"
	"strings"
)

// PageBreak is the reserved page-break token. A line that is exactly this
// token (modulo surrounding whitespace) closes the current page section and
// opens the next.
const PageBreak = "[[page]]"

// Paginate wraps the document into numbered <section class="page"> blocks,
// starting at page 1. Section markers are always separated from content by
// blank lines so a block-oriented Markdown renderer treats them as standalone
// HTML blocks. The final section is always closed. This pass has no error
// conditions.
//
// Paginate is not idempotent: re-running it on its own output nests a fresh
// set of sections around the already-sectioned text. The build pipeline
// applies it exactly once, after directive expansion and substitution.
func Paginate(text string) string {
	var out []string
	page := 1

	openSection := func() {
		out = append(out, `<section class="page" data-page="`+strconv.Itoa(page)+`">`, "")
	}

	openSection()

	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		if strings.TrimSpace(line) == PageBreak {
			out = append(out, "", "</section>", "")
			page++
			openSection()
			continue
		}
		out = append(out, line)
	}

	out = append(out, "", "</section>")
	return strings.Join(out, "\n") + "\n"
}
