// substitute.go replaces ${identifier} placeholders in template bodies.
package preprocess

import (
	"regexp"
	"sort"
	"strings"
)

// placeholderPattern matches ${identifier} where identifier is a letter or
// underscore followed by letters, digits, or underscores. Text not matching
// this grammar (a lone '$', malformed braces) passes through unchanged.
var placeholderPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// substitutePlaceholders substitutes every placeholder in template using the
// resolved mapping. Placeholders whose identifier is absent from the mapping
// are collected and reported together in a single error, listing all
// offending names, rather than failing on the first one.
func substitutePlaceholders(template string, values map[string]string, where string) (string, error) {
	unknown := make(map[string]bool)

	out := placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := match[2 : len(match)-1]
		if v, ok := values[name]; ok {
			return v
		}
		unknown[name] = true
		return match
	})

	if len(unknown) > 0 {
		names := make([]string, 0, len(unknown))
		for name := range unknown {
			names = append(names, name)
		}
		sort.Strings(names)
		return "", lineErrorf(where, "template references unknown placeholder(s): %s", strings.Join(names, ", "))
	}

	return out, nil
}
