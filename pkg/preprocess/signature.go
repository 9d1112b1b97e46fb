// signature.go parses a directive's declared parameter list from config.
package preprocess

import "strings"

// stripBrackets removes the outer [[ ]] from a directive and returns the
// trimmed inner text. Used for config signatures and document invocations.
func stripBrackets(directive, where string) (string, error) {
	s := strings.TrimSpace(directive)
	if !strings.HasPrefix(s, "[[") || !strings.HasSuffix(s, "]]") {
		return "", lineErrorf(where, "not a directive: %q", directive)
	}
	inner := strings.TrimSpace(s[2 : len(s)-2])
	if inner == "" {
		return "", lineErrorf(where, "empty directive: %q", directive)
	}
	return inner, nil
}

// ParseSignature parses a bracketed signature like [[name, p1, p2=default]]
// into the directive name and its ordered parameter specification.
//
// A bare token declares a required parameter; token=default declares an
// optional one. No required parameter may follow an optional one, and
// parameter names must be unique within the signature.
func ParseSignature(lhs, where string) (string, []ParamSpec, error) {
	inner, err := stripBrackets(lhs, where)
	if err != nil {
		return "", nil, err
	}

	parts, err := SplitList(inner, where)
	if err != nil {
		return "", nil, err
	}

	name := strings.TrimSpace(parts[0])
	if name == "" {
		return "", nil, lineErrorf(where, "empty directive name in %q", lhs)
	}

	var params []ParamSpec
	seen := make(map[string]bool)
	seenOptional := false

	for _, raw := range parts[1:] {
		if pname, pdefault, hasDefault := strings.Cut(raw, "="); hasDefault {
			pname = strings.TrimSpace(pname)
			pdefault = strings.TrimSpace(pdefault)

			if pname == "" {
				return "", nil, lineErrorf(where, "empty parameter name in %q", lhs)
			}
			if seen[pname] {
				return "", nil, lineErrorf(where, "duplicate parameter %q in %q", pname, lhs)
			}
			if pdefault == "" {
				return "", nil, lineErrorf(where, "empty default for optional parameter %q in %q", pname, lhs)
			}

			seen[pname] = true
			seenOptional = true
			params = append(params, ParamSpec{Name: pname, Default: pdefault})
		} else {
			pname = strings.TrimSpace(raw)
			if pname == "" {
				return "", nil, lineErrorf(where, "empty parameter name in %q", lhs)
			}
			if seen[pname] {
				return "", nil, lineErrorf(where, "duplicate parameter %q in %q", pname, lhs)
			}
			if seenOptional {
				return "", nil, lineErrorf(where, "required parameter %q cannot appear after optional parameters in %q", pname, lhs)
			}

			seen[pname] = true
			params = append(params, ParamSpec{Name: pname, Required: true})
		}
	}

	return name, params, nil
}
