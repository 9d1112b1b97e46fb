// invocation.go parses one concrete directive call from a document line.
package preprocess

import "strings"

// Invocation is a parsed directive call: its name, positional arguments, and
// named key=value arguments. Invocations are parsed fresh per matched line
// and never persisted.
type Invocation struct {
	Name       string
	Positional []string
	Named      map[string]string
}

// ParseInvocation parses the inner text of [[name, arg1, key=val]] into an
// Invocation. Tokens without '=' are positional; key=value tokens are named.
// Empty keys, empty values, and repeated keys are errors.
func ParseInvocation(inner, where string) (Invocation, error) {
	parts, err := SplitList(inner, where)
	if err != nil {
		return Invocation{}, err
	}

	name := strings.TrimSpace(parts[0])
	if name == "" {
		return Invocation{}, lineErrorf(where, "empty directive name in [[%s]]", inner)
	}

	inv := Invocation{Name: name, Named: make(map[string]string)}

	for _, raw := range parts[1:] {
		k, v, isNamed := strings.Cut(raw, "=")
		if !isNamed {
			inv.Positional = append(inv.Positional, raw)
			continue
		}

		k = strings.TrimSpace(k)
		v = strings.TrimSpace(v)
		if k == "" {
			return Invocation{}, lineErrorf(where, "empty named-arg key in [[%s]]", inner)
		}
		if v == "" {
			return Invocation{}, lineErrorf(where, "empty value for named arg %q in [[%s]]", k, inner)
		}
		if _, dup := inv.Named[k]; dup {
			return Invocation{}, lineErrorf(where, "duplicate named arg %q in [[%s]]", k, inner)
		}
		inv.Named[k] = v
	}

	return inv, nil
}
