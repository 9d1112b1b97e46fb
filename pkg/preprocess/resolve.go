// resolve.go binds an invocation's arguments against a directive signature.
package preprocess

import (
	"sort"
	"strings"
)

// resolveArgs produces the complete name→value mapping for one invocation.
//
// Binding is two-phase: named arguments are applied first (over seeded
// defaults), then positional arguments fill the remaining parameters in
// declared order, skipping any parameter already set by name. This lets
// callers mix styles without a positional argument silently landing in a
// parameter that was already named.
func resolveArgs(rule DirectiveRule, inv Invocation, where string) (map[string]string, error) {
	declared := make(map[string]bool, len(rule.Params))
	for _, p := range rule.Params {
		declared[p.Name] = true
	}

	var unknown []string
	for k := range inv.Named {
		if !declared[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, lineErrorf(where, "unknown named arg(s) for %s: %s", rule.Name, strings.Join(unknown, ", "))
	}

	resolved := make(map[string]string, len(rule.Params))
	assigned := make(map[string]bool, len(rule.Params))

	// Defaults
	for _, p := range rule.Params {
		if !p.Required {
			resolved[p.Name] = p.Default
		}
	}

	// Named overrides
	for k, v := range inv.Named {
		resolved[k] = v
		assigned[k] = true
	}

	// Positional fill, skipping named-assigned params
	posIdx := 0
	for _, p := range rule.Params {
		if posIdx >= len(inv.Positional) {
			break
		}
		if assigned[p.Name] {
			continue
		}
		resolved[p.Name] = inv.Positional[posIdx]
		assigned[p.Name] = true
		posIdx++
	}

	if posIdx < len(inv.Positional) {
		return nil, lineErrorf(where, "too many positional args for %s (got %d, signature has %d)",
			rule.Name, len(inv.Positional), len(rule.Params))
	}

	var missing []string
	for _, p := range rule.Params {
		if p.Required {
			if _, ok := resolved[p.Name]; !ok {
				missing = append(missing, p.Name)
			}
		}
	}
	if len(missing) > 0 {
		return nil, lineErrorf(where, "missing required arg(s) for %s: %s", rule.Name, strings.Join(missing, ", "))
	}

	return resolved, nil
}
