// Package preprocess implements the directive expansion engine that turns
// authored Markdown into renderer-ready Markdown.
//
// Authors write bracket directives such as [[greet, World]] on their own
// lines; a line-oriented directive config maps each directive name to a
// parameter signature and a template body. The engine expands directives,
// applies a legacy global token substitution derived from zero-parameter
// directives, and wraps the result into numbered page sections.
package preprocess

// ParamSpec describes one declared parameter of a directive signature.
type ParamSpec struct {
	Name     string
	Required bool
	Default  string // only meaningful when Required is false
}

// DirectiveRule is a registered directive: its name, ordered parameter
// specification, and template body. Template bodies are verbatim text
// containing zero or more ${name} placeholders.
type DirectiveRule struct {
	Name     string
	Params   []ParamSpec
	Template string
}

// SubstitutionRule is the flattened, parameter-free view of a zero-parameter
// directive, used by the legacy anywhere-in-text substitution pass.
type SubstitutionRule struct {
	Token       string // literal bracket form, e.g. "[[hr]]"
	Replacement string
}

// Registry is an immutable mapping from directive name to its rule, built
// once per run by LoadDirectives and read-only thereafter. The zero value is
// an empty registry.
type Registry struct {
	directives    map[string]DirectiveRule
	substitutions []SubstitutionRule
}

// Lookup returns the rule registered under name.
// Returns ok=false if the directive is not registered.
func (r *Registry) Lookup(name string) (DirectiveRule, bool) {
	rule, ok := r.directives[name]
	return rule, ok
}

// Substitutions returns the legacy substitution rules in registration order.
func (r *Registry) Substitutions() []SubstitutionRule {
	return r.substitutions
}

// Len returns the number of registered directives.
func (r *Registry) Len() int {
	return len(r.directives)
}
