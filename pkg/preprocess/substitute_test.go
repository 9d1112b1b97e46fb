package preprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstitutePlaceholders_Basic(t *testing.T) {
	out, err := substitutePlaceholders("${greeting}, ${name}!", map[string]string{
		"greeting": "Hello",
		"name":     "World",
	}, "test")
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!", out)
}

func TestSubstitutePlaceholders_RepeatedPlaceholder(t *testing.T) {
	out, err := substitutePlaceholders("${x} and ${x}", map[string]string{"x": "a"}, "test")
	require.NoError(t, err)
	assert.Equal(t, "a and a", out)
}

func TestSubstitutePlaceholders_NonPlaceholderTextUntouched(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"lone dollar", "cost: $5"},
		{"dollar brace unclosed", "${oops"},
		{"missing brace", "$name"},
		{"digit-leading identifier", "${1abc}"},
		{"empty braces", "${}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := substitutePlaceholders(tt.input, map[string]string{}, "test")
			require.NoError(t, err)
			assert.Equal(t, tt.input, out)
		})
	}
}

func TestSubstitutePlaceholders_UnknownCollectedTogether(t *testing.T) {
	_, err := substitutePlaceholders("${a} ${zz} ${name} ${bb}", map[string]string{"name": "x"}, "doc.md:5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "template references unknown placeholder(s): a, bb, zz")
	assert.Contains(t, err.Error(), "doc.md:5")
}

func TestSubstitutePlaceholders_UnderscoreIdentifier(t *testing.T) {
	out, err := substitutePlaceholders("${_private_1}", map[string]string{"_private_1": "ok"}, "test")
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
}
