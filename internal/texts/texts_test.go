package texts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "Home", expected: "Home"},
		{name: "negative number", input: "-3.5 °C", expected: `\-3\.5 °C`},
		{name: "markup characters", input: "*bold* _it_ [x](y)", expected: `\*bold\* \_it\_ \[x\]\(y\)`},
		{name: "backslash first", input: `a\b.`, expected: `a\\b\.`},
		{name: "emoji untouched", input: "🌤 Weather: Clear sky", expected: "🌤 Weather: Clear sky"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeMarkdown(tt.input))
		})
	}
}

func TestHello(t *testing.T) {
	assert.Equal(t, "👋 Hello, *John Doe*\\!", Hello("John Doe"))
	assert.Equal(t, "👋 Hello, *J\\.D\\.*\\!", Hello("J.D."))
}

func TestBold(t *testing.T) {
	assert.Equal(t, "*Mom's \\(old\\) house*", Bold("Mom's (old) house"))
}
