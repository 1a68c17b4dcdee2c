package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaptions(t *testing.T) {
	plain := "🌤 Weather: Clear sky\n\n🌡 Temperature: -1.5 °C"
	escaped := "🌤 Weather: Clear sky\n\n🌡 Temperature: \\-1\\.5 °C"

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{name: "no name", got: weatherCaption(plain, ""), expected: escaped},
		{name: "append", got: captionWithName(plain, "Home"), expected: escaped + "\n\n*Home*"},
		{name: "append escapes name", got: captionWithName(plain, "St. Mary's [old]"), expected: escaped + "\n\n*St\\. Mary's \\[old\\]*"},
		{name: "replace", got: captionReplaceName(plain+"\n\nHome", "Office"), expected: escaped + "\n\n*Office*"},
		{name: "drop", got: captionWithoutName(plain + "\n\nHome"), expected: escaped},
		{name: "drop keeps single paragraph", got: captionWithoutName("Sunny"), expected: "Sunny"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}
