package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalPlate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "abc123", want: "ABC123"},
		{in: "  沪a888666 \n", want: "沪A888666"},
		{in: "苏E12345", want: "苏E12345"},
		{in: "   ", want: ""},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalPlate(tt.in))
		})
	}
}

func TestRuneLen(t *testing.T) {
	assert.Equal(t, 6, RuneLen("车旁有人等待"))
	assert.Equal(t, 3, RuneLen("abc"))
}

func TestTrimTrailingSlash(t *testing.T) {
	assert.Equal(t, "https://api.day.app/key", TrimTrailingSlash("https://api.day.app/key/"))
	assert.Equal(t, "https://api.day.app/key", TrimTrailingSlash("https://api.day.app/key"))
	assert.Equal(t, "https://api.day.app/key", TrimTrailingSlash("https://api.day.app/key//"))
}
