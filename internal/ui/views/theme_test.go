package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTheme(t *testing.T) {
	dark := func() bool { return true }
	light := func() bool { return false }

	tests := []struct {
		theme string
		bg    func() bool
		want  string
	}{
		{"dark", light, "mocha"},
		{"light", dark, "latte"},
		{"frappe", light, "frappe"},
		{"macchiato", light, "macchiato"},
		{"system", dark, "mocha"},
		{"system", light, "latte"},
		{"system", nil, "mocha"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolveTheme(tt.theme, tt.bg), tt.theme)
	}
}

func TestPaletteFor_DistinctFlavours(t *testing.T) {
	mocha := PaletteFor("mocha")
	latte := PaletteFor("latte")

	assert.NotEqual(t, mocha.Text, latte.Text)
	assert.Equal(t, mocha, PaletteFor("unknown"))
	assert.True(t, IsDark("frappe"))
	assert.False(t, IsDark("latte"))
}
