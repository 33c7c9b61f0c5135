package output

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestBanner_Plain(t *testing.T) {
	assert.Equal(t, "Vue.js - The Progressive JavaScript Framework", Banner(false))
}

func TestBanner_ColoredKeepsText(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	assert.Equal(t, Banner(false), Banner(true))
}

func TestGradient(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	defer lipgloss.SetColorProfile(termenv.Ascii)

	out := Gradient("ab", "#42D392", "#647EFF")
	assert.Contains(t, out, "a")
	assert.Contains(t, out, "b")
	assert.NotEqual(t, "ab", out)

	assert.Equal(t, "ab", Gradient("ab", "not-a-color", "#647EFF"))
	assert.Equal(t, "", Gradient("", "#42D392", "#647EFF"))
}
