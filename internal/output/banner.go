package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	bannerBrand   = "Vue.js"
	bannerTagline = " - The Progressive JavaScript Framework"
)

// Banner returns the start-up banner. With colored set the brand is Vue
// green and the tagline fades from green to blue.
func Banner(colored bool) string {
	if !colored {
		return bannerBrand + bannerTagline
	}

	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Foreground(ColorVueGreen).Render(bannerBrand))
	sb.WriteString(Gradient(bannerTagline, string(ColorVueGreen), string(ColorVueBlue)))
	return sb.String()
}

// Gradient renders each rune of s in a color blended from the hex colors
// from to to. Invalid hex colors leave s unstyled.
func Gradient(s, from, to string) string {
	start, err := colorful.Hex(from)
	if err != nil {
		return s
	}
	end, err := colorful.Hex(to)
	if err != nil {
		return s
	}

	runes := []rune(s)
	if len(runes) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c := start.BlendLab(end, t).Clamped()
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(string(r)))
	}
	return sb.String()
}
