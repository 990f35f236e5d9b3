package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// GradientPrefix renders a heading prefix or callout icon string with
// each rune colored along a Lab-space gradient between from and to.
// Inputs must be "#rrggbb" hex colors; every built-in theme color is.
func GradientPrefix(text string, from, to lipgloss.Color) string {
	if text == "" {
		return text
	}

	start, err := colorful.Hex(string(from))
	if err != nil {
		return text
	}

	end, err := colorful.Hex(string(to))
	if err != nil {
		return text
	}

	runes := []rune(text)
	total := len(runes)

	var out strings.Builder
	for i, r := range runes {
		ratio := gradientRatio(i, total)
		blended := start.BlendLab(end, ratio)
		out.WriteString(
			lipgloss.NewStyle().
				Foreground(lipgloss.Color(blended.Hex())).
				Render(string(r)),
		)
	}

	return out.String()
}

func gradientRatio(index, total int) float64 {
	if total <= 1 {
		return 0
	}

	return float64(index) / float64(total-1)
}

// AccentGradient returns the theme's primary->accent color pair, the two
// endpoints GradientPrefix interpolates between for this theme's heading
// prefixes and callout icons.
func (t *Theme) AccentGradient() (lipgloss.Color, lipgloss.Color) {
	return t.Colors.Primary, t.Colors.Accent
}
