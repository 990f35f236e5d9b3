// Package theme provides the passive styling model consumed by Lumen's
// layout engine and by an external renderer. A Theme never mutates layout
// decisions on its own; it supplies colors, spacing, and per-element styles
// that the layout engine resolves into ComputedStyle and TextStyle values.
package theme

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/connerohnesorge/lumen/internal/lumenerrs"
)

// FontWeight is the weight a TextStyle renders with.
type FontWeight int

const (
	WeightNormal FontWeight = iota
	WeightBold
)

// FontStyle is the slant a TextStyle renders with.
type FontStyle int

const (
	StyleNormal FontStyle = iota
	StyleItalic
)

// URLDisplayMode controls how a Link's URL is surfaced alongside its text.
type URLDisplayMode int

const (
	URLHidden URLDisplayMode = iota
	URLHover
	URLInline
)

// BorderStyle selects the box-drawing glyph set used for borders.
type BorderStyle int

const (
	BorderNone BorderStyle = iota
	BorderSingle
	BorderDouble
	BorderRounded
	BorderHeavy
	BorderASCII
)

// TextStyle is the resolved styling for a run of inline text.
type TextStyle struct {
	Foreground *lipgloss.Color
	Background *lipgloss.Color
	Weight     FontWeight
	Style      FontStyle
}

// LinkStyle extends TextStyle with link-specific display behavior.
type LinkStyle struct {
	Foreground lipgloss.Color
	Underline  bool
	ShowURL    URLDisplayMode
}

// InlineStyles groups the styling for every inline element kind.
type InlineStyles struct {
	Strong        TextStyle
	Emphasis      TextStyle
	Code          TextStyle
	Link          LinkStyle
	Strikethrough TextStyle
}

// Spacing holds every layout-affecting spacing constant a theme controls.
type Spacing struct {
	ParagraphSpacing int
	HeadingMarginTop int
	HeadingMarginBot int
	ListIndent       int
	BlockquoteIndent int
	CodeBlockPadding int
}

// DefaultSpacing returns the spacing every built-in theme starts from.
func DefaultSpacing() Spacing {
	return Spacing{
		ParagraphSpacing: 1,
		HeadingMarginTop: 2,
		HeadingMarginBot: 1,
		ListIndent:       2,
		BlockquoteIndent: 2,
		CodeBlockPadding: 1,
	}
}

// HeadingStyle is the per-level heading style.
type HeadingStyle struct {
	Color  lipgloss.Color
	Prefix string
	Border BorderStyle
}

// HeadingStyles holds the per-level heading styles H1 through H6.
type HeadingStyles struct {
	H1, H2, H3, H4, H5, H6 HeadingStyle
}

// ByLevel returns the style for a 1-based heading level, clamping to [1,6].
func (h HeadingStyles) ByLevel(level int) HeadingStyle {
	switch {
	case level <= 1:
		return h.H1
	case level == 2:
		return h.H2
	case level == 3:
		return h.H3
	case level == 4:
		return h.H4
	case level == 5:
		return h.H5
	default:
		return h.H6
	}
}

// CodeBlockStyle is the styling applied to fenced/indented code blocks.
type CodeBlockStyle struct {
	Foreground        lipgloss.Color
	Background        lipgloss.Color
	ShowLanguageBadge bool
}

// BlockQuoteStyle is the styling applied to block quotes.
type BlockQuoteStyle struct {
	Color lipgloss.Color
}

// ListStyle is the styling applied to list markers.
type ListStyle struct {
	MarkerColor lipgloss.Color
}

// TableStyle is the styling applied to table borders and padding.
type TableStyle struct {
	BorderStyle BorderStyle
	Padding     int
}

// CalloutStyle is the per-kind styling for a Callout block.
type CalloutStyle struct {
	Icon   string
	Color  lipgloss.Color
	Border lipgloss.Color
}

// CalloutStyles holds the per-kind callout styles.
type CalloutStyles struct {
	Note, Warning, Important, Tip, Caution CalloutStyle
}

// ByKind returns the style registered for a lowercase callout kind name.
func (c CalloutStyles) ByKind(kind string) CalloutStyle {
	switch kind {
	case "warning":
		return c.Warning
	case "important":
		return c.Important
	case "tip":
		return c.Tip
	case "caution":
		return c.Caution
	default:
		return c.Note
	}
}

// BlockStyles groups the styling for every block element kind.
type BlockStyles struct {
	Heading    HeadingStyles
	CodeBlock  CodeBlockStyle
	BlockQuote BlockQuoteStyle
	List       ListStyle
	Table      TableStyle
	Callout    CalloutStyles
}

// Palette is the core set of semantic colors a theme exposes.
type Palette struct {
	Foreground lipgloss.Color
	Background lipgloss.Color
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Warning    lipgloss.Color
	Success    lipgloss.Color
}

// Theme is a complete, immutable styling definition for a layout pass.
type Theme struct {
	Name    string
	Colors  Palette
	Spacing Spacing
	Blocks  BlockStyles
	Inlines InlineStyles
}

// registry of built-in themes, keyed by name.
var registry = map[string]*Theme{}

func register(t *Theme) {
	registry[t.Name] = t
}

func init() {
	register(docsTheme())
	register(neonTheme())
	register(minimalTheme())
	register(draculaTheme())
	register(monokaiTheme())
	register(solarizedTheme())
	register(gruvboxTheme())
	register(nordTheme())
	register(tokyoNightTheme())
	register(catppuccinTheme())
}

// Get returns the built-in theme registered under name.
// Returns an error if no such theme exists.
func Get(name string) (*Theme, error) {
	t, ok := registry[name]
	if !ok {
		return nil, &lumenerrs.UnknownThemeError{Name: name}
	}

	return t, nil
}

// Available returns the sorted list of built-in theme names.
func Available() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// current holds the process-wide active theme, set via Load.
var current *Theme

// Load sets the current theme by name. Returns an error if the theme is
// unknown; the current theme is left unchanged in that case.
func Load(name string) error {
	t, err := Get(name)
	if err != nil {
		return err
	}
	current = t

	return nil
}

// Current returns the active theme, defaulting to "docs" if none was loaded.
func Current() *Theme {
	if current == nil {
		return registry["docs"]
	}

	return current
}
