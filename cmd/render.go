package cmd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/connerohnesorge/lumen/internal/layout"
	"github.com/connerohnesorge/lumen/internal/theme"
)

// RenderPlain flattens a LayoutTree into terminal text, applying theme
// colors to each node's resolved style when color is true. It is a
// minimal stand-in for a full cell-writer renderer, enough to drive the
// pipeline from the command line without an interactive event loop.
func RenderPlain(tree *layout.LayoutTree, th *theme.Theme, color bool) string {
	var b strings.Builder
	renderNode(&b, tree.Root, th, color)

	return b.String()
}

func renderNode(b *strings.Builder, node layout.LayoutNode, th *theme.Theme, color bool) {
	switch el := node.Element.(type) {
	case layout.ElementHeading:
		writeHeading(b, el, th, color)
		b.WriteByte('\n')

	case layout.ElementParagraph:
		for _, line := range el.Lines {
			renderLine(b, line, color)
			b.WriteByte('\n')
		}

	case layout.ElementCodeBlock:
		for _, text := range el.Lines {
			writeStyled(b, text, node.Style, color)
			b.WriteByte('\n')
		}

	case layout.ElementHorizontalRule:
		b.WriteString(strings.Repeat("─", node.Rect.Width))
		b.WriteByte('\n')

	case layout.ElementListItem:
		b.WriteString(el.Marker)
		b.WriteByte(' ')

	case layout.ElementImage:
		b.WriteString("[image: ")
		b.WriteString(el.AltText)
		b.WriteString("]\n")
	}

	for _, child := range node.Children {
		renderNode(b, child, th, color)
	}
}

func renderLine(b *strings.Builder, line layout.Line, color bool) {
	for _, seg := range line.Segments {
		writeStyledSegment(b, seg, color)
	}
}

// writeHeading renders a heading's text, using the theme's primary->accent
// gradient (the same pair the interactive renderer would use for heading
// prefixes) when color is enabled and a theme is given, writing the text
// unstyled otherwise.
func writeHeading(b *strings.Builder, el layout.ElementHeading, th *theme.Theme, color bool) {
	if !color || th == nil {
		b.WriteString(el.Text)

		return
	}

	from, to := th.AccentGradient()
	b.WriteString(theme.GradientPrefix(el.Text, from, to))
}

func writeStyledSegment(b *strings.Builder, seg layout.TextSegment, color bool) {
	if !color || seg.Style.Foreground == "" {
		b.WriteString(seg.Text)

		return
	}

	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(seg.Style.Foreground)).Render(seg.Text))
}

func writeStyled(b *strings.Builder, text string, style layout.ComputedStyle, color bool) {
	if !color || style.Foreground == "" {
		b.WriteString(text)

		return
	}

	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(style.Foreground)).Render(text))
}
