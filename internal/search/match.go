// Package search implements case-insensitive substring search over a
// laid-out document and the navigable search-mode state a viewer drives
// off it.
package search

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/connerohnesorge/lumen/internal/layout"
)

// Match is one hit location in document coordinates.
type Match struct {
	X, Y   int
	Length int
	Text   string
}

const codeBlockBorderOffset = 1

// Find walks the layout tree and returns every case-insensitive,
// overlap-permitting occurrence of needle, in traversal order. An empty
// needle yields no matches.
func Find(root *layout.LayoutNode, needle string) []Match {
	var matches []Match
	if needle == "" {
		return matches
	}

	needleLower := strings.ToLower(needle)
	searchNode(root, needleLower, &matches)

	return matches
}

func searchNode(node *layout.LayoutNode, needleLower string, matches *[]Match) {
	switch el := node.Element.(type) {
	case layout.ElementHeading:
		searchText(el.Text, needleLower, node.Rect.X, node.Rect.Y, matches)

	case layout.ElementParagraph:
		for i, line := range el.Lines {
			searchLine(line, needleLower, node.Rect.X, node.Rect.Y+i, matches)
		}

	case layout.ElementCodeBlock:
		for i, text := range el.Lines {
			searchText(text, needleLower, node.Rect.X+codeBlockBorderOffset, node.Rect.Y+codeBlockBorderOffset+i, matches)
		}
	}

	for i := range node.Children {
		searchNode(&node.Children[i], needleLower, matches)
	}
}

func searchLine(line layout.Line, needleLower string, x, y int, matches *[]Match) {
	currentX := x
	for _, seg := range line.Segments {
		searchText(seg.Text, needleLower, currentX, y, matches)
		currentX += runewidth.StringWidth(seg.Text)
	}
}

// searchText finds every, possibly overlapping, case-insensitive
// occurrence of needleLower in text and appends a Match for each,
// continuing the scan one rune after the start of the previous hit.
func searchText(text, needleLower string, x, y int, matches *[]Match) {
	textLower := strings.ToLower(text)
	runes := []rune(text)
	runesLower := []rune(textLower)
	needleRunes := []rune(needleLower)

	if len(needleRunes) == 0 || len(needleRunes) > len(runesLower) {
		return
	}

	for start := 0; start+len(needleRunes) <= len(runesLower); start++ {
		if runesEqual(runesLower[start:start+len(needleRunes)], needleRunes) {
			*matches = append(*matches, Match{
				X:      x + start,
				Y:      y,
				Length: len(needleRunes),
				Text:   string(runes[start : start+len(needleRunes)]),
			})
		}
	}
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
