package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connerohnesorge/lumen/internal/irbuilder"
	"github.com/connerohnesorge/lumen/internal/layout"
	"github.com/connerohnesorge/lumen/internal/search"
	"github.com/connerohnesorge/lumen/internal/theme"
	"github.com/connerohnesorge/lumen/internal/tokenizer"
)

func TestFindEmptyNeedleYieldsNoMatches(t *testing.T) {
	root := layout.LayoutNode{Element: layout.ElementHeading{Level: 1, Text: "Hello World"}}

	assert.Empty(t, search.Find(&root, ""))
}

func TestFindHeadingCaseInsensitive(t *testing.T) {
	root := layout.LayoutNode{
		Rect:    layout.Rect{X: 2, Y: 3},
		Element: layout.ElementHeading{Level: 1, Text: "Hello World"},
	}

	matches := search.Find(&root, "WORLD")

	require.Len(t, matches, 1)
	assert.Equal(t, 2+6, matches[0].X)
	assert.Equal(t, 3, matches[0].Y)
	assert.Equal(t, "World", matches[0].Text)
}

func TestFindOverlappingMatches(t *testing.T) {
	root := layout.LayoutNode{Element: layout.ElementHeading{Text: "aaaa"}}

	matches := search.Find(&root, "aa")
	assert.Len(t, matches, 3)
}

func TestFindParagraphPerLine(t *testing.T) {
	root := layout.LayoutNode{
		Rect: layout.Rect{X: 0, Y: 5},
		Element: layout.ElementParagraph{
			Lines: []layout.Line{
				{Segments: []layout.TextSegment{{Text: "first line"}}},
				{Segments: []layout.TextSegment{{Text: "needle here"}}},
			},
		},
	}

	matches := search.Find(&root, "needle")
	require.Len(t, matches, 1)
	assert.Equal(t, 6, matches[0].Y)
}

func TestFindCodeBlockBorderOffset(t *testing.T) {
	root := layout.LayoutNode{
		Rect: layout.Rect{X: 0, Y: 0},
		Element: layout.ElementCodeBlock{
			Lines: []string{"func main() {}"},
		},
	}

	matches := search.Find(&root, "main")
	require.Len(t, matches, 1)
	assert.Equal(t, 6, matches[0].X) // +1 border offset, then "func " is 5 runes
	assert.Equal(t, 1, matches[0].Y)
}

func TestFindRecursesIntoChildren(t *testing.T) {
	root := layout.LayoutNode{
		Children: []layout.LayoutNode{
			{Element: layout.ElementHeading{Text: "nested needle"}},
		},
	}

	matches := search.Find(&root, "needle")
	assert.Len(t, matches, 1)
}

// TestSearchOverLaidOutDocument runs the whole pipeline over
// "# TEST\n\nTest test TeSt" and checks the needle "test" hits the
// heading first, then the three paragraph occurrences at increasing x.
func TestSearchOverLaidOutDocument(t *testing.T) {
	doc := irbuilder.Build(tokenizer.Tokenize([]byte("# TEST\n\nTest test TeSt\n")))
	th, err := theme.Get("docs")
	require.NoError(t, err)

	tree := layout.LayoutDocument(doc, th, layout.NewViewport(80, 24), layout.ImageModeSidebar)
	matches := search.Find(&tree.Root, "test")

	require.Len(t, matches, 4)
	assert.Equal(t, "TEST", matches[0].Text)
	for _, m := range matches {
		assert.Equal(t, 4, m.Length)
	}
	assert.Greater(t, matches[1].Y, matches[0].Y)
	assert.Less(t, matches[1].X, matches[2].X)
	assert.Less(t, matches[2].X, matches[3].X)
	assert.Equal(t, matches[1].Y, matches[3].Y)
}

func TestStateNavigationWraps(t *testing.T) {
	root := layout.LayoutNode{
		Children: []layout.LayoutNode{
			{Rect: layout.Rect{Y: 0}, Element: layout.ElementHeading{Text: "alpha"}},
			{Rect: layout.Rect{Y: 1}, Element: layout.ElementHeading{Text: "alpha"}},
			{Rect: layout.Rect{Y: 2}, Element: layout.ElementHeading{Text: "alpha"}},
		},
	}

	s := search.New()
	s.Activate()
	s.AddChar('a')
	s.AddChar('l')
	s.ExecuteSearch(&root)

	require.Equal(t, 3, s.MatchCount())

	m, ok := s.CurrentMatch()
	require.True(t, ok)
	assert.Equal(t, 0, m.Y)

	s.NextMatch()
	s.NextMatch()
	s.NextMatch() // wraps back to 0
	m, ok = s.CurrentMatch()
	require.True(t, ok)
	assert.Equal(t, 0, m.Y)

	s.PrevMatch()
	m, ok = s.CurrentMatch()
	require.True(t, ok)
	assert.Equal(t, 2, m.Y)
}

func TestStateDeactivateClears(t *testing.T) {
	s := search.New()
	s.Activate()
	s.AddChar('x')
	s.Deactivate()

	assert.False(t, s.Active)
	assert.Equal(t, "", s.Needle)
	assert.Equal(t, 0, s.MatchCount())
}

func TestStateBackspace(t *testing.T) {
	s := search.New()
	s.Activate()
	s.AddChar('a')
	s.AddChar('b')
	s.Backspace()
	assert.Equal(t, "a", s.Needle)
}
