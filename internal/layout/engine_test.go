package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connerohnesorge/lumen/internal/ir"
)

// TestHeadingThenParagraph: with heading margins (2, 1) and paragraph
// spacing 1, a "# Title\n\nContent" document lays out the heading at y=2
// and the paragraph at y=4, with document height 5.
func TestHeadingThenParagraph(t *testing.T) {
	th := testTheme(t)
	doc := &ir.Document{Blocks: []ir.Block{
		&ir.Heading{Level: 1, Content: []ir.Inline{&ir.Text{Value: "Title"}}},
		&ir.Paragraph{Content: []ir.Inline{&ir.Text{Value: "Content"}}},
	}}

	tree := LayoutDocument(doc, th, NewViewport(80, 24), ImageModeSidebar)

	require.Len(t, tree.Root.Children, 2)
	heading := tree.Root.Children[0]
	paragraph := tree.Root.Children[1]

	assert.Equal(t, 2, heading.Rect.Y)
	assert.Equal(t, 1, heading.Rect.Height)
	assert.Equal(t, 4, paragraph.Rect.Y)
	assert.Equal(t, 1, paragraph.Rect.Height)
	assert.Equal(t, 5, tree.Root.Rect.Height)
}

// TestOrderedListAlignment: a ten-item ordered list ("1." through "10.")
// aligns every item's content at x + 4, since the widest marker "10." is
// 3 characters wide.
func TestOrderedListAlignment(t *testing.T) {
	th := testTheme(t)

	items := make([]ir.ListItem, 10)
	for i := range items {
		items[i] = ir.ListItem{Content: []ir.Block{
			&ir.Paragraph{Content: []ir.Inline{&ir.Text{Value: "item"}}},
		}}
	}

	doc := &ir.Document{Blocks: []ir.Block{
		&ir.List{Ordered: true, Start: 1, Items: items},
	}}

	tree := LayoutDocument(doc, th, NewViewport(20, 50), ImageModeSidebar)
	list := tree.Root.Children[0]

	require.Len(t, list.Children, 10)
	for _, item := range list.Children {
		require.NotEmpty(t, item.Children)
		assert.Equal(t, 4, item.Children[0].Rect.X)
	}
}

func TestSiblingBlocksDoNotOverlapOnY(t *testing.T) {
	th := testTheme(t)
	doc := &ir.Document{Blocks: []ir.Block{
		&ir.Heading{Level: 2, Content: []ir.Inline{&ir.Text{Value: "A"}}},
		&ir.Paragraph{Content: []ir.Inline{&ir.Text{Value: "one"}}},
		&ir.Paragraph{Content: []ir.Inline{&ir.Text{Value: "two"}}},
	}}

	tree := LayoutDocument(doc, th, NewViewport(80, 24), ImageModeSidebar)

	children := tree.Root.Children
	for i := 0; i+1 < len(children); i++ {
		assert.GreaterOrEqual(t, children[i+1].Rect.Y, children[i].Rect.Y+children[i].Rect.Height)
	}
}

func TestDocumentHeightIsMaxChildExtent(t *testing.T) {
	th := testTheme(t)
	doc := &ir.Document{Blocks: []ir.Block{
		&ir.Paragraph{Content: []ir.Inline{&ir.Text{Value: "hello"}}},
	}}

	tree := LayoutDocument(doc, th, NewViewport(80, 24), ImageModeSidebar)

	maxExtent := 0
	for _, c := range tree.Root.Children {
		if e := c.Rect.Y + c.Rect.Height; e > maxExtent {
			maxExtent = e
		}
	}
	assert.Equal(t, maxExtent, tree.Root.Rect.Height)
}

func TestNodeIDsAreUnique(t *testing.T) {
	th := testTheme(t)
	doc := &ir.Document{Blocks: []ir.Block{
		&ir.Heading{Level: 1, Content: []ir.Inline{&ir.Text{Value: "A"}}},
		&ir.List{Ordered: false, Items: []ir.ListItem{
			{Content: []ir.Block{&ir.Paragraph{Content: []ir.Inline{&ir.Text{Value: "x"}}}}},
			{Content: []ir.Block{&ir.Paragraph{Content: []ir.Inline{&ir.Text{Value: "y"}}}}},
		}},
	}}

	tree := LayoutDocument(doc, th, NewViewport(80, 24), ImageModeSidebar)

	seen := map[NodeID]bool{}
	var walk func(n LayoutNode)
	walk = func(n LayoutNode) {
		assert.False(t, seen[n.ID], "duplicate id %d", n.ID)
		seen[n.ID] = true
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(tree.Root)
}

func TestHitRegionsWithinRoot(t *testing.T) {
	th := testTheme(t)
	doc := &ir.Document{Blocks: []ir.Block{
		&ir.Heading{Level: 1, Content: []ir.Inline{&ir.Text{Value: "Section"}}},
		&ir.CodeBlock{Lang: "go", Code: "fmt.Println(1)"},
	}}

	tree := LayoutDocument(doc, th, NewViewport(80, 24), ImageModeSidebar)

	for _, hr := range tree.HitRegions {
		assert.GreaterOrEqual(t, hr.Rect.X, tree.Root.Rect.X)
		assert.GreaterOrEqual(t, hr.Rect.Y, tree.Root.Rect.Y)
		assert.LessOrEqual(t, hr.Rect.X+hr.Rect.Width, tree.Root.Rect.X+tree.Root.Rect.Width)
	}
}

func TestLinkHitRegionEmitted(t *testing.T) {
	th := testTheme(t)
	doc := &ir.Document{Blocks: []ir.Block{
		&ir.Paragraph{Content: []ir.Inline{
			&ir.Text{Value: "see "},
			&ir.Link{URL: "https://example.com", Text: []ir.Inline{&ir.Text{Value: "docs"}}},
		}},
	}}

	tree := LayoutDocument(doc, th, NewViewport(80, 24), ImageModeSidebar)

	var found bool
	for _, hr := range tree.HitRegions {
		link, ok := hr.Element.(HitLink)
		if !ok {
			continue
		}
		found = true
		assert.Equal(t, "https://example.com", link.URL)
		assert.Equal(t, 0, hr.Rect.Y)
		assert.Equal(t, 1, hr.Rect.Height)
		// The run covers the word-separating space plus "docs".
		assert.Equal(t, 3, hr.Rect.X)
		assert.Equal(t, 5, hr.Rect.Width)
	}
	assert.True(t, found)
}

func TestTableColumnWidthsScaleDown(t *testing.T) {
	th := testTheme(t)
	table := &ir.Table{
		Headers: []ir.TableCell{
			{Content: []ir.Inline{&ir.Text{Value: "Name"}}},
			{Content: []ir.Inline{&ir.Text{Value: "Description of a very long column header"}}},
		},
		Rows: [][]ir.TableCell{
			{
				{Content: []ir.Inline{&ir.Text{Value: "a"}}},
				{Content: []ir.Inline{&ir.Text{Value: "b"}}},
			},
		},
		Alignment: []ir.Alignment{ir.AlignNone, ir.AlignNone},
	}

	doc := &ir.Document{Blocks: []ir.Block{table}}
	tree := LayoutDocument(doc, th, NewViewport(20, 24), ImageModeSidebar)

	tbl, ok := tree.Root.Children[0].Element.(ElementTable)
	require.True(t, ok)

	total := 0
	for _, w := range tbl.ColumnWidths {
		assert.GreaterOrEqual(t, w, tableMinColumnWidth)
		total += w
	}
	assert.LessOrEqual(t, total, 20)
}

func TestLayoutIsDeterministic(t *testing.T) {
	th := testTheme(t)
	doc := &ir.Document{Blocks: []ir.Block{
		&ir.Heading{Level: 1, Content: []ir.Inline{&ir.Text{Value: "Title"}}},
		&ir.Paragraph{Content: []ir.Inline{&ir.Text{Value: "alpha beta gamma delta epsilon"}}},
		&ir.List{Ordered: true, Start: 1, Items: []ir.ListItem{
			{Content: []ir.Block{&ir.Paragraph{Content: []ir.Inline{&ir.Text{Value: "one"}}}}},
		}},
	}}

	vp := NewViewport(24, 40)
	first := LayoutDocument(doc, th, vp, ImageModeSidebar)
	second := LayoutDocument(doc, th, vp, ImageModeSidebar)

	assert.Equal(t, first, second)
}

// TestLayoutPreservesTextTokens checks the round-trip property: the
// concatenated segment text of the laid-out tree contains every
// non-whitespace token of the source IR's textual content, in order.
func TestLayoutPreservesTextTokens(t *testing.T) {
	th := testTheme(t)
	doc := &ir.Document{Blocks: []ir.Block{
		&ir.Heading{Level: 2, Content: []ir.Inline{&ir.Text{Value: "Section One"}}},
		&ir.Paragraph{Content: []ir.Inline{
			&ir.Text{Value: "alpha beta "},
			&ir.Strong{Content: []ir.Inline{&ir.Text{Value: "gamma"}}},
		}},
		&ir.List{Items: []ir.ListItem{
			{Content: []ir.Block{&ir.Paragraph{Content: []ir.Inline{&ir.Text{Value: "delta"}}}}},
		}},
	}}

	tree := LayoutDocument(doc, th, NewViewport(30, 40), ImageModeSidebar)

	var extracted strings.Builder
	var walk func(n LayoutNode)
	walk = func(n LayoutNode) {
		switch el := n.Element.(type) {
		case ElementHeading:
			extracted.WriteString(el.Text)
			extracted.WriteByte(' ')
		case ElementParagraph:
			for _, line := range el.Lines {
				for _, seg := range line.Segments {
					extracted.WriteString(seg.Text)
				}
				extracted.WriteByte(' ')
			}
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(tree.Root)

	text := extracted.String()
	pos := 0
	for _, token := range []string{"Section", "One", "alpha", "beta", "gamma", "delta"} {
		idx := strings.Index(text[pos:], token)
		require.GreaterOrEqual(t, idx, 0, "token %q missing after offset %d in %q", token, pos, text)
		pos += idx + len(token)
	}
}

func TestCalloutHasMinimumHeightOne(t *testing.T) {
	th := testTheme(t)
	doc := &ir.Document{Blocks: []ir.Block{
		&ir.Callout{Kind: ir.CalloutTip, Content: nil},
	}}

	tree := LayoutDocument(doc, th, NewViewport(80, 24), ImageModeSidebar)
	assert.GreaterOrEqual(t, tree.Root.Children[0].Rect.Height, 1)
}
