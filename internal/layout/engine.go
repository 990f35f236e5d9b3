package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/connerohnesorge/lumen/internal/ir"
	"github.com/connerohnesorge/lumen/internal/theme"
)

const (
	tableImagePlaceholderWidth = 8
	tableMinColumnWidth        = 3
	blockQuoteIconColumns      = 2
	inlineImageHeight          = 12
)

// ImageMode selects how inline images within paragraph content are placed.
type ImageMode int

const (
	// ImageModeSidebar emits a muted placeholder segment and collects an
	// ImageReference on the LayoutTree for a sidebar panel to draw.
	ImageModeSidebar ImageMode = iota
	// ImageModeInline reserves vertical space for the image directly
	// beneath the line it appeared on.
	ImageModeInline
)

func (m ImageMode) wrapMode() string {
	if m == ImageModeInline {
		return "inline"
	}

	return "sidebar"
}

// engine carries the mutable state a single layout_document pass threads
// through its recursive walk: the node-id counter, the collected hit
// regions, and the collected image references.
type engine struct {
	theme      *theme.Theme
	imageMode  ImageMode
	nextID     int
	hitRegions []HitRegion
	images     []ImageReference
}

func (e *engine) allocID() NodeID {
	id := e.nextID
	e.nextID++

	return NodeID(id)
}

// LayoutDocument positions every block of doc against the viewport width
// and theme spacing, producing the fully computed tree a renderer paints.
func LayoutDocument(doc *ir.Document, th *theme.Theme, vp Viewport, imageMode ImageMode) *LayoutTree {
	e := &engine{theme: th, imageMode: imageMode}

	rootID := e.allocID()
	children, _ := e.layoutBlocks(doc.Blocks, 0, 0, vp.Width, false)

	docHeight := 0
	for _, c := range children {
		if h := c.Rect.Y + c.Rect.Height; h > docHeight {
			docHeight = h
		}
	}

	root := LayoutNode{
		ID:       rootID,
		Rect:     Rect{X: 0, Y: 0, Width: vp.Width, Height: docHeight},
		Element:  ElementDocument{},
		Children: children,
	}

	return &LayoutTree{
		Root:       root,
		Viewport:   vp,
		HitRegions: e.hitRegions,
		Images:     e.images,
	}
}

// blockMargins returns the (top, bottom) margin for a block kind. tight
// is true within a ListItem, where paragraphs and lists collapse their
// spacing to zero but headings, code blocks, block quotes, and tables
// keep theirs.
func (e *engine) blockMargins(b ir.Block, tight bool) (top, bottom int) {
	switch b.(type) {
	case *ir.Heading:
		return e.theme.Spacing.HeadingMarginTop, e.theme.Spacing.HeadingMarginBot
	case *ir.Paragraph:
		if tight {
			return 0, 0
		}

		return 0, e.theme.Spacing.ParagraphSpacing
	case *ir.CodeBlock, *ir.BlockQuote, *ir.Table:
		return 0, 1
	case *ir.List:
		return 0, 0
	default:
		return 0, 0
	}
}

// layoutBlocks lays out a sequence of sibling blocks starting at (x, y)
// within width, applying each block's margins, and returns the resulting
// nodes plus the total height consumed (including trailing margin).
func (e *engine) layoutBlocks(blocks []ir.Block, x, y, width int, tight bool) ([]LayoutNode, int) {
	cursor := y
	startY := y
	nodes := make([]LayoutNode, 0, len(blocks))

	for _, b := range blocks {
		top, bottom := e.blockMargins(b, tight)
		cursor += top

		node := e.layoutBlock(b, x, cursor, width)
		cursor += node.Rect.Height
		nodes = append(nodes, node)

		cursor += bottom
	}

	return nodes, cursor - startY
}

func (e *engine) layoutBlock(b ir.Block, x, y, width int) LayoutNode {
	switch v := b.(type) {
	case *ir.Heading:
		return e.layoutHeading(v, x, y, width)
	case *ir.Paragraph:
		return e.layoutParagraph(v, x, y, width)
	case *ir.CodeBlock:
		return e.layoutCodeBlock(v, x, y, width)
	case *ir.BlockQuote:
		return e.layoutBlockQuote(v, x, y, width)
	case *ir.Callout:
		return e.layoutCallout(v, x, y, width)
	case *ir.List:
		return e.layoutList(v, x, y, width)
	case *ir.Table:
		return e.layoutTable(v, x, y, width)
	case *ir.HorizontalRule:
		return e.layoutHorizontalRule(x, y, width)
	default:
		return LayoutNode{ID: e.allocID(), Rect: Rect{X: x, Y: y, Width: width, Height: 0}, Element: ElementDocument{}}
	}
}

func slugify(text string) string {
	lower := strings.ToLower(text)

	return strings.ReplaceAll(lower, " ", "-")
}

func (e *engine) layoutHeading(h *ir.Heading, x, y, width int) LayoutNode {
	id := e.allocID()
	text := joinPlainText(h.Content)

	lines, _ := WrapInlines(h.Content, width, e.theme, y, e.imageMode.wrapMode(), &e.images)
	height := len(lines)
	if height == 0 {
		height = 1
	}

	rect := Rect{X: x, Y: y, Width: width, Height: height}

	e.hitRegions = append(e.hitRegions, HitRegion{
		Rect:    rect,
		Element: HitHeading{Level: h.Level, ID: fmt.Sprintf("h%d-%s", h.Level, slugify(text))},
	})

	return LayoutNode{
		ID:      id,
		Rect:    rect,
		Element: ElementHeading{Level: h.Level, Text: text},
		Style: ComputedStyle{
			Foreground: string(e.theme.Blocks.Heading.ByLevel(h.Level).Color),
			Weight:     theme.WeightBold,
		},
	}
}

// collectLinkRegions emits a HitRegion for every linked run within the
// wrapped lines, merging consecutive segments that share a URL so one
// link yields one region per line it occupies.
func (e *engine) collectLinkRegions(lines []Line, x, y int) {
	for i, line := range lines {
		segX := x
		runX, runW := 0, 0
		runURL, runText := "", ""

		flushRun := func() {
			if runURL != "" && runW > 0 {
				e.hitRegions = append(e.hitRegions, HitRegion{
					Rect:    Rect{X: runX, Y: y + i, Width: runW, Height: 1},
					Element: HitLink{URL: runURL, Text: runText},
				})
			}
			runURL, runText, runW = "", "", 0
		}

		for _, seg := range line.Segments {
			w := cellWidth(seg.Text)
			if seg.LinkURL != runURL {
				flushRun()
				runURL = seg.LinkURL
				runX = segX
			}
			runW += w
			runText += seg.Text
			segX += w
		}
		flushRun()
	}
}

func joinPlainText(content []ir.Inline) string {
	var b strings.Builder
	for _, in := range content {
		b.WriteString(ir.ToPlainText(in))
	}

	return b.String()
}

func (e *engine) layoutParagraph(p *ir.Paragraph, x, y, width int) LayoutNode {
	id := e.allocID()

	lines, placements := WrapInlines(p.Content, width, e.theme, y, e.imageMode.wrapMode(), &e.images)
	height := len(lines)
	if height < 1 {
		height = 1
	}

	e.collectLinkRegions(lines, x, y)

	var children []LayoutNode
	if e.imageMode == ImageModeInline {
		for _, placement := range placements {
			imgID := e.allocID()
			imgY := y + placement.LineIndex + 1
			children = append(children, LayoutNode{
				ID:   imgID,
				Rect: Rect{X: x, Y: imgY, Width: width, Height: inlineImageHeight},
				Element: ElementImage{
					Path:    placement.URL,
					AltText: placement.Alt,
				},
			})
			height += inlineImageHeight
		}
	}

	return LayoutNode{
		ID:       id,
		Rect:     Rect{X: x, Y: y, Width: width, Height: height},
		Element:  ElementParagraph{Lines: lines},
		Children: children,
	}
}

func (e *engine) layoutCodeBlock(c *ir.CodeBlock, x, y, width int) LayoutNode {
	id := e.allocID()

	lines := strings.Split(c.Code, "\n")
	padding := e.theme.Spacing.CodeBlockPadding
	height := len(lines) + 2*padding

	rect := Rect{X: x, Y: y, Width: width, Height: height}

	e.hitRegions = append(e.hitRegions, HitRegion{
		Rect:    rect,
		Element: HitCodeBlock{Lang: c.Lang},
	})

	return LayoutNode{
		ID:      id,
		Rect:    rect,
		Element: ElementCodeBlock{Lang: c.Lang, Lines: lines},
		Style: ComputedStyle{
			Foreground: string(e.theme.Blocks.CodeBlock.Foreground),
			Background: string(e.theme.Blocks.CodeBlock.Background),
			Padding:    AllEdges(padding),
		},
	}
}

func (e *engine) layoutBlockQuote(bq *ir.BlockQuote, x, y, width int) LayoutNode {
	id := e.allocID()

	indent := e.theme.Spacing.BlockquoteIndent
	innerWidth := saturatingSub(width, indent)
	children, height := e.layoutBlocks(bq.Blocks, x+indent, y, innerWidth, false)

	return LayoutNode{
		ID:       id,
		Rect:     Rect{X: x, Y: y, Width: width, Height: height},
		Element:  ElementBlockQuote{},
		Children: children,
		Style:    ComputedStyle{Foreground: string(e.theme.Blocks.BlockQuote.Color)},
	}
}

func (e *engine) layoutCallout(c *ir.Callout, x, y, width int) LayoutNode {
	id := e.allocID()

	innerWidth := saturatingSub(width, blockQuoteIconColumns)
	children, height := e.layoutBlocks(c.Content, x+blockQuoteIconColumns, y, innerWidth, false)
	if height < 1 {
		height = 1
	}

	return LayoutNode{
		ID:       id,
		Rect:     Rect{X: x, Y: y, Width: width, Height: height},
		Element:  ElementCallout{Kind: c.Kind.String()},
		Children: children,
		Style:    ComputedStyle{Foreground: string(e.theme.Blocks.Callout.ByKind(c.Kind.String()).Color)},
	}
}

func orderedMarker(start, index int) string {
	return strconv.Itoa(start+index) + "."
}

func (e *engine) layoutList(l *ir.List, x, y, width int) LayoutNode {
	id := e.allocID()

	maxMarkerWidth := 1
	if l.Ordered {
		maxMarkerWidth = 0
		for i := range l.Items {
			if w := cellWidth(orderedMarker(l.Start, i)); w > maxMarkerWidth {
				maxMarkerWidth = w
			}
		}
	}

	contentX := x + maxMarkerWidth + 1
	contentWidth := saturatingSub(width, maxMarkerWidth+1)

	cursor := y
	startY := y
	items := make([]LayoutNode, 0, len(l.Items))

	for i, item := range l.Items {
		itemID := e.allocID()
		itemStartY := cursor

		children, _ := e.layoutBlocks(item.Content, contentX, cursor, contentWidth, true)

		// Item height is the span from the first child's top to the last
		// child's bottom, so inner tight-spacing gaps are captured while
		// trailing margins are not.
		height := 1
		if len(children) > 0 {
			first := children[0].Rect
			last := children[len(children)-1].Rect
			height = (last.Y + last.Height) - first.Y
		}

		marker := "•"
		if l.Ordered {
			marker = orderedMarker(l.Start, i)
		}

		items = append(items, LayoutNode{
			ID:       itemID,
			Rect:     Rect{X: x, Y: itemStartY, Width: width, Height: height},
			Element:  ElementListItem{Marker: marker, Task: item.Task},
			Children: children,
			Style:    ComputedStyle{Foreground: string(e.theme.Blocks.List.MarkerColor)},
		})

		cursor += height
	}

	return LayoutNode{
		ID:       id,
		Rect:     Rect{X: x, Y: y, Width: width, Height: cursor - startY},
		Element:  ElementList{Ordered: l.Ordered, Start: l.Start},
		Children: items,
	}
}

func (e *engine) layoutHorizontalRule(x, y, width int) LayoutNode {
	return LayoutNode{
		ID:      e.allocID(),
		Rect:    Rect{X: x, Y: y, Width: width, Height: 1},
		Element: ElementHorizontalRule{},
	}
}

// inlineTextLength is the table natural-width measure: Text/Code count
// literally, nested content sums, Image is a fixed placeholder width,
// breaks contribute 0.
func inlineTextLength(content []ir.Inline) int {
	total := 0
	for _, in := range content {
		switch v := in.(type) {
		case *ir.Text:
			total += cellWidth(v.Value)
		case *ir.Code:
			total += cellWidth(v.Value)
		case *ir.Strong:
			total += inlineTextLength(v.Content)
		case *ir.Emphasis:
			total += inlineTextLength(v.Content)
		case *ir.Strikethrough:
			total += inlineTextLength(v.Content)
		case *ir.Link:
			total += inlineTextLength(v.Text)
		case *ir.Image:
			total += tableImagePlaceholderWidth
		}
	}

	return total
}

func (e *engine) layoutTable(t *ir.Table, x, y, width int) LayoutNode {
	id := e.allocID()
	padding := e.theme.Blocks.Table.Padding

	colCount := len(t.Headers)
	if len(t.Rows) > 0 && len(t.Rows[0]) > colCount {
		colCount = len(t.Rows[0])
	}

	natural := make([]int, colCount)
	considerRow := func(row []ir.TableCell) {
		for col := 0; col < colCount && col < len(row); col++ {
			w := inlineTextLength(row[col].Content) + 2*padding
			if w > natural[col] {
				natural[col] = w
			}
		}
	}
	considerRow(t.Headers)
	for _, row := range t.Rows {
		considerRow(row)
	}

	colWidths := make([]int, colCount)
	total := 0
	for i, w := range natural {
		if w < tableMinColumnWidth {
			w = tableMinColumnWidth
		}
		colWidths[i] = w
		total += w
	}

	if total > width && total > 0 {
		scaled := 0
		for i, w := range colWidths {
			nw := w * width / total
			if nw < tableMinColumnWidth {
				nw = tableMinColumnWidth
			}
			colWidths[i] = nw
			scaled += nw
		}
		total = scaled
	}

	cursor := y
	startY := y
	var rows []LayoutNode

	if len(t.Headers) > 0 {
		row := e.layoutTableRow(t.Headers, t.Alignment, colWidths, x, cursor, padding, true)
		cursor += row.Rect.Height
		rows = append(rows, row)
	}
	for _, r := range t.Rows {
		row := e.layoutTableRow(r, t.Alignment, colWidths, x, cursor, padding, false)
		cursor += row.Rect.Height
		rows = append(rows, row)
	}

	return LayoutNode{
		ID:       id,
		Rect:     Rect{X: x, Y: y, Width: total, Height: cursor - startY},
		Element:  ElementTable{ColumnWidths: colWidths},
		Children: rows,
	}
}

func (e *engine) layoutTableRow(cells []ir.TableCell, _ []ir.Alignment, colWidths []int, x, y, padding int, isHeader bool) LayoutNode {
	rowID := e.allocID()

	cellX := x
	rowHeight := 1
	cellNodes := make([]LayoutNode, 0, len(colWidths))

	for col := 0; col < len(colWidths); col++ {
		var content []ir.Inline
		if col < len(cells) {
			content = cells[col].Content
		}

		cellWidthCols := colWidths[col]
		innerWidth := saturatingSub(cellWidthCols, 2*padding)

		lines, _ := WrapInlines(content, innerWidth, e.theme, y+padding, e.imageMode.wrapMode(), &e.images)
		contentHeight := len(lines)
		if contentHeight < 1 {
			contentHeight = 1
		}
		cellHeight := contentHeight + 2*padding
		if cellHeight > rowHeight {
			rowHeight = cellHeight
		}

		cellID := e.allocID()
		paragraphID := e.allocID()

		paragraph := LayoutNode{
			ID:      paragraphID,
			Rect:    Rect{X: cellX + padding, Y: y + padding, Width: innerWidth, Height: contentHeight},
			Element: ElementParagraph{Lines: lines},
		}

		cellNodes = append(cellNodes, LayoutNode{
			ID:       cellID,
			Rect:     Rect{X: cellX, Y: y, Width: cellWidthCols, Height: cellHeight},
			Element:  ElementTableCell{},
			Children: []LayoutNode{paragraph},
		})

		cellX += cellWidthCols
	}

	for i := range cellNodes {
		cellNodes[i].Rect.Height = rowHeight
	}

	total := 0
	for _, w := range colWidths {
		total += w
	}

	return LayoutNode{
		ID:       rowID,
		Rect:     Rect{X: x, Y: y, Width: total, Height: rowHeight},
		Element:  ElementTableRow{IsHeader: isHeader},
		Children: cellNodes,
	}
}
