// Package layout turns an ir.Document into a fully positioned LayoutTree:
// every node carries absolute (x, y, width, height) in terminal character
// cells, ready for an external renderer to walk and paint. Package layout
// never performs I/O and never blocks; every function here is a pure
// transformation over its Document/Theme/Viewport inputs, per the
// single-threaded, synchronous core model.
package layout

import "github.com/connerohnesorge/lumen/internal/theme"

// NodeID uniquely identifies a node within one LayoutTree.
type NodeID int

// Rect is an axis-aligned rectangle in character-cell coordinates, origin
// top-left.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether (x, y) lies within r, half-open on the
// right/bottom edges.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects reports whether r and other share any character cell.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// saturatingSub mirrors Rust's u16::saturating_sub: never goes negative.
// The block layout engine uses this for every width/height subtraction so
// a pathological zero-width viewport degrades to zero-width children
// instead of panicking or wrapping.
func saturatingSub(a, b int) int {
	if b >= a {
		return 0
	}

	return a - b
}

// EdgeSizes is a four-sided inset, used for both padding and margin.
type EdgeSizes struct {
	Top, Right, Bottom, Left int
}

// ZeroEdges returns the zero inset.
func ZeroEdges() EdgeSizes { return EdgeSizes{} }

// AllEdges returns size applied uniformly to all four sides.
func AllEdges(size int) EdgeSizes {
	return EdgeSizes{Top: size, Right: size, Bottom: size, Left: size}
}

// VerticalEdges returns size applied to top/bottom only.
func VerticalEdges(size int) EdgeSizes {
	return EdgeSizes{Top: size, Bottom: size}
}

// HorizontalEdges returns size applied to left/right only.
func HorizontalEdges(size int) EdgeSizes {
	return EdgeSizes{Left: size, Right: size}
}

// TextStyle is the resolved per-segment styling, a positioned-layout
// counterpart to theme.TextStyle (kept distinct so layout never imports
// lipgloss directly — only the theme package does).
type TextStyle struct {
	Foreground string // "" means unset
	Background string
	Weight     theme.FontWeight
	Style      theme.FontStyle
}

// ComputedStyle is the resolved styling attached to a LayoutNode.
type ComputedStyle struct {
	Foreground string
	Background string
	Weight     theme.FontWeight
	Style      theme.FontStyle
	Padding    EdgeSizes
	Margin     EdgeSizes
}

// TextSegment is one styled run of text within a Line. LinkURL is set for
// text nested inside a Link; ImageURL/ImageAlt are set for an inline image
// placeholder segment.
type TextSegment struct {
	Text     string
	Style    TextStyle
	LinkURL  string
	ImageURL string
	ImageAlt string
}

// Line is an ordered sequence of styled text segments, the unit the inline
// text layout engine produces one of per wrapped row.
type Line struct {
	Segments []TextSegment
}

// AddSegment appends a segment with the given text and style.
func (l *Line) AddSegment(text string, style TextStyle) {
	l.Segments = append(l.Segments, TextSegment{Text: text, Style: style})
}

// Width returns the sum of segment text lengths in runes. Display-cell
// width is computed separately via runewidth where wrapping decisions are
// made; Width is for diagnostics only.
func (l *Line) Width() int {
	total := 0
	for _, seg := range l.Segments {
		total += len([]rune(seg.Text))
	}

	return total
}

// IsEmpty reports whether the line has no segments.
func (l *Line) IsEmpty() bool {
	return len(l.Segments) == 0
}

// Element is the tagged-variant payload of a LayoutNode.
type Element interface {
	isElement()
}

type ElementDocument struct{}

func (ElementDocument) isElement() {}

type ElementHeading struct {
	Level int
	Text  string
}

func (ElementHeading) isElement() {}

type ElementParagraph struct {
	Lines []Line
}

func (ElementParagraph) isElement() {}

type ElementCodeBlock struct {
	Lang  string
	Lines []string
}

func (ElementCodeBlock) isElement() {}

type ElementBlockQuote struct{}

func (ElementBlockQuote) isElement() {}

type ElementList struct {
	Ordered bool
	Start   int
}

func (ElementList) isElement() {}

type ElementListItem struct {
	Marker string
	Task   *bool
}

func (ElementListItem) isElement() {}

type ElementTable struct {
	ColumnWidths []int
}

func (ElementTable) isElement() {}

type ElementTableRow struct {
	IsHeader bool
}

func (ElementTableRow) isElement() {}

type ElementTableCell struct{}

func (ElementTableCell) isElement() {}

type ElementHorizontalRule struct{}

func (ElementHorizontalRule) isElement() {}

type ElementCallout struct {
	Kind string
}

func (ElementCallout) isElement() {}

type ElementImage struct {
	Path    string
	AltText string
}

func (ElementImage) isElement() {}

// LayoutNode is a positioned, sized node in the output tree.
type LayoutNode struct {
	ID       NodeID
	Rect     Rect
	Element  Element
	Children []LayoutNode
	Style    ComputedStyle
}

// HitElement is the semantic payload of a HitRegion.
type HitElement interface {
	isHitElement()
}

type HitLink struct {
	URL  string
	Text string
}

func (HitLink) isHitElement() {}

type HitCodeBlock struct {
	Lang string
}

func (HitCodeBlock) isHitElement() {}

type HitHeading struct {
	Level int
	ID    string
}

func (HitHeading) isHitElement() {}

// HitRegion ties an interactive rectangle to a semantic element.
type HitRegion struct {
	Rect    Rect
	Element HitElement
}

// ImageReference points from document content to an external image
// resource, with its absolute document y-coordinate.
type ImageReference struct {
	Path      string
	AltText   string
	YPosition int
}

// LayoutTree is the complete output of one layout pass.
type LayoutTree struct {
	Root       LayoutNode
	Viewport   Viewport
	HitRegions []HitRegion
	Images     []ImageReference
}

// Viewport is the terminal window's dimensions and scroll offset, all in
// character cells.
type Viewport struct {
	Width, Height    int
	ScrollX, ScrollY int
}

// NewViewport returns a viewport with no scroll offset.
func NewViewport(width, height int) Viewport {
	return Viewport{Width: width, Height: height}
}

// VisibleRect returns the rectangle of document space currently on screen.
func (v Viewport) VisibleRect() Rect {
	return Rect{X: v.ScrollX, Y: v.ScrollY, Width: v.Width, Height: v.Height}
}

// ScrollTo sets scroll_y unclamped.
func (v *Viewport) ScrollTo(y int) {
	v.ScrollY = y
}

// ScrollToClamped sets scroll_y to min(y, max(0, docHeight-height)).
func (v *Viewport) ScrollToClamped(y, docHeight int) {
	maxScroll := saturatingSub(docHeight, v.Height)
	if y < maxScroll {
		v.ScrollY = y
	} else {
		v.ScrollY = maxScroll
	}
}

// ScrollBy shifts scroll_y by a signed delta, clamping only the lower bound.
func (v *Viewport) ScrollBy(delta int) {
	next := v.ScrollY + delta
	if next < 0 {
		next = 0
	}
	v.ScrollY = next
}

// ScrollByClamped shifts scroll_y by delta, clamping to [0, docHeight-height].
func (v *Viewport) ScrollByClamped(delta, docHeight int) {
	next := v.ScrollY + delta
	if next < 0 {
		next = 0
	}
	maxScroll := saturatingSub(docHeight, v.Height)
	if next > maxScroll {
		next = maxScroll
	}
	v.ScrollY = next
}

// ContainsPoint reports whether (x, y) is within the currently visible rect.
func (v Viewport) ContainsPoint(x, y int) bool {
	return v.VisibleRect().Contains(x, y)
}
