package ir

// Block is a vertically-stacking element. Each concrete type below
// implements it with an unexported marker method, keeping the variant set
// sealed to this package.
type Block interface {
	isBlock()
}

// Heading is an ATX/setext heading with a 1-6 level and inline content.
type Heading struct {
	Level   int
	Content []Inline
}

func (*Heading) isBlock() {}

// Paragraph is a run of inline content.
type Paragraph struct {
	Content []Inline
}

func (*Paragraph) isBlock() {}

// CodeBlock is a fenced or indented code block with an optional language hint.
type CodeBlock struct {
	Lang string // empty if unspecified
	Code string
}

func (*CodeBlock) isBlock() {}

// BlockQuote is a quoted region containing further blocks.
type BlockQuote struct {
	Blocks []Block
}

func (*BlockQuote) isBlock() {}

// List is an ordered or unordered list.
type List struct {
	Ordered bool
	Start   int // starting number for ordered lists; ignored otherwise
	Items   []ListItem
}

func (*List) isBlock() {}

// ListItem is one entry of a List. Task is nil when the item is not a task
// list entry, true/false for a checked/unchecked checkbox.
type ListItem struct {
	Content []Block
	Task    *bool
}

// Table is a GFM table with per-column alignment.
type Table struct {
	Headers   []TableCell
	Rows      [][]TableCell
	Alignment []Alignment
}

func (*Table) isBlock() {}

// TableCell holds the inline content of a single cell.
type TableCell struct {
	Content []Inline
}

// Alignment is a table column's declared text alignment.
type Alignment int

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// HorizontalRule is a thematic break / separator.
type HorizontalRule struct{}

func (*HorizontalRule) isBlock() {}

// CalloutKind is the admonition kind a Callout carries.
type CalloutKind int

const (
	CalloutNote CalloutKind = iota
	CalloutWarning
	CalloutImportant
	CalloutTip
	CalloutCaution
)

// String renders the lowercase name theme lookups and layout's
// ElementCallout key on.
func (k CalloutKind) String() string {
	switch k {
	case CalloutWarning:
		return "warning"
	case CalloutImportant:
		return "important"
	case CalloutTip:
		return "tip"
	case CalloutCaution:
		return "caution"
	default:
		return "note"
	}
}

// Callout is a GitHub-style admonition block quote: "[!NOTE]" and its
// siblings, detected by the IR builder from a BlockQuote's leading marker.
type Callout struct {
	Kind    CalloutKind
	Title   string // optional; irbuilder never sets it, text after the marker stays in Content
	Content []Block
}

func (*Callout) isBlock() {}
