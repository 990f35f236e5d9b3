// Package tokenizer adapts a concrete Markdown parser into the event
// stream internal/irbuilder's push-down automaton consumes: Start(Tag),
// End(Tag), Text, Code, SoftBreak, HardBreak, Rule. The parser behind it
// is github.com/yuin/goldmark; the IR builder depends only on this event
// contract, not on goldmark's AST types, so another frontend can be
// swapped in.
package tokenizer

import "github.com/connerohnesorge/lumen/internal/ir"

// TagKind identifies which block or inline construct a Tag/TagEnd pair
// brackets.
type TagKind int

const (
	TagParagraph TagKind = iota
	TagHeading
	TagBlockQuote
	TagCodeBlock
	TagList
	TagItem
	TagTable
	TagTableHead
	TagTableRow
	TagTableCell
	TagStrong
	TagEmphasis
	TagStrikethrough
	TagLink
	TagImage
)

// Tag carries the per-construct attributes needed to open a block or
// inline context: heading level, list ordering/start, code language,
// table alignments, link/image destination, and task-list checkbox state.
type Tag struct {
	Kind TagKind

	Level      int             // Heading
	Ordered    bool            // List
	Start      int             // List (ordered)
	Lang       string          // CodeBlock
	Alignments []ir.Alignment  // Table
	URL        string          // Link, Image
	Title      string          // Link, Image
	Task       *bool           // Item, when part of a task list
}

// EventKind discriminates an Event's payload.
type EventKind int

const (
	EventStart EventKind = iota
	EventEnd
	EventText
	EventCode
	EventSoftBreak
	EventHardBreak
	EventRule
)

// Event is one item of the tokenizer's output stream.
type Event struct {
	Kind EventKind
	Tag  Tag
	Text string // valid for EventText, EventCode
}
