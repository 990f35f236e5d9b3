package tokenizer

import (
	"strings"

	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	gtext "github.com/yuin/goldmark/text"

	"github.com/connerohnesorge/lumen/internal/ir"
)

// md is configured once with the GFM extensions the viewer depends on:
// tables, strikethrough, and task lists.
var md = goldmark.New(
	goldmark.WithExtensions(
		extensionsGFM()...,
	),
)

// Tokenize parses source as GitHub-flavored Markdown and returns the
// event stream the IR builder consumes.
func Tokenize(source []byte) []Event {
	reader := gtext.NewReader(source)
	doc := md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	w := &walker{source: source}
	w.walkChildren(doc)

	return w.events
}

type walker struct {
	source []byte
	events []Event
}

func (w *walker) emit(e Event) {
	w.events = append(w.events, e)
}

func (w *walker) walkChildren(n gast.Node) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		w.walkBlock(c)
	}
}

func (w *walker) walkBlock(n gast.Node) {
	switch node := n.(type) {
	case *gast.Paragraph:
		w.emit(Event{Kind: EventStart, Tag: Tag{Kind: TagParagraph}})
		w.walkInlineChildren(node)
		w.emit(Event{Kind: EventEnd, Tag: Tag{Kind: TagParagraph}})

	case *gast.TextBlock:
		// Tight list items carry their text in a TextBlock rather than a
		// Paragraph; the event contract has no tight/loose distinction, so
		// both surface as paragraphs.
		w.emit(Event{Kind: EventStart, Tag: Tag{Kind: TagParagraph}})
		w.walkInlineChildren(node)
		w.emit(Event{Kind: EventEnd, Tag: Tag{Kind: TagParagraph}})

	case *gast.Heading:
		tag := Tag{Kind: TagHeading, Level: node.Level}
		w.emit(Event{Kind: EventStart, Tag: tag})
		w.walkInlineChildren(node)
		w.emit(Event{Kind: EventEnd, Tag: tag})

	case *gast.Blockquote:
		w.emit(Event{Kind: EventStart, Tag: Tag{Kind: TagBlockQuote}})
		w.walkChildren(node)
		w.emit(Event{Kind: EventEnd, Tag: Tag{Kind: TagBlockQuote}})

	case *gast.FencedCodeBlock:
		lang := string(node.Language(w.source))
		tag := Tag{Kind: TagCodeBlock, Lang: lang}
		w.emit(Event{Kind: EventStart, Tag: tag})
		w.emit(Event{Kind: EventText, Text: linesText(node.Lines(), w.source)})
		w.emit(Event{Kind: EventEnd, Tag: tag})

	case *gast.CodeBlock:
		tag := Tag{Kind: TagCodeBlock}
		w.emit(Event{Kind: EventStart, Tag: tag})
		w.emit(Event{Kind: EventText, Text: linesText(node.Lines(), w.source)})
		w.emit(Event{Kind: EventEnd, Tag: tag})

	case *gast.List:
		tag := Tag{Kind: TagList, Ordered: node.IsOrdered(), Start: node.Start}
		if !node.IsOrdered() {
			tag.Start = 1
		}
		w.emit(Event{Kind: EventStart, Tag: tag})
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			item, ok := c.(*gast.ListItem)
			if !ok {
				continue
			}
			w.walkListItem(item)
		}
		w.emit(Event{Kind: EventEnd, Tag: tag})

	case *gast.ThematicBreak:
		w.emit(Event{Kind: EventRule})

	case *east.Table:
		w.walkTable(node)

	case *gast.Document:
		w.walkChildren(node)

	default:
		// Raw HTML, footnotes, math, metadata blocks: no events of their
		// own, but their children still surface.
		w.walkChildren(n)
	}
}

func (w *walker) walkListItem(item *gast.ListItem) {
	tag := Tag{Kind: TagItem}
	tag.Task = taskState(item)

	w.emit(Event{Kind: EventStart, Tag: tag})
	w.walkChildren(item)
	w.emit(Event{Kind: EventEnd, Tag: tag})
}

// taskState inspects an item's first paragraph for goldmark's task-list
// checkbox text-segment extension node and returns whether it is checked,
// or nil if this item is not a task.
func taskState(item *gast.ListItem) *bool {
	first := item.FirstChild()
	if first == nil {
		return nil
	}

	for c := first.FirstChild(); c != nil; c = c.NextSibling() {
		if box, ok := c.(*east.TaskCheckBox); ok {
			checked := box.IsChecked
			return &checked
		}
	}

	return nil
}

func (w *walker) walkTable(t *east.Table) {
	alignments := make([]ir.Alignment, 0, len(t.Alignments))
	for _, a := range t.Alignments {
		alignments = append(alignments, convertAlignment(a))
	}

	tag := Tag{Kind: TagTable, Alignments: alignments}
	w.emit(Event{Kind: EventStart, Tag: tag})

	for c := t.FirstChild(); c != nil; c = c.NextSibling() {
		switch row := c.(type) {
		case *east.TableHeader:
			w.emit(Event{Kind: EventStart, Tag: Tag{Kind: TagTableHead}})
			w.walkTableRow(row)
			w.emit(Event{Kind: EventEnd, Tag: Tag{Kind: TagTableHead}})
		case *east.TableRow:
			w.emit(Event{Kind: EventStart, Tag: Tag{Kind: TagTableRow}})
			w.walkTableRow(row)
			w.emit(Event{Kind: EventEnd, Tag: Tag{Kind: TagTableRow}})
		}
	}

	w.emit(Event{Kind: EventEnd, Tag: tag})
}

func (w *walker) walkTableRow(row gast.Node) {
	for c := row.FirstChild(); c != nil; c = c.NextSibling() {
		cell, ok := c.(*east.TableCell)
		if !ok {
			continue
		}

		w.emit(Event{Kind: EventStart, Tag: Tag{Kind: TagTableCell}})
		w.walkInlineChildren(cell)
		w.emit(Event{Kind: EventEnd, Tag: Tag{Kind: TagTableCell}})
	}
}

func convertAlignment(a east.Alignment) ir.Alignment {
	switch a {
	case east.AlignLeft:
		return ir.AlignLeft
	case east.AlignCenter:
		return ir.AlignCenter
	case east.AlignRight:
		return ir.AlignRight
	default:
		return ir.AlignNone
	}
}

func linesText(lines *gtext.Segments, source []byte) string {
	var b strings.Builder
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func (w *walker) walkInlineChildren(n gast.Node) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		w.walkInline(c)
	}
}

func (w *walker) walkInline(n gast.Node) {
	switch node := n.(type) {
	case *gast.Text:
		w.emit(Event{Kind: EventText, Text: string(node.Segment.Value(w.source))})
		if node.HardLineBreak() {
			w.emit(Event{Kind: EventHardBreak})
		} else if node.SoftLineBreak() {
			w.emit(Event{Kind: EventSoftBreak})
		}

	case *gast.String:
		w.emit(Event{Kind: EventText, Text: string(node.Value)})

	case *gast.CodeSpan:
		w.emit(Event{Kind: EventCode, Text: inlineText(node, w.source)})

	case *gast.Emphasis:
		kind := TagEmphasis
		if node.Level >= 2 {
			kind = TagStrong
		}
		tag := Tag{Kind: kind}
		w.emit(Event{Kind: EventStart, Tag: tag})
		w.walkInlineChildren(node)
		w.emit(Event{Kind: EventEnd, Tag: tag})

	case *east.Strikethrough:
		tag := Tag{Kind: TagStrikethrough}
		w.emit(Event{Kind: EventStart, Tag: tag})
		w.walkInlineChildren(node)
		w.emit(Event{Kind: EventEnd, Tag: tag})

	case *gast.Link:
		tag := Tag{Kind: TagLink, URL: string(node.Destination), Title: string(node.Title)}
		w.emit(Event{Kind: EventStart, Tag: tag})
		w.walkInlineChildren(node)
		w.emit(Event{Kind: EventEnd, Tag: tag})

	case *gast.AutoLink:
		url := string(node.URL(w.source))
		tag := Tag{Kind: TagLink, URL: url}
		w.emit(Event{Kind: EventStart, Tag: tag})
		w.emit(Event{Kind: EventText, Text: string(node.Label(w.source))})
		w.emit(Event{Kind: EventEnd, Tag: tag})

	case *gast.Image:
		tag := Tag{Kind: TagImage, URL: string(node.Destination), Title: string(node.Title)}
		w.emit(Event{Kind: EventStart, Tag: tag})
		w.emit(Event{Kind: EventText, Text: inlineText(node, w.source)})
		w.emit(Event{Kind: EventEnd, Tag: tag})

	default:
		// Raw inline HTML and other unknown inline nodes are ignored.
		w.walkInlineChildren(n)
	}
}

// inlineText flattens a node's inline text children (used for code spans
// and image alt text, both of which goldmark represents as child Text
// nodes rather than a single string field).
func inlineText(n gast.Node, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*gast.Text); ok {
			b.Write(t.Segment.Value(source))

			continue
		}
		b.WriteString(inlineText(c, source))
	}

	return b.String()
}
