// Package irbuilder converts a tokenizer.Event stream into an
// ir.Document with a two-stack push-down automaton: a block-context
// stack tracking open containers (paragraph/heading/blockquote/list/
// list-item/code-block/table/table-head/table-row/table-cell) and an
// inline-context stack tracking open strong/emphasis/strikethrough/
// link/image runs.
package irbuilder

import (
	"strings"

	"github.com/connerohnesorge/lumen/internal/ir"
	"github.com/connerohnesorge/lumen/internal/tokenizer"
)

// blockFrame is one entry of the block-context stack. Not every field is
// meaningful for every kind: Blocks backs root/BlockQuote/ListItem
// containers, Items backs List, Headers/Rows/Cells back table contexts.
type blockFrame struct {
	kind tokenizer.TagKind

	level   int
	lang    string
	ordered bool
	start   int
	task    *bool

	code strings.Builder

	blocks  []ir.Block
	items   []ir.ListItem
	headers []ir.TableCell
	rows    [][]ir.TableCell
	cells   []ir.TableCell

	alignment []ir.Alignment
}

// inlineFrame is one entry of the inline-context stack: the saved
// current_inlines buffer plus the tag that opened this nested run.
type inlineFrame struct {
	tag        tokenizer.Tag
	savedLines []ir.Inline
}

// Builder runs the PDA over one event stream. It is not reusable across
// documents; construct a fresh Builder (or call Build, which does so)
// per parse.
type Builder struct {
	blocks  []*blockFrame
	inlines []*inlineFrame
	current []ir.Inline
}

// Build runs the tokenizer event stream into a complete Document,
// applying the list-item quirk correction and callout-parsing passes
// afterward.
func Build(events []tokenizer.Event) *ir.Document {
	b := &Builder{blocks: []*blockFrame{{kind: -1}}}

	for _, ev := range events {
		b.apply(ev)
	}

	doc := ir.NewDocument()
	doc.Blocks = b.blocks[0].blocks

	fixupLists(doc.Blocks)
	rewriteCallouts(doc.Blocks)

	return doc
}

func (b *Builder) top() *blockFrame {
	return b.blocks[len(b.blocks)-1]
}

func (b *Builder) pushFrame(f *blockFrame) {
	b.blocks = append(b.blocks, f)
}

// popFrame removes and returns the top frame, guarding every pop with a
// tag-kind check so malformed nesting from the tokenizer is tolerated
// rather than propagated.
func (b *Builder) popFrame(kind tokenizer.TagKind) *blockFrame {
	if len(b.blocks) <= 1 {
		return nil
	}

	f := b.top()
	if f.kind != kind {
		return nil
	}

	b.blocks = b.blocks[:len(b.blocks)-1]

	return f
}

// pushBlock inserts blk into the innermost open container: blockquote
// content, list-item content, or the Document otherwise.
func (b *Builder) pushBlock(blk ir.Block) {
	top := b.top()
	top.blocks = append(top.blocks, blk)
}

func (b *Builder) apply(ev tokenizer.Event) {
	switch ev.Kind {
	case tokenizer.EventStart:
		b.applyStart(ev.Tag)
	case tokenizer.EventEnd:
		b.applyEnd(ev.Tag)
	case tokenizer.EventText:
		b.applyText(ev.Text)
	case tokenizer.EventCode:
		b.current = append(b.current, &ir.Code{Value: ev.Text})
	case tokenizer.EventSoftBreak:
		b.current = append(b.current, &ir.SoftBreak{})
	case tokenizer.EventHardBreak:
		b.current = append(b.current, &ir.LineBreak{})
	case tokenizer.EventRule:
		b.pushBlock(&ir.HorizontalRule{})
	}
}

func (b *Builder) applyText(text string) {
	if b.top().kind == tokenizer.TagCodeBlock {
		b.top().code.WriteString(text)

		return
	}

	b.current = append(b.current, &ir.Text{Value: text})
}

func (b *Builder) applyStart(tag tokenizer.Tag) {
	switch tag.Kind {
	case tokenizer.TagParagraph, tokenizer.TagHeading:
		b.pushFrame(&blockFrame{kind: tag.Kind, level: tag.Level})

	case tokenizer.TagCodeBlock:
		b.pushFrame(&blockFrame{kind: tag.Kind, lang: tag.Lang})

	case tokenizer.TagBlockQuote:
		b.pushFrame(&blockFrame{kind: tag.Kind})

	case tokenizer.TagList:
		b.pushFrame(&blockFrame{kind: tag.Kind, ordered: tag.Ordered, start: tag.Start})

	case tokenizer.TagItem:
		b.pushFrame(&blockFrame{kind: tag.Kind, task: tag.Task})

	case tokenizer.TagTable:
		b.pushFrame(&blockFrame{kind: tag.Kind, alignment: tag.Alignments})

	case tokenizer.TagTableHead, tokenizer.TagTableRow:
		b.pushFrame(&blockFrame{kind: tag.Kind})

	case tokenizer.TagTableCell:
		b.pushFrame(&blockFrame{kind: tag.Kind})

	case tokenizer.TagStrong, tokenizer.TagEmphasis, tokenizer.TagStrikethrough,
		tokenizer.TagLink, tokenizer.TagImage:
		b.inlines = append(b.inlines, &inlineFrame{tag: tag, savedLines: b.current})
		b.current = nil
	}
}

func (b *Builder) applyEnd(tag tokenizer.Tag) {
	switch tag.Kind {
	case tokenizer.TagParagraph:
		f := b.popFrame(tag.Kind)
		if f == nil {
			return
		}
		b.pushBlock(&ir.Paragraph{Content: b.current})
		b.current = nil

	case tokenizer.TagHeading:
		f := b.popFrame(tag.Kind)
		if f == nil {
			return
		}
		b.pushBlock(&ir.Heading{Level: f.level, Content: b.current})
		b.current = nil

	case tokenizer.TagCodeBlock:
		f := b.popFrame(tag.Kind)
		if f == nil {
			return
		}
		b.pushBlock(&ir.CodeBlock{Lang: f.lang, Code: f.code.String()})

	case tokenizer.TagBlockQuote:
		f := b.popFrame(tag.Kind)
		if f == nil {
			return
		}
		b.pushBlock(&ir.BlockQuote{Blocks: f.blocks})

	case tokenizer.TagList:
		f := b.popFrame(tag.Kind)
		if f == nil {
			return
		}
		b.pushBlock(&ir.List{Ordered: f.ordered, Start: f.start, Items: f.items})

	case tokenizer.TagItem:
		f := b.popFrame(tag.Kind)
		if f == nil {
			return
		}
		parent := b.top()
		parent.items = append(parent.items, ir.ListItem{Content: f.blocks, Task: f.task})

	case tokenizer.TagTableCell:
		if f := b.popFrame(tag.Kind); f == nil {
			return
		}
		parent := b.top()
		parent.cells = append(parent.cells, ir.TableCell{Content: b.current})
		b.current = nil

	case tokenizer.TagTableHead:
		f := b.popFrame(tag.Kind)
		if f == nil {
			return
		}
		b.top().headers = f.cells

	case tokenizer.TagTableRow:
		f := b.popFrame(tag.Kind)
		if f == nil {
			return
		}
		parent := b.top()
		parent.rows = append(parent.rows, f.cells)

	case tokenizer.TagTable:
		f := b.popFrame(tag.Kind)
		if f == nil {
			return
		}
		b.pushBlock(&ir.Table{Headers: f.headers, Rows: f.rows, Alignment: f.alignment})

	case tokenizer.TagStrong, tokenizer.TagEmphasis, tokenizer.TagStrikethrough,
		tokenizer.TagLink, tokenizer.TagImage:
		b.closeInline(tag)
	}
}

// closeInline pops the inline-context stack, wraps the finished run in
// its variant, and appends it to the restored current_inlines buffer.
func (b *Builder) closeInline(tag tokenizer.Tag) {
	if len(b.inlines) == 0 {
		return
	}

	frame := b.inlines[len(b.inlines)-1]
	if frame.tag.Kind != tag.Kind {
		return
	}
	b.inlines = b.inlines[:len(b.inlines)-1]

	content := b.current
	b.current = frame.savedLines

	switch tag.Kind {
	case tokenizer.TagStrong:
		b.current = append(b.current, &ir.Strong{Content: content})
	case tokenizer.TagEmphasis:
		b.current = append(b.current, &ir.Emphasis{Content: content})
	case tokenizer.TagStrikethrough:
		b.current = append(b.current, &ir.Strikethrough{Content: content})
	case tokenizer.TagLink:
		b.current = append(b.current, &ir.Link{URL: tag.URL, Title: tag.Title, Text: content})
	case tokenizer.TagImage:
		b.current = append(b.current, &ir.Image{URL: tag.URL, Title: tag.Title, Alt: joinText(content)})
	}
}

func joinText(content []ir.Inline) string {
	var sb strings.Builder
	for _, in := range content {
		sb.WriteString(ir.ToPlainText(in))
	}

	return sb.String()
}
