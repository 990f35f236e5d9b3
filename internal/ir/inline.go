package ir

import "strings"

// Inline is a horizontally-flowing element within a block.
type Inline interface {
	isInline()
}

// Text is a plain run of text.
type Text struct {
	Value string
}

func (*Text) isInline() {}

// Strong is semantic bold content.
type Strong struct {
	Content []Inline
}

func (*Strong) isInline() {}

// Emphasis is semantic italic content.
type Emphasis struct {
	Content []Inline
}

func (*Emphasis) isInline() {}

// Strikethrough is struck-through content (GFM extension).
type Strikethrough struct {
	Content []Inline
}

func (*Strikethrough) isInline() {}

// Code is an inline code span.
type Code struct {
	Value string
}

func (*Code) isInline() {}

// Link is a hyperlink wrapping inline text.
type Link struct {
	URL   string
	Title string // empty if no title attribute
	Text  []Inline
}

func (*Link) isInline() {}

// Image is an image reference. Decoding/fetching the image is out of scope;
// the layout engine only ever reserves space and records an ImageReference.
type Image struct {
	URL   string
	Alt   string
	Title string
}

func (*Image) isInline() {}

// LineBreak is a hard line break (two trailing spaces or a backslash).
type LineBreak struct{}

func (*LineBreak) isInline() {}

// SoftBreak is a soft line break: a single newline in the source that does
// not force a hard break. The inline text layout engine treats this as a
// line-flush, not as a literal space; ToPlainText renders it as a space to
// match prose-extraction expectations.
type SoftBreak struct{}

func (*SoftBreak) isInline() {}

// ToPlainText recursively extracts the plain-text content of an inline
// node. Used for heading slugs, image alt text, and search.
func ToPlainText(in Inline) string {
	switch v := in.(type) {
	case *Text:
		return v.Value
	case *Strong:
		return joinPlainText(v.Content)
	case *Emphasis:
		return joinPlainText(v.Content)
	case *Strikethrough:
		return joinPlainText(v.Content)
	case *Code:
		return v.Value
	case *Link:
		return joinPlainText(v.Text)
	case *Image:
		return v.Alt
	case *LineBreak:
		return "\n"
	case *SoftBreak:
		return " "
	default:
		return ""
	}
}

func joinPlainText(inlines []Inline) string {
	var b strings.Builder
	for _, in := range inlines {
		b.WriteString(ToPlainText(in))
	}

	return b.String()
}
