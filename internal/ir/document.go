// Package ir defines Lumen's intermediate representation: a semantic,
// stable tree that any Markdown frontend can produce and that the layout
// engine is the sole consumer of. It intentionally carries no visual
// information — fonts, colors, and spacing belong to internal/theme and
// internal/layout, not here.
package ir

// Document is the root of a parsed Markdown document.
type Document struct {
	Metadata Metadata
	Blocks   []Block
}

// NewDocument returns an empty document with initialized frontmatter.
func NewDocument() *Document {
	return &Document{Metadata: Metadata{Frontmatter: map[string]string{}}}
}

// Metadata carries document-level information extracted outside the
// block/inline flow (frontmatter, title).
type Metadata struct {
	Title       string
	Frontmatter map[string]string
}
