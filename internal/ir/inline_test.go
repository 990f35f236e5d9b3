package ir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/connerohnesorge/lumen/internal/ir"
)

func TestToPlainTextFlattensNesting(t *testing.T) {
	in := &ir.Strong{Content: []ir.Inline{
		&ir.Text{Value: "bold "},
		&ir.Emphasis{Content: []ir.Inline{&ir.Text{Value: "and italic"}}},
	}}

	assert.Equal(t, "bold and italic", ir.ToPlainText(in))
}

func TestToPlainTextLinkUsesText(t *testing.T) {
	link := &ir.Link{URL: "https://example.com", Text: []ir.Inline{&ir.Text{Value: "click here"}}}

	assert.Equal(t, "click here", ir.ToPlainText(link))
}

func TestToPlainTextImageUsesAlt(t *testing.T) {
	img := &ir.Image{URL: "cat.png", Alt: "a cat"}

	assert.Equal(t, "a cat", ir.ToPlainText(img))
}

func TestToPlainTextSoftBreakIsSpace(t *testing.T) {
	assert.Equal(t, " ", ir.ToPlainText(&ir.SoftBreak{}))
}

func TestToPlainTextLineBreakIsNewline(t *testing.T) {
	assert.Equal(t, "\n", ir.ToPlainText(&ir.LineBreak{}))
}

func TestToPlainTextCodeSpan(t *testing.T) {
	assert.Equal(t, "fmt.Println", ir.ToPlainText(&ir.Code{Value: "fmt.Println"}))
}
