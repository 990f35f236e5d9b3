package layout

import (
	"strconv"
	"strings"
	"testing"

	"github.com/connerohnesorge/lumen/internal/ir"
	"github.com/connerohnesorge/lumen/internal/irbuilder"
	"github.com/connerohnesorge/lumen/internal/theme"
	"github.com/connerohnesorge/lumen/internal/tokenizer"
)

// benchDocument builds a document with the given number of sections, each
// carrying a heading, a styled paragraph, and a short list.
func benchDocument(sections int) *ir.Document {
	var b strings.Builder
	b.WriteString("# Test Document\n\n")

	for i := 0; i < sections; i++ {
		b.WriteString("## Section " + strconv.Itoa(i) + "\n\n")
		b.WriteString("This is a paragraph with **bold** and *italic* text. ")
		b.WriteString("It also has `inline code` and [links](https://example.com).\n\n")
		b.WriteString("- Item 1\n- Item 2\n- Item 3\n\n")
	}

	return irbuilder.Build(tokenizer.Tokenize([]byte(b.String())))
}

func benchTheme(b *testing.B) *theme.Theme {
	b.Helper()

	th, err := theme.Get("docs")
	if err != nil {
		b.Fatal(err)
	}

	return th
}

func BenchmarkLayoutSmall(b *testing.B) {
	doc := benchDocument(5)
	th := benchTheme(b)
	vp := NewViewport(80, 24)
	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		LayoutDocument(doc, th, vp, ImageModeSidebar)
	}
}

func BenchmarkLayoutMedium(b *testing.B) {
	doc := benchDocument(50)
	th := benchTheme(b)
	vp := NewViewport(80, 24)
	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		LayoutDocument(doc, th, vp, ImageModeSidebar)
	}
}

func BenchmarkLayoutLarge(b *testing.B) {
	doc := benchDocument(200)
	th := benchTheme(b)
	vp := NewViewport(80, 24)
	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		LayoutDocument(doc, th, vp, ImageModeSidebar)
	}
}

// BenchmarkLayoutByWidth measures how wrap cost scales with viewport width.
func BenchmarkLayoutByWidth(b *testing.B) {
	doc := benchDocument(50)
	th := benchTheme(b)

	for _, width := range []int{40, 80, 120, 200} {
		b.Run(strconv.Itoa(width), func(b *testing.B) {
			vp := NewViewport(width, 24)
			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				LayoutDocument(doc, th, vp, ImageModeSidebar)
			}
		})
	}
}
