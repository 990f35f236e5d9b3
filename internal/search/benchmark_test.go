package search_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/connerohnesorge/lumen/internal/irbuilder"
	"github.com/connerohnesorge/lumen/internal/layout"
	"github.com/connerohnesorge/lumen/internal/search"
	"github.com/connerohnesorge/lumen/internal/theme"
	"github.com/connerohnesorge/lumen/internal/tokenizer"
)

// searchableTree lays out a document with the given number of sections,
// each mentioning "test" several times.
func searchableTree(b *testing.B, sections int) *layout.LayoutTree {
	b.Helper()

	var sb strings.Builder
	sb.WriteString("# Searchable Document\n\n")
	for i := 0; i < sections; i++ {
		sb.WriteString("## Section " + strconv.Itoa(i) + " about testing\n\n")
		sb.WriteString("This paragraph contains the word test multiple times. ")
		sb.WriteString("We test our code to ensure quality. Testing is important.\n\n")
		sb.WriteString("- test item one\n- another test item\n- final test entry\n\n")
	}

	doc := irbuilder.Build(tokenizer.Tokenize([]byte(sb.String())))
	th, err := theme.Get("docs")
	if err != nil {
		b.Fatal(err)
	}

	return layout.LayoutDocument(doc, th, layout.NewViewport(80, 24), layout.ImageModeSidebar)
}

func BenchmarkSearchSingleMatch(b *testing.B) {
	doc := irbuilder.Build(tokenizer.Tokenize([]byte("# Title\n\nThis is a unique_word in the document.\n")))
	th, err := theme.Get("docs")
	if err != nil {
		b.Fatal(err)
	}
	tree := layout.LayoutDocument(doc, th, layout.NewViewport(80, 24), layout.ImageModeSidebar)
	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		search.Find(&tree.Root, "unique_word")
	}
}

func BenchmarkSearchManyMatches(b *testing.B) {
	tree := searchableTree(b, 50)
	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		search.Find(&tree.Root, "test")
	}
}

func BenchmarkSearchNoMatches(b *testing.B) {
	tree := searchableTree(b, 50)
	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		search.Find(&tree.Root, "nonexistent_xyz")
	}
}

func BenchmarkSearchByDocumentSize(b *testing.B) {
	for _, sections := range []int{10, 50, 100, 200} {
		tree := searchableTree(b, sections)
		b.Run(strconv.Itoa(sections), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				search.Find(&tree.Root, "test")
			}
		})
	}
}
