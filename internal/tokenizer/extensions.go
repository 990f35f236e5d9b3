package tokenizer

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// extensionsGFM returns the GitHub-flavored Markdown extensions the
// viewer depends on: tables, strikethrough, and task lists.
func extensionsGFM() []goldmark.Extender {
	return []goldmark.Extender{
		extension.Table,
		extension.Strikethrough,
		extension.TaskList,
	}
}
