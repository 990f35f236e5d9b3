package irbuilder

import "github.com/connerohnesorge/lumen/internal/ir"

// fixupLists walks a block tree looking for List nodes and applies the
// quirk-correction passes to each one, recursing into block quotes,
// callouts, and list-item content so every nesting depth is covered.
func fixupLists(blocks []ir.Block) {
	for _, blk := range blocks {
		switch b := blk.(type) {
		case *ir.List:
			fixupList(b)
		case *ir.BlockQuote:
			fixupLists(b.Blocks)
		case *ir.Callout:
			fixupLists(b.Content)
		}
	}
}

// fixupList applies, in order: the label-promotion pass (splitting a
// merged "Label:" run back into its own paragraph) and the flatten-only
// pass (splicing a child list up one level when the parent item carries
// no content of its own), then recurses into the resulting items.
func fixupList(list *ir.List) {
	for i := range list.Items {
		promoteLabelItem(&list.Items[i])
	}

	list.Items = flattenOnlyNestedLists(list.Items)

	for i := range list.Items {
		fixupLists(list.Items[i].Content)
	}
}

// promoteLabelItem detects "parent item with exactly one child block that
// is a List, whose first nested item's first paragraph has >= 2 inline
// elements" and splits the first inline off into a new paragraph owned by
// the parent item. Line breaks that joined the label to the child's own
// text are dropped from the front of the child's paragraph.
func promoteLabelItem(item *ir.ListItem) {
	if len(item.Content) != 1 {
		return
	}

	childList, ok := item.Content[0].(*ir.List)
	if !ok || len(childList.Items) == 0 {
		return
	}

	firstNested := &childList.Items[0]
	if len(firstNested.Content) == 0 {
		return
	}

	para, ok := firstNested.Content[0].(*ir.Paragraph)
	if !ok || len(para.Content) < 2 {
		return
	}

	promoted := para.Content[0]
	rest := para.Content[1:]
	for len(rest) > 0 {
		switch rest[0].(type) {
		case *ir.SoftBreak, *ir.LineBreak:
			rest = rest[1:]

			continue
		}

		break
	}
	para.Content = rest

	item.Content = []ir.Block{
		&ir.Paragraph{Content: []ir.Inline{promoted}},
		childList,
	}
}

// flattenOnlyNestedLists splices the items of any child list up one level
// when its parent item carries no content beyond that nested list.
func flattenOnlyNestedLists(items []ir.ListItem) []ir.ListItem {
	result := make([]ir.ListItem, 0, len(items))

	for _, item := range items {
		if len(item.Content) == 1 {
			if childList, ok := item.Content[0].(*ir.List); ok {
				result = append(result, childList.Items...)

				continue
			}
		}

		result = append(result, item)
	}

	return result
}
