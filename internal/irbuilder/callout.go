package irbuilder

import (
	"strings"

	"github.com/connerohnesorge/lumen/internal/ir"
)

// rewriteCallouts walks a block tree rewriting a closing BlockQuote into
// a Callout whenever its first block is a Paragraph whose leading Text
// inlines begin with a recognized "[!KIND]" marker.
func rewriteCallouts(blocks []ir.Block) {
	for i, blk := range blocks {
		switch b := blk.(type) {
		case *ir.BlockQuote:
			rewriteCallouts(b.Blocks)

			if kind, rest, ok := detectCallout(b.Blocks); ok {
				blocks[i] = &ir.Callout{Kind: kind, Content: rest}
			}

		case *ir.Callout:
			rewriteCallouts(b.Content)

		case *ir.List:
			for j := range b.Items {
				rewriteCallouts(b.Items[j].Content)
			}
		}
	}
}

// detectCallout reports whether content opens with a callout marker and,
// if so, returns the matched kind and content with the marker stripped
// from the first text run (and the run's paragraph dropped entirely if
// that leaves it empty). The first text run is the paragraph's leading
// sequence of adjacent Text inlines joined together, since the tokenizer
// may split "[!KIND]" into several Text events at the bracket.
func detectCallout(content []ir.Block) (ir.CalloutKind, []ir.Block, bool) {
	if len(content) == 0 {
		return 0, nil, false
	}

	para, ok := content[0].(*ir.Paragraph)
	if !ok || len(para.Content) == 0 {
		return 0, nil, false
	}

	var lead strings.Builder
	runLen := 0
	for runLen < len(para.Content) {
		text, ok := para.Content[runLen].(*ir.Text)
		if !ok {
			break
		}
		lead.WriteString(text.Value)
		runLen++
	}
	if runLen == 0 {
		return 0, nil, false
	}

	kind, remainder, matched := parseCalloutMarker(lead.String())
	if !matched {
		return 0, nil, false
	}

	newInlines := make([]ir.Inline, 0, len(para.Content))
	if remainder != "" {
		newInlines = append(newInlines, &ir.Text{Value: remainder})
	}
	newInlines = append(newInlines, para.Content[runLen:]...)

	rest := make([]ir.Block, 0, len(content))
	if len(newInlines) > 0 {
		rest = append(rest, &ir.Paragraph{Content: newInlines})
	}
	rest = append(rest, content[1:]...)

	return kind, rest, true
}

// parseCalloutMarker recognizes a leading "[!KIND]" marker, case
// insensitive, and returns the callout kind plus the text remaining
// after the marker and any following whitespace are stripped.
func parseCalloutMarker(s string) (ir.CalloutKind, string, bool) {
	trimmed := strings.TrimLeft(s, " \t")
	if !strings.HasPrefix(trimmed, "[!") {
		return 0, "", false
	}

	end := strings.Index(trimmed, "]")
	if end < 0 {
		return 0, "", false
	}

	kind, ok := calloutKindFromMarker(strings.ToUpper(trimmed[2:end]))
	if !ok {
		return 0, "", false
	}

	remainder := strings.TrimLeft(trimmed[end+1:], " \t")

	return kind, remainder, true
}

func calloutKindFromMarker(marker string) (ir.CalloutKind, bool) {
	switch marker {
	case "NOTE":
		return ir.CalloutNote, true
	case "WARNING":
		return ir.CalloutWarning, true
	case "IMPORTANT":
		return ir.CalloutImportant, true
	case "TIP":
		return ir.CalloutTip, true
	case "CAUTION":
		return ir.CalloutCaution, true
	default:
		return 0, false
	}
}
