package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/connerohnesorge/lumen/internal/ir"
	"github.com/connerohnesorge/lumen/internal/theme"
)

// ImagePlacement is a hint for an inline-mode image: which wrapped line it
// was encountered on, plus its url/alt. The block layout pass turns these
// into allocated Image child nodes; text layout never reserves their space.
type ImagePlacement struct {
	LineIndex int
	URL       string
	Alt       string
}

// imageCollector accumulates ImageReference values (sidebar mode) as
// inline layout walks a block's content, threading the block's absolute
// y-offset through the recursive walk.
type imageCollector struct {
	yOffset int
	images  *[]ImageReference
}

func (c *imageCollector) record(lineIndex int, path, alt string) {
	*c.images = append(*c.images, ImageReference{
		Path:      path,
		AltText:   alt,
		YPosition: c.yOffset + lineIndex,
	})
}

// inlineWrapState is the running mutable state of the greedy word-wrap
// walk: the line under construction, its current display width, the
// finished lines, the active style/link, and whether anything has been
// emitted on the current line yet.
type inlineWrapState struct {
	width int
	theme *theme.Theme
	mode  string // "sidebar" or "inline"

	lines      []Line
	current    Line
	currentW   int
	style      TextStyle
	linkURL    string
	imageURL   string
	imageAlt   string
	placements []ImagePlacement
	images     *imageCollector
}

// WrapInlines greedily word-wraps a sequence of Inline nodes within width
// w, returning the wrapped lines and any inline-mode image placement
// hints. yOffset is the absolute document row this block's content starts
// at, used only for sidebar-mode ImageReference position bookkeeping.
func WrapInlines(content []ir.Inline, w int, th *theme.Theme, yOffset int, mode string, images *[]ImageReference) ([]Line, []ImagePlacement) {
	st := &inlineWrapState{
		width:  w,
		theme:  th,
		mode:   mode,
		images: &imageCollector{yOffset: yOffset, images: images},
	}

	for _, in := range content {
		st.walk(in)
	}
	st.flush()

	if len(st.lines) == 0 {
		st.lines = []Line{{}}
	}

	return st.lines, st.placements
}

func (s *inlineWrapState) flush() {
	s.lines = append(s.lines, s.current)
	s.current = Line{}
	s.currentW = 0
}

func cellWidth(s string) int {
	return runewidth.StringWidth(s)
}

// addSegment appends text in the current style, tagging it with the
// active link URL (if any) so the renderer can highlight or generate
// clickable escapes for it.
func (s *inlineWrapState) addSegment(text string) {
	seg := TextSegment{
		Text:     text,
		Style:    s.style,
		LinkURL:  s.linkURL,
		ImageURL: s.imageURL,
		ImageAlt: s.imageAlt,
	}
	s.current.Segments = append(s.current.Segments, seg)
}

func (s *inlineWrapState) appendWord(word string) {
	wordW := cellWidth(word)

	if wordW > s.width {
		s.appendLongWord(word)

		return
	}

	needSpace := s.currentW > 0
	extra := wordW
	if needSpace {
		extra++
	}

	if s.currentW > 0 && s.currentW+extra > s.width {
		s.flush()
		needSpace = false
	}

	if needSpace {
		s.addSegment(" ")
		s.currentW++
	}

	s.addSegment(word)
	s.currentW += wordW
}

// appendLongWord breaks a word wider than s.width into fixed-width chunks,
// each sized to the remaining room on the current line (or the full width
// once a line is flushed).
func (s *inlineWrapState) appendLongWord(word string) {
	runes := []rune(word)
	for len(runes) > 0 {
		room := s.width - s.currentW
		if room <= 0 {
			s.flush()
			room = s.width
		}

		chunk, rest := takeChunk(runes, room)
		s.addSegment(string(chunk))
		s.currentW += cellWidth(string(chunk))
		runes = rest
	}
}

// takeChunk greedily takes runes from the front of runes whose combined
// display width fits within room, returning the chunk and the remainder.
// Always takes at least one rune so pathologically narrow widths make
// progress.
func takeChunk(runes []rune, room int) (chunk, rest []rune) {
	w := 0
	i := 0
	for i < len(runes) {
		rw := runewidth.RuneWidth(runes[i])
		if i > 0 && w+rw > room {
			break
		}
		w += rw
		i++
	}
	if i == 0 {
		i = 1
	}

	return runes[:i], runes[i:]
}

func (s *inlineWrapState) walk(in ir.Inline) {
	switch v := in.(type) {
	case *ir.Text:
		s.walkText(v.Value)
	case *ir.Strong:
		s.withDerivedStyle(themeTextStyle(s.theme.Inlines.Strong), v.Content)
	case *ir.Emphasis:
		s.withDerivedStyle(themeTextStyle(s.theme.Inlines.Emphasis), v.Content)
	case *ir.Strikethrough:
		s.withDerivedStyle(themeTextStyle(s.theme.Inlines.Strikethrough), v.Content)
	case *ir.Code:
		saved := s.style
		s.style = themeTextStyle(s.theme.Inlines.Code)
		s.walkText(v.Value)
		s.style = saved
	case *ir.Link:
		s.walkLink(v)
	case *ir.Image:
		s.walkImage(v)
	case *ir.LineBreak:
		s.flush()
	case *ir.SoftBreak:
		s.flush()
	}
}

// withDerivedStyle pushes style for the duration of walking content, then
// restores whatever style was active before.
func (s *inlineWrapState) withDerivedStyle(style TextStyle, content []ir.Inline) {
	saved := s.style
	s.style = style
	for _, child := range content {
		s.walk(child)
	}
	s.style = saved
}

func (s *inlineWrapState) walkText(text string) {
	for _, word := range strings.Fields(text) {
		s.appendWord(word)
	}
}

// walkLink pushes the link foreground style and installs the link URL on
// all nested segments. When the theme's URL display mode is inline, it
// appends " (url)" in muted color with no URL tag of its own, so the
// displayed URL text is not itself clickable.
func (s *inlineWrapState) walkLink(l *ir.Link) {
	savedStyle, savedLink := s.style, s.linkURL

	s.style = TextStyle{Foreground: string(s.theme.Inlines.Link.Foreground)}
	s.linkURL = l.URL

	for _, child := range l.Text {
		s.walk(child)
	}

	s.linkURL = savedLink

	if s.theme.Inlines.Link.ShowURL == theme.URLInline {
		s.style = TextStyle{Foreground: string(s.theme.Colors.Muted)}
		s.appendWord("(" + l.URL + ")")
	}

	s.style = savedStyle
}

// walkImage records a placement for the current line. In sidebar mode it
// emits a muted placeholder segment and an ImageReference; in inline mode
// it records a hint for the block layout pass to allocate space for later,
// emitting no placeholder text of its own.
func (s *inlineWrapState) walkImage(img *ir.Image) {
	lineIndex := len(s.lines)

	if s.mode == "inline" {
		s.placements = append(s.placements, ImagePlacement{
			LineIndex: lineIndex,
			URL:       img.URL,
			Alt:       img.Alt,
		})

		return
	}

	placeholder := "[IMAGE: " + img.Alt + "]"
	saved := s.style
	s.style = TextStyle{Foreground: string(s.theme.Colors.Muted)}
	s.imageURL, s.imageAlt = img.URL, img.Alt
	s.walkText(placeholder)
	s.imageURL, s.imageAlt = "", ""
	s.style = saved

	s.images.record(lineIndex, img.URL, img.Alt)
}

func themeTextStyle(t theme.TextStyle) TextStyle {
	var fg, bg string
	if t.Foreground != nil {
		fg = string(*t.Foreground)
	}
	if t.Background != nil {
		bg = string(*t.Background)
	}

	return TextStyle{Foreground: fg, Background: bg, Weight: t.Weight, Style: t.Style}
}
