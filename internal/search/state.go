package search

import "github.com/connerohnesorge/lumen/internal/layout"

// State is the navigable search-mode state a viewer drives: a query
// buffer under active edit, the matches found against it, and a current
// selection among them.
type State struct {
	Needle  string
	Matches []Match

	currentIndex int
	hasCurrent   bool

	Active bool
}

// New returns an inactive, empty search state.
func New() *State {
	return &State{}
}

// Activate enters search-input mode, discarding any prior query/results.
func (s *State) Activate() {
	s.Active = true
	s.Needle = ""
	s.Matches = nil
	s.hasCurrent = false
}

// Accept leaves input mode but keeps the current results selected.
func (s *State) Accept() {
	s.Active = false
}

// Deactivate clears the query and results and leaves search mode
// entirely.
func (s *State) Deactivate() {
	s.Active = false
	s.Needle = ""
	s.Matches = nil
	s.hasCurrent = false
}

// AddChar appends a rune to the query buffer.
func (s *State) AddChar(c rune) {
	s.Needle += string(c)
}

// Backspace removes the last rune of the query buffer, if any.
func (s *State) Backspace() {
	if s.Needle == "" {
		return
	}

	runes := []rune(s.Needle)
	s.Needle = string(runes[:len(runes)-1])
}

// ExecuteSearch re-runs Find against root and selects the first match,
// if any.
func (s *State) ExecuteSearch(root *layout.LayoutNode) {
	s.Matches = nil
	s.hasCurrent = false

	if s.Needle == "" {
		return
	}

	s.Matches = Find(root, s.Needle)
	if len(s.Matches) > 0 {
		s.currentIndex = 0
		s.hasCurrent = true
	}
}

// NextMatch advances the current selection, wrapping to the first match.
func (s *State) NextMatch() {
	if len(s.Matches) == 0 {
		return
	}

	if s.hasCurrent {
		s.currentIndex = (s.currentIndex + 1) % len(s.Matches)
	} else {
		s.currentIndex = 0
		s.hasCurrent = true
	}
}

// PrevMatch retreats the current selection, wrapping to the last match.
func (s *State) PrevMatch() {
	if len(s.Matches) == 0 {
		return
	}

	if s.hasCurrent {
		if s.currentIndex == 0 {
			s.currentIndex = len(s.Matches) - 1
		} else {
			s.currentIndex--
		}
	} else {
		s.currentIndex = len(s.Matches) - 1
		s.hasCurrent = true
	}
}

// CurrentMatch returns the selected match, or false if none is selected.
func (s *State) CurrentMatch() (Match, bool) {
	if !s.hasCurrent || s.currentIndex >= len(s.Matches) {
		return Match{}, false
	}

	return s.Matches[s.currentIndex], true
}

// MatchCount returns the number of matches found by the last search.
func (s *State) MatchCount() int {
	return len(s.Matches)
}
