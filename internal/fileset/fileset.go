// Package fileset tracks the set of Markdown files open in one viewer
// session: parsed documents, their cached layouts, and per-file scroll
// positions, switchable without losing navigation state.
package fileset

import (
	"bytes"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/connerohnesorge/lumen/internal/ir"
	"github.com/connerohnesorge/lumen/internal/irbuilder"
	"github.com/connerohnesorge/lumen/internal/layout"
	"github.com/connerohnesorge/lumen/internal/lumenerrs"
	"github.com/connerohnesorge/lumen/internal/tokenizer"
)

// OpenFile is one loaded Markdown file: its path, parsed document, an
// optional cached layout (invalidated on reload), and the scroll offset
// to restore when switching back to it.
type OpenFile struct {
	Path           string
	DisplayName    string
	Document       *ir.Document
	Layout         *layout.LayoutTree
	ScrollPosition int
}

// FileSet manages the files open in one session and which one is active.
type FileSet struct {
	fs           afero.Fs
	files        []*OpenFile
	currentIndex int
}

// New returns an empty FileSet backed by fs.
func New(fs afero.Fs) *FileSet {
	return &FileSet{fs: fs}
}

// Add reads path, parses it, and appends it to the set without changing
// the currently active file.
func (s *FileSet) Add(path string) error {
	doc, err := s.parseFile(path)
	if err != nil {
		return err
	}

	s.files = append(s.files, &OpenFile{
		Path:        path,
		DisplayName: filepath.Base(path),
		Document:    doc,
	})

	return nil
}

func (s *FileSet) parseFile(path string) (*ir.Document, error) {
	content, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, &lumenerrs.FileReadError{Path: path, Err: err}
	}

	if len(bytes.TrimSpace(content)) == 0 {
		return nil, &lumenerrs.EmptyContentError{Path: path}
	}

	if bytes.IndexByte(content, 0) >= 0 {
		return nil, &lumenerrs.BinaryContentError{Path: path}
	}

	return irbuilder.Build(tokenizer.Tokenize(content)), nil
}

// Current returns the active file, or false if no files are open.
func (s *FileSet) Current() (*OpenFile, bool) {
	if s.currentIndex < 0 || s.currentIndex >= len(s.files) {
		return nil, false
	}

	return s.files[s.currentIndex], true
}

// Next activates the file after the current one, wrapping to the first.
func (s *FileSet) Next() {
	if len(s.files) == 0 {
		return
	}

	s.currentIndex = (s.currentIndex + 1) % len(s.files)
}

// Prev activates the file before the current one, wrapping to the last.
func (s *FileSet) Prev() {
	if len(s.files) == 0 {
		return
	}

	if s.currentIndex == 0 {
		s.currentIndex = len(s.files) - 1
	} else {
		s.currentIndex--
	}
}

// SwitchTo activates the file at index i. Out-of-range requests are
// ignored.
func (s *FileSet) SwitchTo(i int) {
	if i < 0 || i >= len(s.files) {
		return
	}

	s.currentIndex = i
}

// Paths returns the absolute-or-as-given path of every open file, in
// session order, suitable for seeding a Watcher.
func (s *FileSet) Paths() []string {
	paths := make([]string, len(s.files))
	for i, f := range s.files {
		paths[i] = f.Path
	}

	return paths
}

// ReloadPath re-parses the file at path from disk and invalidates its
// cached layout, if it is one of the open files. Used to respond to a
// Watcher notification without requiring that file to be the active one.
func (s *FileSet) ReloadPath(path string) error {
	for _, f := range s.files {
		if f.Path != path {
			continue
		}

		doc, err := s.parseFile(path)
		if err != nil {
			return err
		}

		f.Document = doc
		f.Layout = nil

		return nil
	}

	return nil
}

// FileCount returns the number of open files.
func (s *FileSet) FileCount() int {
	return len(s.files)
}

// HasMultipleFiles reports whether more than one file is open.
func (s *FileSet) HasMultipleFiles() bool {
	return len(s.files) > 1
}

// ReloadCurrent re-parses the active file from disk and invalidates its
// cached layout.
func (s *FileSet) ReloadCurrent() error {
	cur, ok := s.Current()
	if !ok {
		return nil
	}

	doc, err := s.parseFile(cur.Path)
	if err != nil {
		return err
	}

	cur.Document = doc
	cur.Layout = nil

	return nil
}

// SaveScrollPosition records y as the active file's scroll offset.
func (s *FileSet) SaveScrollPosition(y int) {
	if cur, ok := s.Current(); ok {
		cur.ScrollPosition = y
	}
}

// GetScrollPosition returns the active file's saved scroll offset, or 0
// if no file is open.
func (s *FileSet) GetScrollPosition() int {
	if cur, ok := s.Current(); ok {
		return cur.ScrollPosition
	}

	return 0
}
