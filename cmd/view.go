package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"

	"github.com/connerohnesorge/lumen/internal/fileset"
	"github.com/connerohnesorge/lumen/internal/layout"
	"github.com/connerohnesorge/lumen/internal/theme"
)

// fallbackWidth and fallbackHeight are the viewport every invocation lays
// out against; the real terminal size is not queried, whether or not
// stdout is a terminal.
const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// ViewCmd opens one or more Markdown files, lays each out against the
// requested theme and viewport, and prints the laid-out text of the first
// file to stdout. The interactive render loop (scrolling, search,
// keybindings) is an external collaborator out of this repo's scope; this
// command exists to exercise the pipeline end to end from the command
// line.
type ViewCmd struct {
	Files  []string `arg:"" help:"Markdown file(s) to open" type:"path"`
	Theme  string   `help:"Theme name" default:"docs"`
	Images string   `help:"Image placement mode: sidebar or inline" default:"sidebar" enum:"sidebar,inline"`
	Watch  bool     `help:"Re-render the active file when an open file changes on disk" short:"w"`
}

// Run loads the requested files, lays out the active one, and writes a
// plain-text rendering to stdout. With --watch it then blocks, reloading
// and re-rendering whenever an open file changes on disk.
func (c *ViewCmd) Run() error {
	if len(c.Files) == 0 {
		return fmt.Errorf("view: at least one file is required")
	}

	th, err := theme.Get(c.Theme)
	if err != nil {
		return err
	}

	imageMode := layout.ImageModeSidebar
	if c.Images == "inline" {
		imageMode = layout.ImageModeInline
	}

	set := fileset.New(afero.NewOsFs())
	for _, path := range c.Files {
		if err := set.Add(path); err != nil {
			return err
		}
	}

	if err := renderCurrent(set, th, imageMode); err != nil {
		return err
	}

	if !c.Watch {
		return nil
	}

	return watchLoop(set, th, imageMode)
}

// renderCurrent lays out the active file (reusing its cached layout when
// one survives) and prints it.
func renderCurrent(set *fileset.FileSet, th *theme.Theme, imageMode layout.ImageMode) error {
	cur, ok := set.Current()
	if !ok {
		return fmt.Errorf("view: no file loaded")
	}

	tree := cur.Layout
	if tree == nil {
		vp := layout.NewViewport(fallbackWidth, fallbackHeight)
		tree = layout.LayoutDocument(cur.Document, th, vp, imageMode)
		cur.Layout = tree
	}

	fmt.Print(RenderPlain(tree, th, colorEnabled()))

	return nil
}

// watchLoop blocks on file-change notifications, re-parsing the changed
// file (which drops its cached layout) and re-rendering the active one.
// It runs until the process is interrupted or the watcher fails.
func watchLoop(set *fileset.FileSet, th *theme.Theme, imageMode layout.ImageMode) error {
	w, err := fileset.NewWatcher(set.Paths())
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	for {
		select {
		case path := <-w.Changed():
			if err := set.ReloadPath(path); err != nil {
				return err
			}
			if err := renderCurrent(set, th, imageMode); err != nil {
				return err
			}
		case err := <-w.Errors():
			return err
		}
	}
}

// colorEnabled reports whether stdout is a terminal, gating whether the
// plain-text renderer applies theme colors. Piped output gets an
// undecorated rendering.
func colorEnabled() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}
