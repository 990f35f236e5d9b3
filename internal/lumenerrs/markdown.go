// Package lumenerrs collects the typed errors returned across Lumen's
// document-loading paths. The IR builder, layout, and search engines
// operate on an already-built Document and never fail; these types cover
// the narrower surface upstream of that: reading a file, rejecting
// content that is not viewable Markdown, and looking up a theme.
package lumenerrs

import "fmt"

// EmptyContentError indicates empty or whitespace-only content was provided.
type EmptyContentError struct {
	Path string
}

func (e *EmptyContentError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("markdown file is empty: %s", e.Path)
	}

	return "markdown content is empty"
}

// BinaryContentError indicates binary (non-text) content was provided.
type BinaryContentError struct {
	Path string
}

func (e *BinaryContentError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf(
			"file appears to be binary, not markdown: %s",
			e.Path,
		)
	}

	return "content appears to be binary, not markdown"
}

// UnknownThemeError indicates a requested theme name has no registered
// built-in definition.
type UnknownThemeError struct {
	Name string
}

func (e *UnknownThemeError) Error() string {
	return fmt.Sprintf("unknown theme: %s", e.Name)
}

// FileReadError wraps a filesystem error encountered while loading or
// reloading a document.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}
