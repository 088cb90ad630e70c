package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dshills/justify/internal/engine/buffer"
	"github.com/dshills/justify/internal/engine/cursor"
)

// Document represents an open file with its selection state.
type Document struct {
	// Path is the file path (empty for scratch buffers).
	Path string

	// Name is the display name (filename or "Untitled").
	Name string

	// Buffer holds the document text.
	Buffer *buffer.Buffer

	// Cursors holds the document's selections.
	Cursors *cursor.CursorSet

	// savedRevision is the buffer revision last read from or written to disk.
	savedRevision buffer.RevisionID
}

// NewDocument creates a document for path with the given content.
// The document starts without selections.
func NewDocument(path string, content string) *Document {
	name := filepath.Base(path)
	if path == "" {
		name = "Untitled"
	}
	return &Document{
		Path:    path,
		Name:    name,
		Buffer:  buffer.NewBufferFromString(content),
		Cursors: cursor.NewCursorSet(),
	}
}

// ReadDocument creates a scratch document from r.
func ReadDocument(name string, r io.Reader) (*Document, error) {
	buf, err := buffer.NewBufferFromReader(r)
	if err != nil {
		return nil, NewOperationError("read", name, err)
	}
	if name == "" {
		name = "Untitled"
	}
	return &Document{
		Name:    name,
		Buffer:  buf,
		Cursors: cursor.NewCursorSet(),
	}, nil
}

// Text returns the document content.
func (d *Document) Text() string {
	return d.Buffer.Text()
}

// IsScratch returns true if the document has no file path.
func (d *Document) IsScratch() bool {
	return d.Path == ""
}

// IsModified returns true if the buffer changed since it was loaded or saved.
func (d *Document) IsModified() bool {
	return d.Buffer.RevisionID() != d.savedRevision
}

// Select adds the byte range [start, end) to the selections.
func (d *Document) Select(start, end int64) error {
	n := d.Buffer.Len()
	if start < 0 || end < 0 || start > n || end > n {
		return fmt.Errorf("%w: [%d:%d) in document of %d bytes", ErrSelectionOutOfRange, start, end, n)
	}
	d.Cursors.Add(cursor.NewSelection(start, end))
	return nil
}

// SelectAll replaces the selections with one covering the whole document.
func (d *Document) SelectAll() {
	d.Cursors.SetAll([]cursor.Selection{cursor.NewSelection(0, d.Buffer.Len())})
}

// ClearSelection drops every selection.
func (d *Document) ClearSelection() {
	d.Cursors.Clear()
}

// Save writes the document back to its file, keeping the file mode. The
// buffer holds the file's bytes, so line endings outside edited ranges are
// written back unchanged.
func (d *Document) Save() error {
	if d.IsScratch() {
		return ErrNoFilePath
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(d.Path); err == nil {
		mode = info.Mode().Perm()
	}
	rev := d.Buffer.RevisionID()
	if err := os.WriteFile(d.Path, []byte(d.Text()), mode); err != nil {
		return NewOperationError("save", d.Path, err)
	}
	d.savedRevision = rev
	return nil
}
