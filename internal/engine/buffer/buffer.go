package buffer

import (
	"errors"
	"fmt"
	"io"
	"sync"
)

// ErrRangeInvalid is returned for edits outside the buffer.
var ErrRangeInvalid = errors.New("invalid range")

// RevisionID identifies a buffer state. It increases with every edit.
type RevisionID uint64

// Buffer holds a document's text exactly as loaded. Text inserted by edits
// is converted to the line ending detected on load. All methods are
// thread-safe.
type Buffer struct {
	mu         sync.RWMutex
	text       string
	revisionID RevisionID
	lineEnding LineEnding
}

// NewBufferFromString creates a buffer with initial content.
func NewBufferFromString(s string) *Buffer {
	return &Buffer{text: s, lineEnding: DetectLineEnding(s)}
}

// NewBufferFromReader creates a buffer from an io.Reader.
func NewBufferFromReader(r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading buffer content: %w", err)
	}
	return NewBufferFromString(string(data)), nil
}

// Text returns the full buffer content.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text
}

// TextRange returns text in the given byte range.
// Out-of-range bounds are clamped to the buffer.
func (b *Buffer) TextRange(start, end ByteOffset) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	n := ByteOffset(len(b.text))
	start = clamp(start, 0, n)
	end = clamp(end, start, n)
	return b.text[start:end]
}

// Len returns the buffer length in bytes.
func (b *Buffer) Len() ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return ByteOffset(len(b.text))
}

// LineEnding returns the line ending detected when the buffer was created.
func (b *Buffer) LineEnding() LineEnding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineEnding
}

// RevisionID returns the current revision.
func (b *Buffer) RevisionID() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revisionID
}

// Replace replaces [start, end) with text and returns the end offset of the
// inserted text.
func (b *Buffer) Replace(start, end ByteOffset, text string) (ByteOffset, error) {
	res, err := b.ApplyEdit(NewEdit(NewRange(start, end), text))
	if err != nil {
		return 0, err
	}
	return res.NewRange.End, nil
}

// ApplyEdit applies a single edit to the buffer.
func (b *Buffer) ApplyEdit(edit Edit) (EditResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.applyLocked(edit)
}

func (b *Buffer) applyLocked(edit Edit) (EditResult, error) {
	r := edit.Range
	if !r.IsValid() || r.End > ByteOffset(len(b.text)) {
		return EditResult{}, fmt.Errorf("%w: %s", ErrRangeInvalid, r)
	}

	text := b.lineEnding.convert(edit.NewText)
	oldText := b.text[r.Start:r.End]
	b.text = b.text[:r.Start] + text + b.text[r.End:]
	b.revisionID++

	return EditResult{
		OldRange: r,
		NewRange: Range{Start: r.Start, End: r.Start + ByteOffset(len(text))},
		OldText:  oldText,
		Delta:    int64(len(text)) - int64(r.Len()),
	}, nil
}

func clamp(v, lo, hi ByteOffset) ByteOffset {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
