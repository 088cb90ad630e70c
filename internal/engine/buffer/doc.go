// Package buffer provides the thread-safe document buffer that commands edit.
//
// Positions are byte offsets into the text. Ranges are half-open:
// [Start, End). The buffer keeps the bytes it was loaded with, so offsets
// match the file on disk. Text inserted by an edit has its line breaks
// converted to the buffer's detected LineEnding.
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("Hello, World!")
//	buf.Replace(7, 12, "Gopher") // "Hello, Gopher!"
//	text := buf.TextRange(0, 5)   // "Hello"
package buffer
