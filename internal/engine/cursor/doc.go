// Package cursor provides selection management for text editing.
//
// Selections use an anchor/head model: Anchor is where the selection
// started and Head is where the cursor is. When Anchor == Head the
// selection is a bare cursor. A CursorSet keeps several selections sorted by
// position, merging ones that overlap or touch.
package cursor
