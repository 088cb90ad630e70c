package buffer

// Edit represents a text edit operation.
// It specifies a range to replace and the new text.
type Edit struct {
	Range   Range  // The range to replace
	NewText string // The replacement text
}

// NewEdit creates a new Edit.
func NewEdit(r Range, newText string) Edit {
	return Edit{Range: r, NewText: newText}
}

// EditResult describes the effect of an applied edit.
type EditResult struct {
	OldRange Range  // Range before the edit
	NewRange Range  // Range covered by the new text
	OldText  string // Text that was replaced
	Delta    int64  // Change in buffer length
}
