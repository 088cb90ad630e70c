package cursor

import "sort"

// CursorSet manages multiple selections.
// Selections are kept sorted by position and non-overlapping. Unlike an
// interactive editor view, a CursorSet may be empty: a document opened
// without a selection has nothing for a command to act on.
type CursorSet struct {
	selections []Selection
}

// NewCursorSet creates a cursor set from the given selections.
// The selections are normalized (sorted and merged).
func NewCursorSet(selections ...Selection) *CursorSet {
	cs := &CursorSet{}
	cs.SetAll(selections)
	return cs
}

// All returns a copy of all selections.
func (cs *CursorSet) All() []Selection {
	result := make([]Selection, len(cs.selections))
	copy(result, cs.selections)
	return result
}

// Count returns the number of selections.
func (cs *CursorSet) Count() int {
	return len(cs.selections)
}

// Add adds a new selection, merging with overlapping ones.
func (cs *CursorSet) Add(sel Selection) {
	cs.selections = append(cs.selections, sel)
	cs.normalize()
}

// SetAll replaces all selections.
func (cs *CursorSet) SetAll(sels []Selection) {
	cs.selections = make([]Selection, len(sels))
	copy(cs.selections, sels)
	cs.normalize()
}

// Clear removes every selection.
func (cs *CursorSet) Clear() {
	cs.selections = nil
}

// HasSelection returns true if any selection is non-empty.
func (cs *CursorSet) HasSelection() bool {
	for _, sel := range cs.selections {
		if !sel.IsEmpty() {
			return true
		}
	}
	return false
}

// normalize sorts selections and merges overlapping ones. Selections that
// only touch stay separate so each is edited on its own.
func (cs *CursorSet) normalize() {
	if len(cs.selections) <= 1 {
		return
	}

	sort.Slice(cs.selections, func(i, j int) bool {
		si, sj := cs.selections[i].Start(), cs.selections[j].Start()
		if si != sj {
			return si < sj
		}
		// Same start: larger range first
		return cs.selections[i].End() > cs.selections[j].End()
	})

	merged := cs.selections[:1]
	for _, sel := range cs.selections[1:] {
		last := &merged[len(merged)-1]
		if sel.Start() < last.End() || sel.Start() == last.Start() {
			*last = last.Merge(sel)
		} else {
			merged = append(merged, sel)
		}
	}
	cs.selections = merged
}
