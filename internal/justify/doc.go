// Package justify implements full-width text justification.
//
// Justify splits its input on runs of whitespace, greedily packs the words
// into lines of a target width, and pads each line with spaces so that it is
// exactly that wide. Extra spaces are spread evenly across the gaps between
// words; when they do not divide evenly the leftmost gaps receive one more.
// The last line is not distributed: its words are joined with single spaces
// and the line is right padded.
//
// Widths are measured in bytes, so multi-byte runes count once per byte.
//
//	out := justify.Justify("The quick brown fox jumps over", 10)
//	// "The  quick\nbrown  fox\njumps over"
//
// Idempotence is not part of the contract. Callers that re-justify a block
// should expect it to be re-wrapped from its words, not preserved.
package justify
