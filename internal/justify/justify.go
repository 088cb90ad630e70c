package justify

import "strings"

// DefaultWidth is the line width used by the editor command.
const DefaultWidth = 80

// Justifier is a stateless justification routine bound to a width.
// The zero value justifies at DefaultWidth.
type Justifier struct {
	Width int
}

// New returns a Justifier for the given width.
func New(width int) Justifier {
	return Justifier{Width: width}
}

// Justify justifies text at the Justifier's width.
func (j Justifier) Justify(text string) string {
	width := j.Width
	if width == 0 {
		width = DefaultWidth
	}
	return Justify(text, width)
}

// Justify re-wraps text so that every line but the last is exactly width
// bytes long.
//
// A line is flushed when adding the next word would make
// lineLen+len(word)+wordsOnLine exceed width. Words longer than width are
// never truncated; they sit alone on a line that overruns width and receives
// no padding. A width below 1 is treated as 1. Empty or all-whitespace input
// yields the empty string.
func Justify(text string, width int) string {
	if width < 1 {
		width = 1
	}

	var (
		sb      strings.Builder
		line    []string
		lineLen int
	)
	sb.Grow(len(text) + len(text)/4)

	for _, word := range strings.Fields(text) {
		if lineLen+len(word)+len(line) > width {
			if len(line) > 0 {
				writeLine(&sb, line, lineLen, width)
				sb.WriteByte('\n')
			}
			line = line[:0]
			lineLen = 0
		}
		line = append(line, word)
		lineLen += len(word)
	}

	if len(line) > 0 {
		last := strings.Join(line, " ")
		sb.WriteString(last)
		pad(&sb, width-len(last))
	}

	return sb.String()
}

// writeLine renders a full line, spreading width-lineLen spaces across the
// gaps between words. Leftmost gaps absorb the remainder.
func writeLine(sb *strings.Builder, words []string, lineLen, width int) {
	spaces := width - lineLen
	gaps := len(words) - 1
	if gaps == 0 {
		sb.WriteString(words[0])
		pad(sb, spaces)
		return
	}

	perGap, extra := Distribute(spaces, gaps)
	for i, word := range words {
		sb.WriteString(word)
		if i < gaps {
			n := perGap
			if i < extra {
				n++
			}
			pad(sb, n)
		}
	}
}

// Distribute splits spaces across gaps, returning the base number of spaces
// per gap and how many of the leftmost gaps receive one more. It always holds
// that perGap*gaps+extra == spaces for gaps > 0 and spaces >= 0. Negative
// budgets are clamped to zero.
func Distribute(spaces, gaps int) (perGap, extra int) {
	if gaps <= 0 {
		return 0, 0
	}
	if spaces < 0 {
		spaces = 0
	}
	return spaces / gaps, spaces % gaps
}

// pad writes n spaces; n <= 0 writes nothing.
func pad(sb *strings.Builder, n int) {
	for ; n > 0; n-- {
		sb.WriteByte(' ')
	}
}
