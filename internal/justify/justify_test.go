package justify

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJustify(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{
			name:  "quick brown fox",
			text:  "The quick brown fox jumps over",
			width: 10,
			want:  "The  quick\nbrown  fox\njumps over",
		},
		{
			name:  "empty",
			text:  "",
			width: 10,
			want:  "",
		},
		{
			name:  "only whitespace",
			text:  " \t\n  ",
			width: 10,
			want:  "",
		},
		{
			name:  "remainder goes to leftmost gaps",
			text:  "aa bb cc dddddddddd",
			width: 11,
			want:  "aa   bb  cc\ndddddddddd ",
		},
		{
			name:  "single word line is padded",
			text:  "hello world",
			width: 7,
			want:  "hello  \nworld  ",
		},
		{
			name:  "final line is padded not distributed",
			text:  "one two",
			width: 12,
			want:  "one two     ",
		},
		{
			name:  "mixed whitespace is collapsed",
			text:  "  The\tquick\n\nbrown  ",
			width: 11,
			want:  "The   quick\nbrown      ",
		},
		{
			name:  "overlong word overruns width",
			text:  "a extraordinarily b",
			width: 5,
			want:  "a    \nextraordinarily\nb    ",
		},
		{
			name:  "overlong only word",
			text:  "extraordinarily",
			width: 5,
			want:  "extraordinarily",
		},
		{
			name:  "zero width behaves like one",
			text:  "a b",
			width: 0,
			want:  "a\nb",
		},
		{
			name:  "negative width behaves like one",
			text:  "a b",
			width: -4,
			want:  "a\nb",
		},
		{
			name:  "line filled exactly",
			text:  "abc def ghi",
			width: 7,
			want:  "abc def\nghi    ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Justify(tt.text, tt.width))
		})
	}
}

const corpus = `Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do
eiusmod tempor incididunt ut labore et dolore magna aliqua. Ut enim ad minim
veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo
consequat. Duis aute irure dolor in reprehenderit in voluptate velit esse
cillum dolore eu fugiat nulla pariatur.`

func longestWord(text string) int {
	n := 0
	for _, w := range strings.Fields(text) {
		if len(w) > n {
			n = len(w)
		}
	}
	return n
}

func TestJustifyPreservesWords(t *testing.T) {
	for width := 1; width <= 90; width++ {
		out := Justify(corpus, width)
		require.Equal(t, strings.Fields(corpus), strings.Fields(out), "width %d", width)
	}
}

func TestJustifyLineWidths(t *testing.T) {
	for width := longestWord(corpus); width <= 90; width++ {
		lines := strings.Split(Justify(corpus, width), "\n")
		require.NotEmpty(t, lines)

		for i, line := range lines {
			assert.Len(t, line, width, "width %d line %d %q", width, i, line)
		}

		last := lines[len(lines)-1]
		words := strings.Fields(last)
		assert.Equal(t, strings.Join(words, " "), strings.TrimRight(last, " "),
			"width %d: final line must be single-space joined", width)
	}
}

func TestJustifyNoTrailingNewline(t *testing.T) {
	out := Justify(corpus, 30)
	assert.False(t, strings.HasSuffix(out, "\n"))
	assert.False(t, strings.HasPrefix(out, "\n"))
}

func TestJustifyGapsDifferByAtMostOne(t *testing.T) {
	lines := strings.Split(Justify(corpus, 37), "\n")
	for _, line := range lines[:len(lines)-1] {
		words := strings.Fields(line)
		if len(words) < 2 {
			continue
		}
		var gaps []int
		rest := line
		for _, w := range words[:len(words)-1] {
			rest = rest[strings.Index(rest, w)+len(w):]
			trimmed := strings.TrimLeft(rest, " ")
			gaps = append(gaps, len(rest)-len(trimmed))
			rest = trimmed
		}
		for i := 1; i < len(gaps); i++ {
			assert.LessOrEqual(t, gaps[i], gaps[i-1], "line %q: gaps must not grow to the right", line)
			assert.LessOrEqual(t, gaps[0]-gaps[i], 1, "line %q: gaps differ by more than one", line)
		}
	}
}

func TestDistribute(t *testing.T) {
	for spaces := 0; spaces < 40; spaces++ {
		for gaps := 1; gaps < 10; gaps++ {
			perGap, extra := Distribute(spaces, gaps)
			assert.Equal(t, spaces, perGap*gaps+extra, "spaces=%d gaps=%d", spaces, gaps)
			assert.Less(t, extra, gaps)
		}
	}

	perGap, extra := Distribute(-3, 2)
	assert.Zero(t, perGap)
	assert.Zero(t, extra)

	perGap, extra = Distribute(5, 0)
	assert.Zero(t, perGap)
	assert.Zero(t, extra)
}

func TestJustifier(t *testing.T) {
	var zero Justifier
	assert.Equal(t, Justify(corpus, DefaultWidth), zero.Justify(corpus))

	j := New(10)
	assert.Equal(t, "The  quick\nbrown  fox\njumps over", j.Justify("The quick brown fox jumps over"))
}

func TestJustifyConcurrent(t *testing.T) {
	want := Justify(corpus, 33)

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Justify(corpus, 33)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
