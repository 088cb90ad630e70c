package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fox = "The quick brown fox jumps over"

type result struct {
	stdout string
	stderr string
	err    error
}

func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func tempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestJustifyStdin(t *testing.T) {
	r := execute(t, fox, "--width", "10")
	require.NoError(t, r.err)
	assert.Equal(t, "The  quick\nbrown  fox\njumps over\n", r.stdout)
}

func TestJustifyDefaultWidth(t *testing.T) {
	r := execute(t, "a b")
	require.NoError(t, r.err)
	assert.Equal(t, "a b"+strings.Repeat(" ", 77)+"\n", r.stdout)
}

func TestJustifySelection(t *testing.T) {
	// Only "bb cc dd" is justified; the surrounding text is untouched.
	r := execute(t, "aa bb cc dd ee", "--width", "5", "--select", "3:11")
	require.NoError(t, r.err)
	assert.Equal(t, "aa bb cc\ndd    ee\n", r.stdout)
}

func TestJustifyFileWrite(t *testing.T) {
	path := tempFile(t, "in.txt", fox)

	r := execute(t, "", "--width", "10", "--write", path)
	require.NoError(t, r.err)
	assert.Empty(t, r.stdout)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "The  quick\nbrown  fox\njumps over", string(data))
}

func TestJustifyMultipleFiles(t *testing.T) {
	a := tempFile(t, "a.txt", "x y")
	b := tempFile(t, "b.txt", "p q")

	r := execute(t, "", "--width", "4", a, b)
	require.NoError(t, r.err)
	assert.Equal(t, "x y \np q \n", r.stdout)
}

func TestJustifyErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "write without files", args: []string{"--write"}, want: "--write requires"},
		{name: "bad selection", args: []string{"--select", "3"}, want: "invalid selection"},
		{name: "reversed selection", args: []string{"--select", "5:2"}, want: "invalid selection"},
		{name: "selection out of range", args: []string{"--select", "0:99"}, want: "out of range"},
		{name: "missing file", args: []string{"/nonexistent/file.txt"}, want: "open /nonexistent/file.txt"},
		{name: "bad log level", args: []string{"--log-level", "loud"}, want: "log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := execute(t, "abc", tt.args...)
			require.Error(t, r.err)
			assert.Contains(t, r.err.Error(), tt.want)
		})
	}
}

func TestParseRanges(t *testing.T) {
	ranges, err := parseRanges([]string{"0:4", " 6 : 9 "})
	require.NoError(t, err)
	assert.Equal(t, [][2]int64{{0, 4}, {6, 9}}, ranges)

	_, err = parseRanges([]string{"a:4"})
	assert.Error(t, err)
}

func TestScript(t *testing.T) {
	script := tempFile(t, "wrap.lua", `
_ks_buffer.select_all()
_ks_command.execute("justify_text", {width = 10})
`)
	path := tempFile(t, "in.txt", fox)

	r := execute(t, "", "script", script, path)
	require.NoError(t, r.err)
	assert.Equal(t, "The  quick\nbrown  fox\njumps over\n", r.stdout)
}

func TestScriptWithoutFiles(t *testing.T) {
	script := tempFile(t, "hello.lua", `print(_ks_text.justify("hi there", 5))`)

	r := execute(t, "", "script", script)
	require.NoError(t, r.err)
	assert.Equal(t, "hi   \nthere\n", r.stdout)
}

func TestVersion(t *testing.T) {
	r := execute(t, "", "version")
	require.NoError(t, r.err)
	assert.Equal(t, "justify dev (commit unknown, built unknown)\n", r.stdout)
}

func TestRunExitCode(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	assert.Equal(t, 1, run([]string{"--select", "bogus"}))
	assert.Equal(t, 0, run([]string{"version"}))
}

func TestJustifyRejectsNonPositiveWidth(t *testing.T) {
	for _, w := range []string{"0", "-3"} {
		r := execute(t, "a b", "--width", w)
		require.Error(t, r.err, "width %s", w)
		assert.Contains(t, r.err.Error(), "invalid --width")
		assert.Empty(t, r.stdout)
	}
}

func TestJustifySelectionWriteCRLF(t *testing.T) {
	path := tempFile(t, "dos.txt", "head\r\naa bb\r\ntail\r\n")

	r := execute(t, "", "--width", "6", "--select", "6:11", "--write", path)
	require.NoError(t, r.err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "head\r\naa bb \r\ntail\r\n", string(data))
}

func TestJustifyTouchingSelections(t *testing.T) {
	r := execute(t, "aa bbcc dd", "--width", "6", "--select", "0:5", "--select", "5:10")
	require.NoError(t, r.err)
	assert.Equal(t, "aa bb cc dd \n", r.stdout)
}

func TestScriptEval(t *testing.T) {
	r := execute(t, "", "script", "-e", `return _ks_text.justify("hi there", 5)`)
	require.NoError(t, r.err)
	assert.Equal(t, "hi   \nthere\n", r.stdout)
}

func TestScriptEvalCount(t *testing.T) {
	path := tempFile(t, "in.txt", fox)

	r := execute(t, "", "script", "-e",
		`_ks_buffer.select_all() _ks_command.execute("justify_text", {count = 10})`, path)
	require.NoError(t, r.err)
	assert.Equal(t, "The  quick\nbrown  fox\njumps over\n", r.stdout)
}

func TestScriptRequiresSource(t *testing.T) {
	r := execute(t, "", "script")
	require.Error(t, r.err)
	assert.Contains(t, r.err.Error(), "--eval")
}
