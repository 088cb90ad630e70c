package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionArgs(t *testing.T) {
	a := NewAction("justify_text", SourceCLI).
		WithCount(3).
		WithArg("width", 72).
		WithArg("ratio", float64(40))

	assert.Equal(t, "justify_text", a.Name)
	assert.Equal(t, 3, a.Count)
	assert.Equal(t, 72, a.Args.GetInt("width"))
	assert.Equal(t, 40, a.Args.GetInt("ratio"))
	assert.Zero(t, a.Args.GetInt("missing"))
	assert.Zero(t, NewAction("x", SourceAPI).WithArg("width", "wide").Args.GetInt("width"))
}

func TestWithArgDoesNotAlias(t *testing.T) {
	base := NewAction("x", SourceAPI).WithArg("a", 1)
	derived := base.WithArg("b", 2)

	_, ok := base.Args.Get("b")
	assert.False(t, ok)
	assert.Equal(t, 2, derived.Args.GetInt("b"))
}

func TestActionSourceString(t *testing.T) {
	assert.Equal(t, "cli", SourceCLI.String())
	assert.Equal(t, "plugin", SourcePlugin.String())
	assert.Equal(t, "api", SourceAPI.String())
	assert.Equal(t, "unknown", ActionSource(99).String())
}
