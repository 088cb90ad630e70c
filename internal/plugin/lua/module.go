package lua

import (
	"sort"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/justify/internal/justify"
)

// Module is an editor API table exposed to scripts.
type Module interface {
	// Name is the module key: the table is installed as _ks_<Name> and
	// returned by require("ks.<Name>").
	Name() string

	// Table builds the module table in L.
	Table(L *lua.LState) *lua.LTable
}

// TextModule implements the ks.text API module.
type TextModule struct{}

// NewTextModule creates the text module.
func NewTextModule() *TextModule {
	return &TextModule{}
}

// Name returns the module name.
func (m *TextModule) Name() string {
	return "text"
}

// Table builds the module table.
func (m *TextModule) Table(L *lua.LState) *lua.LTable {
	mod := L.NewTable()
	L.SetField(mod, "justify", L.NewFunction(m.justify))
	return mod
}

// justify(text [, width]) -> string
func (m *TextModule) justify(L *lua.LState) int {
	text := L.CheckString(1)
	width := L.OptInt(2, justify.DefaultWidth)
	L.Push(lua.LString(justify.Justify(text, width)))
	return 1
}

// CommandProvider runs editor commands on behalf of scripts.
type CommandProvider interface {
	// Execute runs a command and returns its status ("ok", "no-op", ...).
	Execute(name string, args map[string]any) (string, error)

	// Commands returns the names of all registered commands.
	Commands() []string
}

// CommandModule implements the ks.command API module.
type CommandModule struct {
	provider CommandProvider
}

// NewCommandModule creates a command module backed by provider.
func NewCommandModule(provider CommandProvider) *CommandModule {
	return &CommandModule{provider: provider}
}

// Name returns the module name.
func (m *CommandModule) Name() string {
	return "command"
}

// Table builds the module table.
func (m *CommandModule) Table(L *lua.LState) *lua.LTable {
	mod := L.NewTable()
	L.SetField(mod, "execute", L.NewFunction(m.execute))
	L.SetField(mod, "list", L.NewFunction(m.list))
	return mod
}

// execute(name [, args]) -> status
func (m *CommandModule) execute(L *lua.LState) int {
	name := L.CheckString(1)
	args := tableToMap(L.OptTable(2, L.NewTable()))

	if m.provider == nil {
		L.RaiseError("execute: no command provider available")
		return 0
	}
	status, err := m.provider.Execute(name, args)
	if err != nil {
		L.RaiseError("execute %s: %v", name, err)
		return 0
	}
	L.Push(lua.LString(status))
	return 1
}

// list() -> {names}
func (m *CommandModule) list(L *lua.LState) int {
	tbl := L.NewTable()
	if m.provider != nil {
		names := m.provider.Commands()
		sort.Strings(names)
		for _, name := range names {
			tbl.Append(lua.LString(name))
		}
	}
	L.Push(tbl)
	return 1
}

// BufferProvider exposes the active document to scripts.
type BufferProvider interface {
	Text() string
	Select(start, end int64) error
	SelectAll()
	ClearSelection()
}

// BufferModule implements the ks.buffer API module.
type BufferModule struct {
	provider BufferProvider
}

// NewBufferModule creates a buffer module backed by provider.
func NewBufferModule(provider BufferProvider) *BufferModule {
	return &BufferModule{provider: provider}
}

// Name returns the module name.
func (m *BufferModule) Name() string {
	return "buffer"
}

// Table builds the module table.
func (m *BufferModule) Table(L *lua.LState) *lua.LTable {
	mod := L.NewTable()
	L.SetField(mod, "text", L.NewFunction(m.text))
	L.SetField(mod, "select", L.NewFunction(m.sel))
	L.SetField(mod, "select_all", L.NewFunction(m.selectAll))
	L.SetField(mod, "clear_selection", L.NewFunction(m.clearSelection))
	return mod
}

func (m *BufferModule) checkProvider(L *lua.LState, fn string) bool {
	if m.provider == nil {
		L.RaiseError("%s: no active buffer", fn)
		return false
	}
	return true
}

// text() -> string
func (m *BufferModule) text(L *lua.LState) int {
	if !m.checkProvider(L, "text") {
		return 0
	}
	L.Push(lua.LString(m.provider.Text()))
	return 1
}

// select(start, stop) -> nil
func (m *BufferModule) sel(L *lua.LState) int {
	start := L.CheckInt64(1)
	end := L.CheckInt64(2)
	if !m.checkProvider(L, "select") {
		return 0
	}
	if err := m.provider.Select(start, end); err != nil {
		L.RaiseError("select: %v", err)
	}
	return 0
}

// select_all() -> nil
func (m *BufferModule) selectAll(L *lua.LState) int {
	if m.checkProvider(L, "select_all") {
		m.provider.SelectAll()
	}
	return 0
}

// clear_selection() -> nil
func (m *BufferModule) clearSelection(L *lua.LState) int {
	if m.checkProvider(L, "clear_selection") {
		m.provider.ClearSelection()
	}
	return 0
}

// tableToMap converts a flat Lua table with string keys to a Go map.
func tableToMap(tbl *lua.LTable) map[string]any {
	result := make(map[string]any)
	tbl.ForEach(func(k, v lua.LValue) {
		key, ok := k.(lua.LString)
		if !ok {
			return
		}
		switch val := v.(type) {
		case lua.LString:
			result[string(key)] = string(val)
		case lua.LNumber:
			result[string(key)] = float64(val)
		case lua.LBool:
			result[string(key)] = bool(val)
		}
	})
	return result
}
