// Package handler provides the handler interface and types for action dispatch.
package handler

import (
	"github.com/dshills/justify/internal/dispatcher/execctx"
	"github.com/dshills/justify/internal/input"
)

// Handler processes a specific action or set of actions.
type Handler interface {
	// Handle executes the action and returns a result.
	Handle(action input.Action, ctx *execctx.ExecutionContext) Result

	// CanHandle returns true if this handler can process the action.
	CanHandle(actionName string) bool

	// Priority returns the handler priority (higher = checked first).
	Priority() int
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(action input.Action, ctx *execctx.ExecutionContext) Result

// Handle implements Handler.Handle.
func (f HandlerFunc) Handle(action input.Action, ctx *execctx.ExecutionContext) Result {
	if f == nil {
		return Errorf("handler function is nil")
	}
	return f(action, ctx)
}

// CanHandle implements Handler.CanHandle.
// A HandlerFunc accepts every action; the registry routes by name.
func (f HandlerFunc) CanHandle(string) bool {
	return true
}

// Priority implements Handler.Priority.
func (f HandlerFunc) Priority() int {
	return 0
}
