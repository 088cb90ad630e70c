// Package execctx provides the execution context for action handlers.
package execctx

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/dshills/justify/internal/engine/buffer"
	"github.com/dshills/justify/internal/engine/cursor"
)

// EngineInterface abstracts the text engine for handlers.
type EngineInterface interface {
	Text() string
	TextRange(start, end buffer.ByteOffset) string
	Len() buffer.ByteOffset
	Replace(start, end buffer.ByteOffset, text string) (buffer.ByteOffset, error)
}

// CursorManagerInterface abstracts cursor management for handlers.
type CursorManagerInterface interface {
	All() []cursor.Selection
	SetAll(sels []cursor.Selection)
	Count() int
	HasSelection() bool
}

// ExecutionContext provides context for action execution.
// It holds the active editor, if any, and per-dispatch metadata.
type ExecutionContext struct {
	// Engine provides access to the text buffer. Nil when no editor is active.
	Engine EngineInterface

	// Cursors provides access to cursor/selection state.
	Cursors CursorManagerInterface

	// FilePath is the path of the active document, if it has one.
	FilePath string

	// ExecutionID identifies a single dispatch in logs.
	ExecutionID string

	// Logger is scoped to this dispatch. Never nil after New.
	Logger *logrus.Entry
}

// New creates a new execution context with a logger that discards output.
func New() *ExecutionContext {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &ExecutionContext{
		Logger: logrus.NewEntry(l),
	}
}

// WithEngine returns the context with the engine set.
func (ctx *ExecutionContext) WithEngine(engine EngineInterface) *ExecutionContext {
	ctx.Engine = engine
	return ctx
}

// WithCursors returns the context with the cursors set.
func (ctx *ExecutionContext) WithCursors(cursors CursorManagerInterface) *ExecutionContext {
	ctx.Cursors = cursors
	return ctx
}

// WithLogger returns the context with the logger set.
func (ctx *ExecutionContext) WithLogger(logger *logrus.Entry) *ExecutionContext {
	if logger != nil {
		ctx.Logger = logger
	}
	return ctx
}

// Validate checks that the context has all required components.
func (ctx *ExecutionContext) Validate() error {
	if ctx.Engine == nil {
		return ErrMissingEngine
	}
	return nil
}

// ValidateForEdit checks that the context is valid for editing operations.
func (ctx *ExecutionContext) ValidateForEdit() error {
	if err := ctx.Validate(); err != nil {
		return err
	}
	if ctx.Cursors == nil {
		return ErrMissingCursors
	}
	return nil
}
