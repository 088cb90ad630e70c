package execctx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/justify/internal/engine/buffer"
	"github.com/dshills/justify/internal/engine/cursor"
)

func TestNew(t *testing.T) {
	ctx := New()
	require.NotNil(t, ctx.Logger)
	assert.True(t, errors.Is(ctx.Validate(), ErrMissingEngine))
}

func TestValidateForEdit(t *testing.T) {
	buf := buffer.NewBufferFromString("text")

	ctx := New().WithEngine(buf)
	assert.NoError(t, ctx.Validate())
	assert.True(t, errors.Is(ctx.ValidateForEdit(), ErrMissingCursors))

	ctx.WithCursors(cursor.NewCursorSet(cursor.NewSelection(0, 4)))
	assert.NoError(t, ctx.ValidateForEdit())
}

func TestWithLoggerIgnoresNil(t *testing.T) {
	ctx := New()
	before := ctx.Logger
	ctx.WithLogger(nil)
	assert.Same(t, before, ctx.Logger)
}
