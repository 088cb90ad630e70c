package text

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/dshills/justify/internal/dispatcher/execctx"
	"github.com/dshills/justify/internal/dispatcher/handler"
	"github.com/dshills/justify/internal/engine/buffer"
	"github.com/dshills/justify/internal/engine/cursor"
	"github.com/dshills/justify/internal/input"
	"github.com/dshills/justify/internal/justify"
)

// ActionJustify is the command name under which the handler is registered.
const ActionJustify = "justify_text"

// Result data keys.
const (
	DataSelections = "selections"
	DataWidth      = "width"
)

// JustifyHandler justifies every selection in the active editor.
type JustifyHandler struct {
	justifier justify.Justifier
}

// NewJustifyHandler creates a handler that justifies at justify.DefaultWidth.
func NewJustifyHandler() *JustifyHandler {
	return NewJustifyHandlerWithWidth(justify.DefaultWidth)
}

// NewJustifyHandlerWithWidth creates a handler that justifies at width.
func NewJustifyHandlerWithWidth(width int) *JustifyHandler {
	return &JustifyHandler{justifier: justify.New(width)}
}

// Width returns the handler's default width.
func (h *JustifyHandler) Width() int {
	return h.justifier.Width
}

// CanHandle returns true if this handler can process the action.
func (h *JustifyHandler) CanHandle(actionName string) bool {
	return actionName == ActionJustify
}

// Priority implements handler.Handler.
func (h *JustifyHandler) Priority() int {
	return 0
}

// Handle replaces each selection's text with its justified form and leaves a
// cursor at the end of each replaced range. A count on the action overrides
// the width for that invocation.
//
// Without an active editor, or with no selections, the action is a no-op.
func (h *JustifyHandler) Handle(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.ValidateForEdit(); err != nil {
		ctx.Logger.WithError(err).Debug("no active editor")
		return handler.NoOpWithMessage("no active editor")
	}
	if !ctx.Cursors.HasSelection() {
		return handler.NoOpWithMessage("no selection")
	}
	sels := ctx.Cursors.All()

	j := h.justifier
	if action.Count > 0 {
		j = justify.New(action.Count)
	}
	if w := action.Args.GetInt(DataWidth); w > 0 {
		j = justify.New(w)
	}

	// Apply in document order, tracking how far earlier edits moved later
	// offsets.
	sort.SliceStable(sels, func(a, b int) bool {
		return sels[a].Start() < sels[b].Start()
	})

	var (
		edits   []handler.Edit
		newSels = make([]cursor.Selection, 0, len(sels))
		delta   int64
		lastEnd buffer.ByteOffset = -1
	)
	for _, sel := range sels {
		r := sel.Range()
		if r.Start < lastEnd {
			ctx.Logger.WithField("selection", sel.String()).Debug("skipping overlapping selection")
			continue
		}
		lastEnd = r.End

		shifted := r.Shift(delta)
		if r.IsEmpty() {
			newSels = append(newSels, cursor.NewCursorSelection(shifted.Start))
			continue
		}

		old := ctx.Engine.TextRange(shifted.Start, shifted.End)
		justified := j.Justify(old)

		end, err := ctx.Engine.Replace(shifted.Start, shifted.End, justified)
		if err != nil {
			// Keep the editor consistent with what was applied so far.
			ctx.Cursors.SetAll(newSels)
			return handler.Error(err).WithEdits(edits...)
		}

		// The engine may rewrite line breaks, so measure what it inserted.
		inserted := ctx.Engine.TextRange(shifted.Start, end)
		edits = append(edits, handler.Edit{Range: r, NewText: inserted, OldText: old})
		newSels = append(newSels, cursor.NewCursorSelection(end))
		delta += end - shifted.End
	}

	ctx.Cursors.SetAll(newSels)

	if len(edits) == 0 {
		return handler.NoOpWithMessage("no selection")
	}

	ctx.Logger.WithFields(logrus.Fields{
		DataSelections: len(edits),
		DataWidth:      j.Width,
	}).Debug("justified selections")

	return handler.Success().
		WithMessage(fmt.Sprintf("justified %d selection(s) at width %d", len(edits), j.Width)).
		WithEdits(edits...).
		WithData(DataSelections, len(edits)).
		WithData(DataWidth, j.Width)
}
