package dispatcher

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dshills/justify/internal/dispatcher/execctx"
	"github.com/dshills/justify/internal/dispatcher/handler"
	"github.com/dshills/justify/internal/input"
)

// DataExecutionID is the result data key holding the dispatch's execution ID.
const DataExecutionID = "execution_id"

// Dispatcher routes actions to handlers and coordinates execution.
type Dispatcher struct {
	mu sync.RWMutex

	registry *Registry
	logger   *logrus.Entry

	// Active editor
	engine   execctx.EngineInterface
	cursors  execctx.CursorManagerInterface
	filePath string
}

// New creates a dispatcher that logs through logger.
// A nil logger discards output.
func New(logger *logrus.Entry) *Dispatcher {
	if logger == nil {
		logger = execctx.New().Logger
	}
	return &Dispatcher{
		registry: NewRegistry(),
		logger:   logger.WithField("component", "dispatcher"),
	}
}

// Registry returns the dispatcher's command table.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Register adds a handler for an action name.
func (d *Dispatcher) Register(actionName string, h handler.Handler) {
	d.registry.Register(actionName, h)
	d.logger.WithField("action", actionName).Debug("registered handler")
}

// SetEditor sets the active editor. Passing nil engine and cursors
// detaches it; actions then run without an editor.
func (d *Dispatcher) SetEditor(engine execctx.EngineInterface, cursors execctx.CursorManagerInterface, filePath string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.engine = engine
	d.cursors = cursors
	d.filePath = filePath
}

// Dispatch executes an action synchronously against the active editor.
func (d *Dispatcher) Dispatch(action input.Action) handler.Result {
	return d.DispatchWithContext(action, d.buildContext())
}

// DispatchWithContext executes an action with an explicit execution context.
func (d *Dispatcher) DispatchWithContext(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if action.Name == "" {
		return handler.Error(ErrInvalidAction)
	}
	if ctx == nil {
		ctx = execctx.New()
	}
	if ctx.ExecutionID == "" {
		ctx.ExecutionID = uuid.NewString()
	}

	log := d.logger.WithFields(logrus.Fields{
		"action":       action.Name,
		"source":       action.Source.String(),
		"execution_id": ctx.ExecutionID,
	})
	ctx.WithLogger(log)

	h := d.registry.Get(action.Name)
	if h == nil {
		log.Warn("no handler")
		return handler.Error(fmt.Errorf("%w: %s", ErrNoHandler, action.Name))
	}

	start := time.Now()
	result := d.executeWithRecovery(h, action, ctx)
	result = result.WithData(DataExecutionID, ctx.ExecutionID)

	entry := log.WithFields(logrus.Fields{
		"status":   result.Status.String(),
		"duration": time.Since(start),
		"edits":    len(result.Edits),
	})
	if result.IsError() {
		entry.WithError(result.Error).Error("action failed")
	} else {
		entry.Debug("action complete")
	}
	return result
}

// executeWithRecovery executes a handler with panic recovery.
func (d *Dispatcher) executeWithRecovery(h handler.Handler, action input.Action, ctx *execctx.ExecutionContext) (result handler.Result) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)
			ctx.Logger.WithField("stack", string(stack[:n])).Error("handler panic")
			result = handler.Error(fmt.Errorf("%w for %s: %v", ErrPanic, action.Name, r))
		}
	}()

	return h.Handle(action, ctx)
}

// buildContext builds an execution context from the active editor.
func (d *Dispatcher) buildContext() *execctx.ExecutionContext {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ctx := execctx.New()
	ctx.Engine = d.engine
	ctx.Cursors = d.cursors
	ctx.FilePath = d.filePath
	return ctx
}
