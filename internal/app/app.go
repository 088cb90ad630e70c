package app

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	glua "github.com/yuin/gopher-lua"

	"github.com/dshills/justify/internal/config"
	"github.com/dshills/justify/internal/dispatcher"
	"github.com/dshills/justify/internal/dispatcher/handler"
	"github.com/dshills/justify/internal/dispatcher/handlers/text"
	"github.com/dshills/justify/internal/input"
	"github.com/dshills/justify/internal/plugin/lua"
)

// Options configures a new Application.
type Options struct {
	// ConfigPath is the path to the configuration file. Empty searches the
	// default locations.
	ConfigPath string

	// LogLevel overrides the configured log level when set.
	LogLevel string

	// LogOutput receives log output. Defaults to stderr.
	LogOutput io.Writer

	// ScriptOutput receives print output from Lua scripts. Defaults to stdout.
	ScriptOutput io.Writer
}

// Application ties the editor components together.
type Application struct {
	config     *config.Config
	logger     *logrus.Logger
	log        *logrus.Entry
	dispatcher *dispatcher.Dispatcher
	plugins    *lua.State

	mu     sync.Mutex
	active *Document
}

// New creates an Application, registers the built-in commands and runs the
// configured plugin scripts.
func New(opts Options) (*Application, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}

	logger, err := NewLogger(cfg.Logging, opts.LogOutput)
	if err != nil {
		return nil, err
	}

	app := &Application{
		config: cfg,
		logger: logger,
		log:    logger.WithField("component", "app"),
	}
	app.dispatcher = dispatcher.New(logrus.NewEntry(logger))
	app.registerHandlers()

	scriptOut := opts.ScriptOutput
	if scriptOut == nil {
		scriptOut = os.Stdout
	}
	app.plugins = lua.NewState(
		lua.WithExecutionTimeout(cfg.Plugins.Timeout),
		lua.WithOutput(scriptOut),
	)
	if err := app.plugins.Register(
		lua.NewTextModule(),
		lua.NewCommandModule(app),
		lua.NewBufferModule(activeBuffer{app}),
	); err != nil {
		app.plugins.Close()
		return nil, fmt.Errorf("registering plugin modules: %w", err)
	}

	if cfg.Source != "" {
		app.log.WithField("path", cfg.Source).Debug("loaded config")
	}
	for _, script := range cfg.Plugins.Scripts {
		if err := app.RunScript(script); err != nil {
			app.Close()
			return nil, err
		}
	}
	return app, nil
}

// registerHandlers fills the command table.
func (app *Application) registerHandlers() {
	app.dispatcher.Register(text.ActionJustify, text.NewJustifyHandler())
}

// Config returns the resolved configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Logger returns the application logger.
func (app *Application) Logger() *logrus.Logger {
	return app.logger
}

// Dispatcher returns the command dispatcher.
func (app *Application) Dispatcher() *dispatcher.Dispatcher {
	return app.dispatcher
}

// Open makes doc the active document.
func (app *Application) Open(doc *Document) {
	app.mu.Lock()
	defer app.mu.Unlock()

	app.active = doc
	if doc == nil {
		app.dispatcher.SetEditor(nil, nil, "")
		return
	}
	app.dispatcher.SetEditor(doc.Buffer, doc.Cursors, doc.Path)
	app.log.WithFields(logrus.Fields{
		"document":    doc.Name,
		"bytes":       doc.Buffer.Len(),
		"line_ending": doc.Buffer.LineEnding().String(),
	}).Debug("opened document")
}

// OpenFile reads path into a new active document.
func (app *Application) OpenFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewOperationError("open", path, err)
	}
	doc := NewDocument(path, string(data))
	app.Open(doc)
	return doc, nil
}

// Active returns the active document, or nil.
func (app *Application) Active() *Document {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.active
}

// Dispatch runs an action against the active document.
func (app *Application) Dispatch(action input.Action) handler.Result {
	return app.dispatcher.Dispatch(action)
}

// Justify justifies every selection of the active document. A width of
// zero keeps the command's default.
func (app *Application) Justify(width int) (handler.Result, error) {
	if app.Active() == nil {
		return handler.NoOp(), ErrNoActiveDocument
	}
	action := input.NewAction(text.ActionJustify, input.SourceCLI)
	if width > 0 {
		action = action.WithArg(text.DataWidth, width)
	}
	res := app.Dispatch(action)
	if res.IsError() {
		return res, res.Error
	}
	return res, nil
}

// ArgCount is the script argument carried as the action's count.
const ArgCount = "count"

// Execute runs a command for a plugin script and reports its status.
// A numeric "count" argument becomes the action count.
func (app *Application) Execute(name string, args map[string]any) (string, error) {
	action := input.NewAction(name, input.SourcePlugin)
	action.Args.Extra = args
	if n := action.Args.GetInt(ArgCount); n > 0 {
		action = action.WithCount(n)
	}
	res := app.Dispatch(action)
	if res.IsError() {
		return res.Status.String(), res.Error
	}
	return res.Status.String(), nil
}

// Commands returns the names of all registered commands.
func (app *Application) Commands() []string {
	return app.dispatcher.Registry().Names()
}

// RunScript executes a Lua plugin script.
func (app *Application) RunScript(path string) error {
	if app.plugins.IsClosed() {
		return ErrClosed
	}

	app.log.WithField("script", path).Debug("running script")
	if err := app.plugins.DoFile(path); err != nil {
		return NewOperationError("script", path, err)
	}
	return nil
}

// EvalScript runs a Lua chunk and returns its first result as a string.
// A chunk that returns nothing yields "".
func (app *Application) EvalScript(code string) (string, error) {
	if app.plugins.IsClosed() {
		return "", ErrClosed
	}

	v, err := app.plugins.Eval(code)
	if err != nil {
		return "", NewOperationError("eval", "", err)
	}
	if v == glua.LNil {
		return "", nil
	}
	return v.String(), nil
}

// Close releases the plugin runtime. It is safe to call more than once.
func (app *Application) Close() error {
	return app.plugins.Close()
}

// activeBuffer exposes the active document to Lua scripts.
type activeBuffer struct {
	app *Application
}

func (b activeBuffer) Text() string {
	if doc := b.app.Active(); doc != nil {
		return doc.Text()
	}
	return ""
}

func (b activeBuffer) Select(start, end int64) error {
	doc := b.app.Active()
	if doc == nil {
		return ErrNoActiveDocument
	}
	return doc.Select(start, end)
}

func (b activeBuffer) SelectAll() {
	if doc := b.app.Active(); doc != nil {
		doc.SelectAll()
	}
}

func (b activeBuffer) ClearSelection() {
	if doc := b.app.Active(); doc != nil {
		doc.ClearSelection()
	}
}
