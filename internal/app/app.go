// Package app wires configuration, the editor driver, the renderer and a
// terminal backend into a running application.
package app

import (
	"cmp"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/projterm/internal/config"
	"github.com/dshills/projterm/internal/document"
	"github.com/dshills/projterm/internal/editor"
	"github.com/dshills/projterm/internal/input"
	"github.com/dshills/projterm/internal/renderer"
	"github.com/dshills/projterm/internal/renderer/backend"
)

// reloadDebounce is how long the config file must be quiet before a reload.
const reloadDebounce = 150 * time.Millisecond

// Application owns the event loop. The editor state lives in the driver
// and is only touched from the goroutine running Run.
type Application struct {
	opts Options

	config   config.Config
	theme    renderer.Theme
	backend  backend.Backend
	renderer *renderer.Renderer
	driver   *editor.Driver

	logger  *Logger
	logFile *os.File
	metrics *Metrics

	running  atomic.Bool
	done     chan struct{}
	stopOnce sync.Once
}

// Options configures the application.
type Options struct {
	// ConfigPath is the TOML file to load. Empty means defaults and
	// environment only.
	ConfigPath string

	// Document is the text shown at startup.
	Document document.String

	// LogLevel and LogFile override the [log] section when set.
	LogLevel string
	LogFile  string

	// Logger is used as is when set, ignoring LogLevel and LogFile.
	Logger *Logger

	// Watch reloads the configuration when ConfigPath changes.
	Watch bool
}

// reloadRequest is the interrupt payload that asks the loop to reload
// the configuration.
type reloadRequest struct{}

// New loads the configuration and prepares the theme and logger.
func New(opts Options) (*Application, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, NewOperationError("load", opts.ConfigPath, err).WithContext("config")
	}
	theme, err := renderer.NewTheme(cfg.Theme.Colors())
	if err != nil {
		return nil, NewOperationError("load", "theme", err)
	}

	app := &Application{
		opts:    opts,
		config:  cfg,
		theme:   theme,
		metrics: NewMetrics(),
		done:    make(chan struct{}),
	}
	if err := app.setupLogger(); err != nil {
		return nil, err
	}
	return app, nil
}

func (app *Application) setupLogger() error {
	if app.opts.Logger != nil {
		app.logger = app.opts.Logger
		return nil
	}

	name := cmp.Or(app.opts.LogLevel, app.config.Log.Level)
	level, ok := ParseLogLevel(name)
	if !ok {
		return NewOperationError("parse", name, config.ErrInvalidValue).WithContext("log level")
	}

	var out io.Writer = io.Discard
	if path := cmp.Or(app.opts.LogFile, app.config.Log.File); path != "" {
		f, err := OpenLogFile(path)
		if err != nil {
			return err
		}
		app.logFile = f
		out = f
	}

	app.logger = NewLogger(LoggerConfig{Level: level, Output: out, Prefix: "projterm"})
	return nil
}

// Config returns the configuration currently in effect.
func (app *Application) Config() config.Config {
	return app.config
}

// SetBackend sets the surface Run draws on and reads events from.
func (app *Application) SetBackend(b backend.Backend) error {
	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// State returns the editor state after the last handled event.
func (app *Application) State() editor.State {
	if app.driver == nil {
		return editor.State{}
	}
	return app.driver.State()
}

// Run initializes the backend and processes events until the user quits
// or Shutdown is called. A user quit returns ErrQuit; Shutdown returns nil.
func (app *Application) Run() error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return NewOperationError("init", "backend", err)
	}
	defer app.backend.Shutdown()

	app.renderer = renderer.New(app.backend, app.theme)

	width, height := app.backend.Size()
	if width <= 0 || height <= 0 {
		width, height = app.config.Editor.InitialWidth, app.config.Editor.InitialHeight
	}
	state := editor.New(app.opts.Document, width, height)
	state.Layout = app.config.Layout.EditorLayout()
	app.driver = editor.NewDriver(state, nil)
	app.renderer.Render(app.driver.Terminal())

	if app.opts.Watch && app.opts.ConfigPath != "" {
		if w := app.startWatcher(); w != nil {
			defer func() { _ = w.Close() }()
		}
	}

	app.Logger().Info("started %dx%d, %d runes", width, height, app.opts.Document.Len())
	err := app.eventLoop()
	app.Logger().Info("session %s", app.metrics.Snapshot().Summary())
	return err
}

func (app *Application) eventLoop() error {
	for {
		ev := app.backend.PollEvent()
		switch ev.Type {
		case backend.EventNone:
			if app.stopped() {
				app.Logger().Info("shutting down")
				return nil
			}
		case backend.EventInterrupt:
			if _, ok := ev.Data.(reloadRequest); ok {
				app.reload()
			}
		default:
			in, ok := backend.ToInput(ev)
			if !ok {
				continue
			}
			if isQuit(in) {
				app.Logger().Info("quit requested")
				return ErrQuit
			}
			app.handle(in)
		}
	}
}

func isQuit(ev input.Event) bool {
	kb, ok := ev.(input.KeyboardEvent)
	return ok && (kb.Char == input.CtrlQ || kb.Char == input.CtrlC)
}

// handle projects and paints ev, then feeds the timings back to the
// editor so the status bar shows them.
func (app *Application) handle(ev input.Event) {
	timer := StartTimer()
	t := app.driver.Dispatch(ev)
	project := timer.Stop()
	app.renderer.Render(t)
	repaint := timer.Stop()

	app.metrics.RecordEvent(project, repaint)
	app.Logger().Debug("%s project=%s repaint=%s", input.Describe(ev), project, repaint)

	app.renderer.Render(app.driver.MeasurementEvent(app.metrics.Snapshot().Measurement()))
}

// RequestReload asks the running loop to reload the configuration.
// It is safe to call from any goroutine.
func (app *Application) RequestReload() error {
	if app.backend == nil {
		return ErrNoBackend
	}
	app.backend.PostInterrupt(reloadRequest{})
	return nil
}

// reload applies a fresh configuration. A configuration that fails to load
// is logged and the current one stays in effect.
func (app *Application) reload() {
	log := app.Logger().WithComponent("config")

	cfg, err := config.Load(app.opts.ConfigPath)
	if err != nil {
		log.Warn("reload failed: %v", err)
		return
	}
	theme, err := renderer.NewTheme(cfg.Theme.Colors())
	if err != nil {
		log.Warn("reload failed: %v", err)
		return
	}

	app.config = cfg
	app.theme = theme
	if app.opts.Logger == nil && app.opts.LogLevel == "" {
		level, _ := ParseLogLevel(cfg.Log.Level)
		app.logger.SetLevel(level)
	}

	app.renderer.SetTheme(theme)
	app.renderer.Render(app.driver.SetLayout(cfg.Layout.EditorLayout()))
	app.metrics.RecordReload()
	log.Info("reloaded %s", app.opts.ConfigPath)
}

func (app *Application) startWatcher() *config.Watcher {
	log := app.Logger().WithComponent("watcher")

	w, err := config.NewWatcher(app.opts.ConfigPath, config.WithDebounce(reloadDebounce))
	if err != nil {
		log.Warn("not watching %s: %v", app.opts.ConfigPath, err)
		return nil
	}
	w.OnChange(func(ev config.Event) {
		log.Debug("%s %s", ev.Op, ev.Path)
		_ = app.RequestReload()
	})
	w.OnError(func(err error) {
		log.Warn("%v", err)
	})
	return w
}

func (app *Application) stopped() bool {
	select {
	case <-app.done:
		return true
	default:
		return false
	}
}

// Shutdown stops Run and releases the log file. It is safe to call more
// than once and from any goroutine.
func (app *Application) Shutdown() {
	app.stopOnce.Do(func() {
		close(app.done)
		if app.backend != nil {
			app.backend.Shutdown()
		}
		if app.logFile != nil {
			_ = app.logFile.Close()
		}
	})
}
