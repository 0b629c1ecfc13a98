package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/pwgen/internal/generator"
	"github.com/jask/pwgen/internal/keymap"
	"github.com/jask/pwgen/internal/widget"
)

type control int

const (
	focusLength control = iota
	focusDigits
	focusSymbols
	focusCopy
	controlCount
)

// Options configures an App. Zero values fall back to defaults.
type Options struct {
	Clipboard widget.Clipboard
	Keys      *keymap.Registry
	Logger    *zap.Logger
	Theme     Theme
	// Notice is how long copy feedback stays on screen; zero keeps it until
	// the next copy.
	Notice time.Duration
}

// App renders a PasswordWidget and routes input to it.
type App struct {
	ctx    context.Context
	widget *widget.PasswordWidget
	clip   widget.Clipboard
	keys   *keymap.Registry
	help   help.Model
	styles styles
	logger *zap.Logger

	focus     control
	notice    string
	noticeErr bool
	noticeSeq int
	noticeTTL time.Duration

	width  int
	height int

	unsubscribe func()
}

func New(ctx context.Context, w *widget.PasswordWidget, opts Options) *App {
	if opts.Keys == nil {
		opts.Keys = keymap.NewRegistry(keymap.DefaultBindings())
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	a := &App{
		ctx:       ctx,
		widget:    w,
		clip:      opts.Clipboard,
		keys:      opts.Keys,
		help:      help.New(),
		styles:    newStyles(opts.Theme),
		logger:    opts.Logger,
		noticeTTL: opts.Notice,
		width:     80,
		height:    24,
	}
	a.unsubscribe = w.Subscribe(a.onRegenerate)
	a.logger.Info("widget ready", settingsFields(w.Settings())...)
	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) onRegenerate(ev widget.Event) {
	fields := append(settingsFields(ev.Settings), zap.String("reason", string(ev.Reason)))
	a.logger.Debug("password regenerated", fields...)
}

func settingsFields(s generator.Settings) []zap.Field {
	return []zap.Field{
		zap.Int("length", s.Length),
		zap.Bool("digits", s.IncludeDigits),
		zap.Bool("symbols", s.IncludeSymbols),
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(m)
	case copyResultMsg:
		return a, a.handleCopyResult(m)
	case noticeExpiredMsg:
		if m.seq == a.noticeSeq {
			a.notice = ""
			a.noticeErr = false
		}
		return a, nil
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	w := a.widget
	switch a.keys.Lookup(msg) {
	case keymap.ActionQuit:
		if a.unsubscribe != nil {
			a.unsubscribe()
		}
		return a, tea.Quit
	case keymap.ActionHelp:
		a.help.ShowAll = !a.help.ShowAll
	case keymap.ActionFocusNext:
		a.focus = (a.focus + 1) % controlCount
	case keymap.ActionFocusPrev:
		a.focus = (a.focus + controlCount - 1) % controlCount
	case keymap.ActionLengthDown:
		w.AdjustLength(-1)
	case keymap.ActionLengthUp:
		w.AdjustLength(1)
	case keymap.ActionLengthDown10:
		w.AdjustLength(-10)
	case keymap.ActionLengthUp10:
		w.AdjustLength(10)
	case keymap.ActionLengthMin:
		w.SetLength(generator.MinLength)
	case keymap.ActionLengthMax:
		w.SetLength(generator.MaxLength)
	case keymap.ActionToggleDigits:
		w.ToggleDigits()
	case keymap.ActionToggleSymbols:
		w.ToggleSymbols()
	case keymap.ActionRegenerate:
		w.Regenerate()
	case keymap.ActionCopy:
		return a, a.copy()
	case keymap.ActionActivate:
		return a, a.activate()
	}
	return a, nil
}

func (a *App) activate() tea.Cmd {
	switch a.focus {
	case focusDigits:
		a.widget.ToggleDigits()
	case focusSymbols:
		a.widget.ToggleSymbols()
	case focusCopy:
		return a.copy()
	case focusLength:
		a.widget.Regenerate()
	}
	return nil
}

// copy highlights the password now and writes it off the event loop.
func (a *App) copy() tea.Cmd {
	req := a.widget.BeginCopy()
	a.noticeSeq++
	seq := a.noticeSeq
	ctx, clip := a.ctx, a.clip
	return func() tea.Msg {
		return copyResultMsg{seq: seq, length: len(req.Text), err: req.Write(ctx, clip)}
	}
}

func (a *App) handleCopyResult(m copyResultMsg) tea.Cmd {
	if m.seq != a.noticeSeq {
		return nil
	}
	if m.err != nil {
		a.logger.Warn("clipboard write failed", zap.Error(m.err))
		a.notice = "Copy failed: " + m.err.Error()
		a.noticeErr = true
	} else {
		a.logger.Info("password copied", zap.Int("length", m.length))
		a.notice = "Copied to clipboard"
		a.noticeErr = false
	}
	if a.noticeTTL <= 0 {
		return nil
	}
	seq := m.seq
	return tea.Tick(a.noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}
