// Package widget holds the password widget's state and behaviour, independent
// of any rendering layer. Every settings mutator regenerates the password
// directly and then notifies subscribers.
package widget

import (
	"context"
	"fmt"

	"github.com/jask/pwgen/internal/generator"
)

// Clipboard is the host capability used by copy.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

type State string

const (
	StateIdle         State = "idle"
	StateRegenerating State = "regenerating"
)

// Reason records which input caused a regeneration.
type Reason string

const (
	ReasonInit       Reason = "init"
	ReasonLength     Reason = "length"
	ReasonDigits     Reason = "digits"
	ReasonSymbols    Reason = "symbols"
	ReasonRegenerate Reason = "regenerate"
)

// Event is delivered to subscribers after each regeneration.
type Event struct {
	Reason   Reason
	Settings generator.Settings
	Password string
}

// Selection is a half-open range over the displayed password.
type Selection struct {
	Start, End int
}

func (s Selection) Empty() bool { return s.End <= s.Start }

type PasswordWidget struct {
	gen       *generator.Generator
	settings  generator.Settings
	password  string
	state     State
	selection Selection
	subs      map[int]func(Event)
	nextSub   int
}

// New builds a widget and generates the initial password immediately.
func New(settings generator.Settings, gen *generator.Generator) *PasswordWidget {
	if gen == nil {
		gen = generator.New(nil)
	}
	w := &PasswordWidget{
		gen:      gen,
		settings: settings.Clamped(),
		state:    StateIdle,
		subs:     map[int]func(Event){},
	}
	w.regenerate(ReasonInit)
	return w
}

func (w *PasswordWidget) Settings() generator.Settings { return w.settings }
func (w *PasswordWidget) Password() string             { return w.password }
func (w *PasswordWidget) State() State                 { return w.state }
func (w *PasswordWidget) Selection() Selection         { return w.selection }

// Subscribe registers fn for regeneration events and returns a func that
// removes it.
func (w *PasswordWidget) Subscribe(fn func(Event)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	id := w.nextSub
	w.nextSub++
	w.subs[id] = fn
	return func() { delete(w.subs, id) }
}

// SetLength clamps n into the allowed range. It regenerates only when the
// clamped value differs from the current one.
func (w *PasswordWidget) SetLength(n int) {
	n = generator.ClampLength(n)
	if n == w.settings.Length {
		return
	}
	w.settings.Length = n
	w.regenerate(ReasonLength)
}

func (w *PasswordWidget) AdjustLength(delta int) {
	w.SetLength(w.settings.Length + delta)
}

func (w *PasswordWidget) SetIncludeDigits(on bool) {
	if on == w.settings.IncludeDigits {
		return
	}
	w.settings.IncludeDigits = on
	w.regenerate(ReasonDigits)
}

func (w *PasswordWidget) SetIncludeSymbols(on bool) {
	if on == w.settings.IncludeSymbols {
		return
	}
	w.settings.IncludeSymbols = on
	w.regenerate(ReasonSymbols)
}

func (w *PasswordWidget) ToggleDigits()  { w.SetIncludeDigits(!w.settings.IncludeDigits) }
func (w *PasswordWidget) ToggleSymbols() { w.SetIncludeSymbols(!w.settings.IncludeSymbols) }

// Regenerate re-rolls the password with unchanged settings.
func (w *PasswordWidget) Regenerate() {
	w.regenerate(ReasonRegenerate)
}

func (w *PasswordWidget) regenerate(reason Reason) {
	w.state = StateRegenerating
	w.password = w.gen.Generate(w.settings)
	w.selection = Selection{}
	w.state = StateIdle

	ev := Event{Reason: reason, Settings: w.settings, Password: w.password}
	for id := 0; id < w.nextSub; id++ {
		if fn, ok := w.subs[id]; ok {
			fn(ev)
		}
	}
}

// CopyRequest carries the text captured at the moment copy was requested.
type CopyRequest struct {
	Text string
}

// BeginCopy selects the whole displayed password and captures it for writing.
// The write itself can then happen off the event loop.
func (w *PasswordWidget) BeginCopy() CopyRequest {
	w.selection = Selection{Start: 0, End: len(w.password)}
	return CopyRequest{Text: w.password}
}

// Write attempts the clipboard write once.
func (r CopyRequest) Write(ctx context.Context, cb Clipboard) error {
	if cb == nil {
		return fmt.Errorf("copy: no clipboard configured")
	}
	if err := cb.WriteText(ctx, r.Text); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	return nil
}

// CopyToClipboard selects the password and writes it synchronously. A failed
// write leaves settings and password untouched.
func (w *PasswordWidget) CopyToClipboard(ctx context.Context, cb Clipboard) error {
	return w.BeginCopy().Write(ctx, cb)
}
