// Package clipboard writes text to the host clipboard. Writers are best
// effort: callers report failures but never treat them as fatal.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var ErrUnsupported = errors.New("clipboard unsupported")

type Writer interface {
	WriteText(ctx context.Context, text string) error
}

const (
	ModeAuto   = "auto"
	ModeSystem = "system"
	ModeOSC52  = "osc52"
)

type Options struct {
	Mode string
	// Out receives OSC 52 sequences; defaults to stderr.
	Out    io.Writer
	Tmux   bool
	Screen bool
}

// New builds the writer for opts.Mode.
func New(opts Options) (Writer, error) {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	osc := &OSC52{Out: out, Tmux: opts.Tmux, Screen: opts.Screen}

	switch strings.ToLower(strings.TrimSpace(opts.Mode)) {
	case "", ModeAuto:
		return Fallback{System{}, osc}, nil
	case ModeSystem:
		return System{}, nil
	case ModeOSC52:
		return osc, nil
	default:
		return nil, fmt.Errorf("clipboard mode %q: %w", opts.Mode, ErrUnsupported)
	}
}

// Fallback tries each writer in order and stops at the first success.
type Fallback []Writer

func (f Fallback) WriteText(ctx context.Context, text string) error {
	if len(f) == 0 {
		return ErrUnsupported
	}
	var errs []error
	for _, w := range f {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := w.WriteText(ctx, text)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
