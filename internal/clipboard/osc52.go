package clipboard

import (
	"context"
	"fmt"
	"io"

	"github.com/aymanbagabas/go-osc52/v2"
)

// OSC52 asks the terminal emulator to set the clipboard. It works over SSH but
// cannot confirm that the terminal honoured the request.
type OSC52 struct {
	Out    io.Writer
	Tmux   bool
	Screen bool
}

func (o *OSC52) WriteText(ctx context.Context, text string) error {
	if o.Out == nil {
		return fmt.Errorf("osc52: %w", ErrUnsupported)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	seq := osc52.New(text)
	switch {
	case o.Tmux:
		seq = seq.Tmux()
	case o.Screen:
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(o.Out); err != nil {
		return fmt.Errorf("osc52: %w", err)
	}
	return nil
}
