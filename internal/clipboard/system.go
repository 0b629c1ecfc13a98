package clipboard

import (
	"context"
	"fmt"

	atotto "github.com/atotto/clipboard"
)

// System writes through the OS clipboard utilities (pbcopy, xclip, wl-copy, ...).
type System struct{}

func (System) WriteText(ctx context.Context, text string) error {
	if atotto.Unsupported {
		return fmt.Errorf("system clipboard: %w", ErrUnsupported)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := atotto.WriteAll(text); err != nil {
		return fmt.Errorf("system clipboard: %w", err)
	}
	return nil
}
