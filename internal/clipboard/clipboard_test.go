package clipboard

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubWriter struct {
	err   error
	calls []string
}

func (s *stubWriter) WriteText(_ context.Context, text string) error {
	s.calls = append(s.calls, text)
	return s.err
}

func TestFallbackStopsAtFirstSuccess(t *testing.T) {
	first := &stubWriter{err: errors.New("no xclip")}
	second := &stubWriter{}
	third := &stubWriter{}

	err := Fallback{first, second, third}.WriteText(context.Background(), "hunter22")
	require.NoError(t, err)
	require.Equal(t, []string{"hunter22"}, first.calls)
	require.Equal(t, []string{"hunter22"}, second.calls)
	require.Empty(t, third.calls)
}

func TestFallbackJoinsErrors(t *testing.T) {
	a := errors.New("a failed")
	b := errors.New("b failed")
	err := Fallback{&stubWriter{err: a}, &stubWriter{err: b}}.WriteText(context.Background(), "x")
	require.ErrorIs(t, err, a)
	require.ErrorIs(t, err, b)
}

func TestFallbackEmpty(t *testing.T) {
	require.ErrorIs(t, Fallback{}.WriteText(context.Background(), "x"), ErrUnsupported)
}

func TestFallbackHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w := &stubWriter{}
	require.ErrorIs(t, Fallback{w}.WriteText(ctx, "x"), context.Canceled)
	require.Empty(t, w.calls)
}

func TestOSC52WritesSequence(t *testing.T) {
	var buf bytes.Buffer
	o := &OSC52{Out: &buf}
	require.NoError(t, o.WriteText(context.Background(), "Abc123!@"))

	out := buf.String()
	require.Contains(t, out, "\x1b]52;")
	require.Contains(t, out, base64.StdEncoding.EncodeToString([]byte("Abc123!@")))
}

func TestOSC52Tmux(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&OSC52{Out: &buf, Tmux: true}).WriteText(context.Background(), "x"))
	require.Contains(t, buf.String(), "\x1bPtmux;")
}

func TestOSC52WithoutOutput(t *testing.T) {
	require.ErrorIs(t, (&OSC52{}).WriteText(context.Background(), "x"), ErrUnsupported)
}

func TestNewModes(t *testing.T) {
	var buf bytes.Buffer

	w, err := New(Options{Mode: "osc52", Out: &buf})
	require.NoError(t, err)
	require.IsType(t, &OSC52{}, w)

	w, err = New(Options{Mode: "System"})
	require.NoError(t, err)
	require.IsType(t, System{}, w)

	w, err = New(Options{})
	require.NoError(t, err)
	fb, ok := w.(Fallback)
	require.True(t, ok)
	require.Len(t, fb, 2)

	_, err = New(Options{Mode: "carrier-pigeon"})
	require.ErrorIs(t, err, ErrUnsupported)
}
