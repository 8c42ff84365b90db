package engine

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

// stopAfter returns a SleepFunc that records every requested delay and
// cancels the loop once n sleeps have happened.
func stopAfter(n int, cancel context.CancelFunc, delays *[]time.Duration) SleepFunc {
	return func(ctx context.Context, d time.Duration) error {
		*delays = append(*delays, d)
		if len(*delays) >= n {
			cancel()
		}
		return ctx.Err()
	}
}

func TestRun_NewlineFrames(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	out := &bytes.Buffer{}
	var delays []time.Duration
	e := New(out, "go",
		WithDelay(100*time.Millisecond),
		WithSleep(stopAfter(3, cancel, &delays)),
	)

	// --- Act ---
	err := e.Run(ctx)

	// --- Assert ---
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, "go \no g\n go\n", out.String())
	require.Equal(t, uint64(3), e.Frames())
	if diff := cmp.Diff([]time.Duration{100 * time.Millisecond, 100 * time.Millisecond, 100 * time.Millisecond}, delays); diff != "" {
		t.Errorf("sleep delays mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_InlineFrames(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	out := &bytes.Buffer{}
	var delays []time.Duration
	e := New(out, "hi", WithPrintMode(PrintInline), WithSleep(stopAfter(2, cancel, &delays)))

	err := e.Run(ctx)

	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, "hi \ri h\r", out.String())
	require.NotContains(t, out.String(), "\n")
}

func TestRun_MultipleLinesRenderInOrder(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	out := &bytes.Buffer{}
	var delays []time.Duration
	e := New(out, "ab\ncd", WithSleep(stopAfter(2, cancel, &delays)))

	require.Len(t, e.Lines(), 2)
	_ = e.Run(ctx)

	want := strings.Join([]string{"ab ", "cd ", "b a", "d c"}, "\n") + "\n"
	require.Equal(t, want, out.String())
}

func TestRun_DefaultDelay(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var delays []time.Duration
	e := New(&bytes.Buffer{}, "x", WithSleep(stopAfter(1, cancel, &delays)))

	_ = e.Run(ctx)

	require.Equal(t, []time.Duration{DefaultDelay}, delays)
}

func TestRun_NoLinesStillLoops(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	out := &bytes.Buffer{}
	var delays []time.Duration
	e := New(out, "", WithSleep(stopAfter(2, cancel, &delays)))

	err := e.Run(ctx)

	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, out.String())
	require.Len(t, delays, 2)
}

func TestFrame_EncodesOutput(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	e := New(out, "é", WithEncoder(charmap.ISO8859_1.NewEncoder()))

	require.NoError(t, e.Frame())
	require.NoError(t, e.Frame())

	require.Equal(t, "\xe9 \n \xe9\n", out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestRun_WriteErrorStopsLoop(t *testing.T) {
	t.Parallel()

	slept := false
	e := New(failingWriter{}, "go", WithSleep(func(context.Context, time.Duration) error {
		slept = true
		return nil
	}))

	err := e.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
	assert.False(t, slept, "the loop must stop before sleeping")
	assert.Equal(t, uint64(0), e.Frames())
}

func TestWithDelay_NegativeClampsToZero(t *testing.T) {
	t.Parallel()

	e := New(&bytes.Buffer{}, "x", WithDelay(-time.Second))

	require.Equal(t, time.Duration(0), e.delay)
}

func TestSleep(t *testing.T) {
	t.Parallel()

	t.Run("zero delay returns immediately", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, Sleep(context.Background(), 0))
	})

	t.Run("zero delay observes cancellation", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		require.ErrorIs(t, Sleep(ctx, 0), context.Canceled)
	})

	t.Run("waits for the delay", func(t *testing.T) {
		t.Parallel()
		start := time.Now()
		require.NoError(t, Sleep(context.Background(), 20*time.Millisecond))
		require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("cancellation interrupts a long delay", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		start := time.Now()
		require.ErrorIs(t, Sleep(ctx, time.Hour), context.DeadlineExceeded)
		require.Less(t, time.Since(start), time.Minute)
	})
}

func TestPrintMode_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "newline", PrintNewline.String())
	assert.Equal(t, "inline", PrintInline.String())
	assert.Equal(t, "PrintMode(7)", PrintMode(7).String())
}
