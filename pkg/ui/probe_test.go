package ui

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEnv map[string]string

func (e fakeEnv) Environ() []string {
	var out []string
	for k, v := range e {
		out = append(out, k+"="+v)
	}
	return out
}

func (e fakeEnv) Getenv(key string) string {
	return e[key]
}

func openTTY(t *testing.T) *os.File {
	t.Helper()
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty not available: %v", err)
	}
	t.Cleanup(func() {
		_ = tty.Close()
		_ = ptmx.Close()
	})
	return tty
}

func TestSupportsColorNonTerminal(t *testing.T) {
	t.Run("writer without file descriptor", func(t *testing.T) {
		ok, err := SupportsColor(context.Background(), &bytes.Buffer{})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("regular file", func(t *testing.T) {
		f, err := os.CreateTemp(t.TempDir(), "sink")
		require.NoError(t, err)
		defer func() { _ = f.Close() }()

		ok, err := SupportsColor(context.Background(), f)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestSupportsColorTerminal(t *testing.T) {
	tests := []struct {
		name string
		env  fakeEnv
		want bool
	}{
		{"256 color terminal", fakeEnv{"TERM": "xterm-256color"}, true},
		{"basic xterm", fakeEnv{"TERM": "xterm"}, true},
		{"truecolor", fakeEnv{"TERM": "screen", "COLORTERM": "truecolor", "TERM_PROGRAM": "tmux"}, true},
		{"dumb terminal", fakeEnv{"TERM": "dumb"}, false},
		{"no TERM at all", fakeEnv{}, false},
		{"NO_COLOR set", fakeEnv{"TERM": "xterm-256color", "NO_COLOR": "1"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tty := openTTY(t)
			ok, err := probeColor(context.Background(), tty, tt.env)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestSupportsColorPropagatesCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok, err := SupportsColor(ctx, &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)
}
