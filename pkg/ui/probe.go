package ui

import (
	"context"
	"io"

	"github.com/arthur-debert/discomon/pkg/logging"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorProbe reports whether rich terminal formatting is usable on w
type ColorProbe func(ctx context.Context, w io.Writer) (bool, error)

type fder interface {
	Fd() uintptr
}

// SupportsColor returns true only when w is an interactive terminal whose
// color profile offers more than two colors. Every probe failure yields false.
// The only error returned is the context's, so an interrupt while probing
// reaches the caller instead of being mistaken for "no color".
func SupportsColor(ctx context.Context, w io.Writer) (bool, error) {
	return probeColor(ctx, w, nil)
}

func probeColor(ctx context.Context, w io.Writer, environ termenv.Environ) (bool, error) {
	log := logging.GetLogger("ui.probe")

	if err := ctx.Err(); err != nil {
		return false, err
	}

	f, ok := w.(fder)
	if !ok {
		log.Debug().Msg("Output has no file descriptor, no color")
		return false, nil
	}
	fd := f.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		log.Debug().Uint64("fd", uint64(fd)).Msg("Output is not a terminal, no color")
		return false, nil
	}

	opts := []termenv.OutputOption{termenv.WithTTY(true)}
	if environ != nil {
		opts = append(opts, termenv.WithEnvironment(environ))
	}
	out := termenv.NewOutput(w, opts...)
	profile := out.EnvColorProfile()

	if err := ctx.Err(); err != nil {
		return false, err
	}

	log.Debug().
		Int("profile", int(profile)).
		Bool("noColorEnv", out.EnvNoColor()).
		Msg("Terminal color profile detected")

	return profile != termenv.Ascii, nil
}
