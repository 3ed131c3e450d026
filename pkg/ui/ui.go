// Package ui turns display requests from the event monitor into console
// output. It supports discard (monitoring output disabled), plain text,
// colored terminal and JSON output, chosen once when the Output is built.
package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/arthur-debert/discomon/pkg/errors"
	"github.com/arthur-debert/discomon/pkg/logging"
	"github.com/arthur-debert/discomon/pkg/types"
	"github.com/arthur-debert/discomon/pkg/ui/discard"
	"github.com/arthur-debert/discomon/pkg/ui/json"
	"github.com/arthur-debert/discomon/pkg/ui/terminal"
	"github.com/arthur-debert/discomon/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// Write renders a single display request to the renderer's output
	Write(req types.DisplayRequest) error
}

// NewRenderer creates a renderer for a resolved format.
// FormatAuto must be resolved with Select first.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatNone:
		return discard.New(), nil
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}

// Output is the channel the monitor displays through.
type Output struct {
	renderer Renderer
	format   Format
}

// Option configures NewOutput
type Option func(*outputOptions)

type outputOptions struct {
	probe ColorProbe
}

// WithColorProbe replaces the terminal color probe
func WithColorProbe(probe ColorProbe) Option {
	return func(o *outputOptions) {
		o.probe = probe
	}
}

// NewOutput selects a renderer for the label and output:
//  1. an empty label discards everything and marks the output disabled
//  2. "json" renders JSON event arrays
//  3. "nocolor", or a terminal without color support, renders plain text
//  4. anything else renders colored terminal output
//
// The color probe only runs in the last two cases. Its context error, if any,
// is returned.
func NewOutput(ctx context.Context, label string, w io.Writer, opts ...Option) (*Output, error) {
	options := outputOptions{probe: SupportsColor}
	for _, opt := range opts {
		opt(&options)
	}

	format := ParseFormat(label)
	if format == FormatAuto {
		color, err := options.probe(ctx, w)
		if err != nil {
			return nil, err
		}
		format = Select(format, color)
	}

	renderer, err := NewRenderer(format, w)
	if err != nil {
		return nil, err
	}

	logger := logging.GetLogger("ui.Output")
	logger.Debug().
		Str("label", label).
		Str("format", format.String()).
		Msg("Output renderer selected")

	return &Output{renderer: renderer, format: format}, nil
}

// Disabled returns an output that discards everything
func Disabled() *Output {
	return &Output{renderer: discard.New(), format: FormatNone}
}

// Display hands the request to the selected renderer
func (o *Output) Display(req types.DisplayRequest) error {
	if err := o.renderer.Write(req); err != nil {
		return errors.Wrapf(err, errors.ErrRender, "failed to display %s", req.Kind)
	}
	return nil
}

// Enabled reports whether output was requested at all
func (o *Output) Enabled() bool {
	return o.format != FormatNone
}

// Format returns the selected, resolved format
func (o *Output) Format() Format {
	return o.format
}
