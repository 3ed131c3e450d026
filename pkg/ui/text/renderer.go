// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/discomon/pkg/types"
)

// Renderer provides plain text output without colors or styling.
// Headings are not shown.
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// Write renders event lines as "<timestamp> <host> <message>" and status lines verbatim
func (r *Renderer) Write(req types.DisplayRequest) error {
	var err error
	switch req.Kind {
	case types.KindEventLine:
		_, err = fmt.Fprintf(r.output, "%s %s %s\n", req.Timestamp, req.Host, req.Message)
	case types.KindStatusLine:
		_, err = fmt.Fprintln(r.output, req.Text)
	}
	return err
}
