// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/discomon/pkg/types"
)

// Renderer writes one JSON array [timestamp, host, message] per event line.
// Headings and status lines are not emitted: the stream carries events only.
type Renderer struct {
	output  io.Writer
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(output)
	encoder.SetEscapeHTML(false)
	return &Renderer{
		output:  output,
		encoder: encoder,
	}, nil
}

// Write renders an event line as a single-line JSON array
func (r *Renderer) Write(req types.DisplayRequest) error {
	if req.Kind != types.KindEventLine {
		return nil
	}
	return r.encoder.Encode([]string{req.Timestamp, req.Host, req.Message})
}
