// Package discard provides a renderer that drops every request
package discard

import "github.com/arthur-debert/discomon/pkg/types"

// Renderer ignores all display requests. It backs a disabled output so the
// monitor can keep polling without showing anything.
type Renderer struct{}

// New creates a new discard renderer
func New() *Renderer {
	return &Renderer{}
}

// Write does nothing
func (r *Renderer) Write(types.DisplayRequest) error {
	return nil
}
