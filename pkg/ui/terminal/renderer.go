// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/discomon/pkg/types"
	"github.com/muesli/termenv"
)

// lineClear erases the rest of the line after a reset, so a shorter line
// drawn over a longer one leaves nothing behind.
const lineClear = termenv.CSI + termenv.EraseLineRightSeq

// Class is the visual treatment a message gets
type Class int

const (
	ClassPlain Class = iota
	ClassError
	ClassWarning
	ClassReady
)

// String returns the string representation of the class
func (c Class) String() string {
	switch c {
	case ClassError:
		return "error"
	case ClassWarning:
		return "warning"
	case ClassReady:
		return "ready"
	default:
		return "plain"
	}
}

// Classify picks a treatment from the message's case-sensitive prefix
func Classify(message string) Class {
	switch {
	case strings.HasPrefix(message, "ERROR"):
		return ClassError
	case strings.HasPrefix(message, "WARN"):
		return ClassWarning
	case strings.HasPrefix(message, "READY"):
		return ClassReady
	default:
		return ClassPlain
	}
}

// Renderer provides colored, line-oriented terminal output
type Renderer struct {
	output  io.Writer
	profile termenv.Profile
}

// New creates a new terminal renderer.
// Capability detection happens before a terminal renderer is chosen, so the
// ANSI profile is always used here.
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{
		output:  w,
		profile: termenv.ANSI,
	}, nil
}

// Write renders a display request with colors
func (r *Renderer) Write(req types.DisplayRequest) error {
	var line string
	switch req.Kind {
	case types.KindHeading:
		line = r.Heading(req.Text)
	case types.KindStatusLine:
		line = r.Status(req.Text)
	case types.KindEventLine:
		line = r.Event(req.Timestamp, req.Host, req.Message)
	default:
		return nil
	}
	_, err := io.WriteString(r.output, line)
	return err
}

// Heading renders the job name, white on blue
func (r *Renderer) Heading(text string) string {
	return r.paint(text+": ", termenv.ANSIWhite, termenv.ANSIBlue) + lineClear + "\n"
}

// Status renders a status line in cyan
func (r *Renderer) Status(text string) string {
	return r.paint(text, termenv.ANSICyan, nil) + lineClear + "\n"
}

// Event renders "<timestamp> <host> <message>" with the host left aligned in
// a 10 column field.
func (r *Renderer) Event(timestamp, host, message string) string {
	return fmt.Sprintf("%s %s %s\n",
		r.paint(timestamp, termenv.ANSIGreen, nil),
		r.paint(fmt.Sprintf("%-10s", host), termenv.ANSIBlue, nil),
		r.Message(message))
}

// Message renders a message according to its class
func (r *Renderer) Message(message string) string {
	switch Classify(message) {
	case ClassError:
		return r.paint(message, termenv.ANSIRed, nil) + lineClear
	case ClassWarning:
		return r.paint(message, termenv.ANSIMagenta, nil) + lineClear
	case ClassReady:
		return r.paint(" "+message+" ", termenv.ANSIWhite, termenv.ANSIGreen) + lineClear
	default:
		return r.paint(message, termenv.ANSIBlack, termenv.ANSIWhite) + lineClear
	}
}

// paint applies the background and foreground colors; a nil color keeps the
// terminal default.
func (r *Renderer) paint(text string, fg, bg termenv.Color) string {
	return r.profile.String(text).Background(bg).Foreground(fg).String()
}
