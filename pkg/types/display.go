package types

// RequestKind identifies which variant a DisplayRequest carries
type RequestKind int

const (
	// KindHeading is the job name shown once when monitoring starts
	KindHeading RequestKind = iota

	// KindStatusLine is a formatted task-state summary
	KindStatusLine

	// KindEventLine is a single controller event
	KindEventLine
)

// String returns the string representation of the kind
func (k RequestKind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindStatusLine:
		return "status"
	case KindEventLine:
		return "event"
	default:
		return "unknown"
	}
}

// DisplayRequest is the single contract between the monitor and the renderers.
// Text is set for headings and status lines; Timestamp, Host and Message are
// set for event lines.
type DisplayRequest struct {
	Kind RequestKind

	Text string

	Timestamp string
	Host      string
	Message   string
}

// Heading creates a heading request
func Heading(text string) DisplayRequest {
	return DisplayRequest{Kind: KindHeading, Text: text}
}

// StatusLine creates a status line request
func StatusLine(text string) DisplayRequest {
	return DisplayRequest{Kind: KindStatusLine, Text: text}
}

// EventLine creates an event line request
func EventLine(timestamp, host, message string) DisplayRequest {
	return DisplayRequest{Kind: KindEventLine, Timestamp: timestamp, Host: host, Message: message}
}

// EventLineFor creates an event line request from a controller event
func EventLineFor(e Event) DisplayRequest {
	return EventLine(e.Timestamp, e.Host, e.Message)
}
