package ui

// EnvEventsFormat is the Disco client's own variable for the format label
const EnvEventsFormat = "DISCO_EVENTS"

// Format represents the output format type
type Format int

const (
	// FormatNone discards all output; the monitor keeps polling silently
	FormatNone Format = iota
	// FormatAuto picks FormatTerminal or FormatText based on terminal capabilities
	FormatAuto
	// FormatTerminal renders colored event lines for interactive terminals
	FormatTerminal
	// FormatText renders plain text output without any styling
	FormatText
	// FormatJSON renders one JSON array per event for machine consumption
	FormatJSON
)

// Format labels understood by ParseFormat
const (
	LabelJSON    = "json"
	LabelNoColor = "nocolor"
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatNone:
		return "none"
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat maps a format label to a Format. It never fails: an empty label
// disables output, "json" and "nocolor" select their formats and any other
// value asks for auto detection.
func ParseFormat(label string) Format {
	switch label {
	case "":
		return FormatNone
	case LabelJSON:
		return FormatJSON
	case LabelNoColor:
		return FormatText
	default:
		return FormatAuto
	}
}

// Select resolves FormatAuto against the terminal color capability. Every other
// format is returned unchanged.
func Select(format Format, color bool) Format {
	if format != FormatAuto {
		return format
	}
	if color {
		return FormatTerminal
	}
	return FormatText
}
