package types

// Event is a single log entry produced by the job controller.
type Event struct {
	// Cursor is the position just past this event in the controller's event
	// log. Fetching again from this cursor resumes without duplication.
	Cursor int64 `json:"cursor"`

	// Timestamp as reported by the controller; empty when absent
	Timestamp string `json:"timestamp,omitempty"`

	// Host that emitted the event
	Host string `json:"host"`

	// Message text, e.g. "READY: ..." or "ERROR: ..."
	Message string `json:"message"`
}

// EventBatch is the result of one events fetch. Next is the cursor just past
// everything the fetch consumed, including lines that held no event. It is
// zero when the controller only reports per-event cursors.
type EventBatch struct {
	Events []Event
	Next   int64
}
