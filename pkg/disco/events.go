package disco

import (
	"bytes"
	"encoding/json"

	"github.com/arthur-debert/discomon/pkg/types"
	"github.com/rs/zerolog"
)

// ParseEvents decodes a raw event log chunk that starts at byte offset since.
// Each line is a JSON array [timestamp, host, message]; an event's cursor is
// the offset just past its line. A trailing line without newline is still
// being written and is left for the next fetch. Undecodable lines are skipped,
// but the batch's Next cursor moves past them.
func ParseEvents(body []byte, since int64, logger zerolog.Logger) types.EventBatch {
	var events []types.Event
	offset := since

	for {
		i := bytes.IndexByte(body, '\n')
		if i < 0 {
			break
		}
		line := body[:i]
		body = body[i+1:]
		offset += int64(len(line)) + 1

		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		var fields []string
		if err := json.Unmarshal(line, &fields); err != nil || len(fields) < 3 {
			logger.Warn().Err(err).Int64("cursor", offset).Bytes("line", line).Msg("Skipping malformed event")
			continue
		}

		events = append(events, types.Event{
			Cursor:    offset,
			Timestamp: fields[0],
			Host:      fields[1],
			Message:   fields[2],
		})
	}
	return types.EventBatch{Events: events, Next: offset}
}
