package disco_test

import (
	"testing"

	"github.com/arthur-debert/discomon/pkg/disco"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEvents(t *testing.T) {
	nop := zerolog.Nop()

	t.Run("cursor is the byte offset past each line", func(t *testing.T) {
		body := []byte(`["t1","h1","a"]` + "\n" + `["t2","h2","b"]` + "\n")
		batch := disco.ParseEvents(body, 100, nop)
		require.Len(t, batch.Events, 2)
		assert.Equal(t, int64(116), batch.Events[0].Cursor)
		assert.Equal(t, int64(132), batch.Events[1].Cursor)
		assert.Equal(t, int64(132), batch.Next)
	})

	t.Run("unterminated tail is left for later", func(t *testing.T) {
		body := []byte(`["t1","h1","a"]` + "\n" + `["t2","h2"`)
		batch := disco.ParseEvents(body, 0, nop)
		require.Len(t, batch.Events, 1)
		assert.Equal(t, int64(16), batch.Events[0].Cursor)
		assert.Equal(t, int64(16), batch.Next)
	})

	t.Run("malformed and blank lines are skipped but counted", func(t *testing.T) {
		body := []byte("garbage\n\n" + `["t1","h1"]` + "\n" + `["t2","h2","ok"]` + "\n")
		batch := disco.ParseEvents(body, 0, nop)
		require.Len(t, batch.Events, 1)
		assert.Equal(t, "ok", batch.Events[0].Message)
		assert.Equal(t, int64(len(body)), batch.Events[0].Cursor)
	})

	t.Run("trailing malformed line moves the next cursor", func(t *testing.T) {
		good := `["t1","h1","ok"]` + "\n"
		body := []byte(good + "garbage\n")
		batch := disco.ParseEvents(body, 0, nop)
		require.Len(t, batch.Events, 1)
		assert.Equal(t, int64(len(good)), batch.Events[0].Cursor)
		assert.Equal(t, int64(len(body)), batch.Next)
	})

	t.Run("only blank lines", func(t *testing.T) {
		batch := disco.ParseEvents([]byte("\n\n"), 10, nop)
		assert.Empty(t, batch.Events)
		assert.Equal(t, int64(12), batch.Next)
	})

	t.Run("empty body", func(t *testing.T) {
		batch := disco.ParseEvents(nil, 42, nop)
		assert.Empty(t, batch.Events)
		assert.Equal(t, int64(42), batch.Next)
	})
}
