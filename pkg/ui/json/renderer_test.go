package json_test

import (
	"bytes"
	stdjson "encoding/json"
	"testing"

	"github.com/arthur-debert/discomon/pkg/types"
	"github.com/arthur-debert/discomon/pkg/ui/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteEventLine(t *testing.T) {
	buf := &bytes.Buffer{}
	r, err := json.New(buf)
	require.NoError(t, err)

	require.NoError(t, r.Write(types.EventLine("t1", "h1", "READY")))
	assert.Equal(t, `["t1","h1","READY"]`+"\n", buf.String())

	var decoded []string
	require.NoError(t, stdjson.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, []string{"t1", "h1", "READY"}, decoded)
}

func TestWriteDoesNotEscapeHTML(t *testing.T) {
	buf := &bytes.Buffer{}
	r, err := json.New(buf)
	require.NoError(t, err)

	require.NoError(t, r.Write(types.EventLine("t1", "h1", "a <b> & \"c\"")))
	assert.Equal(t, `["t1","h1","a <b> & \"c\""]`+"\n", buf.String())
}

func TestHeadingAndStatusAreSuppressed(t *testing.T) {
	buf := &bytes.Buffer{}
	r, err := json.New(buf)
	require.NoError(t, err)

	require.NoError(t, r.Write(types.Heading("wordcount")))
	require.NoError(t, r.Write(types.StatusLine("Status: [map] 1 waiting, 0 running, 0 done, 0 failed")))
	assert.Empty(t, buf.String())
}
