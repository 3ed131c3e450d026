package text_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/discomon/pkg/types"
	"github.com/arthur-debert/discomon/pkg/ui/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	tests := []struct {
		name string
		req  types.DisplayRequest
		want string
	}{
		{"event line", types.EventLine("t1", "h1", "ERROR: disk full"), "t1 h1 ERROR: disk full\n"},
		{"status line", types.StatusLine("Status: [reduce] 0 waiting, 2 running, 1 done, 0 failed"), "Status: [reduce] 0 waiting, 2 running, 1 done, 0 failed\n"},
		{"heading is not shown", types.Heading("wordcount"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			r, err := text.New(buf)
			require.NoError(t, err)

			require.NoError(t, r.Write(tt.req))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
