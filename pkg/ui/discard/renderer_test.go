package discard_test

import (
	"testing"

	"github.com/arthur-debert/discomon/pkg/types"
	"github.com/arthur-debert/discomon/pkg/ui/discard"
	"github.com/stretchr/testify/assert"
)

func TestWriteIsNoop(t *testing.T) {
	r := discard.New()
	for _, req := range []types.DisplayRequest{
		types.Heading("wordcount"),
		types.StatusLine("Status: [map] 0 waiting, 0 running, 0 done, 0 failed"),
		types.EventLine("t1", "h1", "ERROR: boom"),
	} {
		assert.NoError(t, r.Write(req))
	}
}
