package types_test

import (
	"testing"

	"github.com/arthur-debert/discomon/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestSnapshotFromJobInfo(t *testing.T) {
	tests := []struct {
		name string
		info *types.JobInfo
		want types.StatusSnapshot
	}{
		{
			name: "map phase when reduce has not started",
			info: &types.JobInfo{RedI: []int{0, 0, 0, 0}, MapI: []int{1, 2, 3, 0}},
			want: types.StatusSnapshot{Phase: types.PhaseMap, Waiting: 1, Running: 2, Done: 3, Failed: 0},
		},
		{
			name: "reduce phase once a reduce task runs",
			info: &types.JobInfo{RedI: []int{0, 1, 0, 0}, MapI: []int{0, 0, 8, 0}},
			want: types.StatusSnapshot{Phase: types.PhaseReduce, Waiting: 0, Running: 1, Done: 0, Failed: 0},
		},
		{
			name: "waiting reduce tasks alone keep the map phase",
			info: &types.JobInfo{RedI: []int{4, 0, 0, 0}, MapI: []int{0, 3, 5, 0}},
			want: types.StatusSnapshot{Phase: types.PhaseMap, Waiting: 0, Running: 3, Done: 5, Failed: 0},
		},
		{
			name: "failed reduce task switches to reduce",
			info: &types.JobInfo{RedI: []int{2, 0, 0, 1}, MapI: []int{0, 0, 4, 0}},
			want: types.StatusSnapshot{Phase: types.PhaseReduce, Waiting: 2, Running: 0, Done: 0, Failed: 1},
		},
		{
			name: "extra counters are ignored",
			info: &types.JobInfo{RedI: []int{0, 0, 0, 0, 9}, MapI: []int{1, 1, 1, 1, 7}},
			want: types.StatusSnapshot{Phase: types.PhaseMap, Waiting: 1, Running: 1, Done: 1, Failed: 1},
		},
		{
			name: "short counters read as zero",
			info: &types.JobInfo{MapI: []int{5}},
			want: types.StatusSnapshot{Phase: types.PhaseMap, Waiting: 5},
		},
		{
			name: "nil info",
			info: nil,
			want: types.StatusSnapshot{Phase: types.PhaseMap},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, types.SnapshotFromJobInfo(tt.info))
		})
	}
}

func TestStatusSnapshotString(t *testing.T) {
	s := types.StatusSnapshot{Phase: types.PhaseMap, Waiting: 2, Running: 1}
	assert.Equal(t, "Status: [map] 2 waiting, 1 running, 0 done, 0 failed", s.String())

	s = types.StatusSnapshot{Phase: types.PhaseReduce, Done: 10, Failed: 3}
	assert.Equal(t, "Status: [reduce] 0 waiting, 0 running, 10 done, 3 failed", s.String())
}

func TestDisplayRequestConstructors(t *testing.T) {
	assert.Equal(t, types.KindHeading, types.Heading("job").Kind)
	assert.Equal(t, "job", types.Heading("job").Text)
	assert.Equal(t, types.KindStatusLine, types.StatusLine("s").Kind)

	req := types.EventLineFor(types.Event{Cursor: 7, Timestamp: "t1", Host: "h1", Message: "READY"})
	assert.Equal(t, types.EventLine("t1", "h1", "READY"), req)
	assert.Equal(t, "event", req.Kind.String())
}
