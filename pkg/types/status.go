package types

import "fmt"

// Phase is the stage a job is currently executing
type Phase string

const (
	// PhaseMap indicates no reduce task has started yet
	PhaseMap Phase = "map"

	// PhaseReduce indicates at least one reduce task is running, done or failed
	PhaseReduce Phase = "reduce"
)

// JobInfo is the controller's task-index response for a job.
type JobInfo struct {
	// Active is the controller's job state ("active", "ready", "dead")
	Active string `json:"active"`

	// Timestamp of the job submission
	Timestamp string `json:"timestamp,omitempty"`

	// Owner that submitted the job
	Owner string `json:"owner,omitempty"`

	// MapI holds map stage counters: waiting, running, done, failed
	MapI []int `json:"mapi"`

	// RedI holds reduce stage counters: waiting, running, done, failed
	RedI []int `json:"redi"`
}

// StatusSnapshot is a point-in-time view of the task counters for the job's
// current phase. It is derived from a JobInfo on every poll.
type StatusSnapshot struct {
	Phase   Phase
	Waiting int
	Running int
	Done    int
	Failed  int
}

// SnapshotFromJobInfo derives the current phase and its counters. The job is
// in the reduce phase as soon as any reduce task is running, done or failed.
func SnapshotFromJobInfo(info *JobInfo) StatusSnapshot {
	if info == nil {
		return StatusSnapshot{Phase: PhaseMap}
	}
	if counter(info.RedI, 1)+counter(info.RedI, 2)+counter(info.RedI, 3) != 0 {
		return snapshotOf(PhaseReduce, info.RedI)
	}
	return snapshotOf(PhaseMap, info.MapI)
}

func snapshotOf(phase Phase, counters []int) StatusSnapshot {
	return StatusSnapshot{
		Phase:   phase,
		Waiting: counter(counters, 0),
		Running: counter(counters, 1),
		Done:    counter(counters, 2),
		Failed:  counter(counters, 3),
	}
}

// counter reads a missing trailing counter as zero
func counter(counters []int, i int) int {
	if i < len(counters) {
		return counters[i]
	}
	return 0
}

// String renders the snapshot as the human readable status line
func (s StatusSnapshot) String() string {
	return fmt.Sprintf("Status: [%s] %d waiting, %d running, %d done, %d failed",
		s.Phase, s.Waiting, s.Running, s.Done, s.Failed)
}
