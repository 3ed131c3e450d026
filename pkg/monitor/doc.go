// Package monitor follows a running job on its controller.
//
// A Monitor owns the polling state for one job: the cursor of the last event
// consumed and the last status line shown. Each Poll fetches the task-state
// counters and every event past the cursor, displays new events in the order
// received and displays the status line only when it changed. Run repeats
// Poll with a fixed delay until the context is cancelled or the job is done.
//
// A Monitor is not safe for concurrent use. Monitor several jobs by running
// one Monitor per job.
package monitor
