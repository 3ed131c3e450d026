// Package types defines the data shared between the job controller client,
// the event monitor and the output renderers: controller events, task-state
// snapshots and display requests.
package types
