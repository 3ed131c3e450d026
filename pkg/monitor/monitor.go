package monitor

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/arthur-debert/discomon/pkg/errors"
	"github.com/arthur-debert/discomon/pkg/logging"
	"github.com/arthur-debert/discomon/pkg/types"
	"github.com/arthur-debert/discomon/pkg/ui"
	"github.com/rs/zerolog"
)

// DefaultInterval is the delay between two polls
const DefaultInterval = 2 * time.Second

// Collaborator is the job controller the monitor queries.
type Collaborator interface {
	// Events returns the events with a cursor greater than since, in
	// non-decreasing cursor order. The batch's Next cursor, when set, covers
	// log input that produced no event.
	Events(ctx context.Context, job string, since int64) (types.EventBatch, error)

	// JobInfo returns the job's current task counters
	JobInfo(ctx context.Context, job string) (*types.JobInfo, error)
}

// JobRef identifies a job together with the controller that runs it
type JobRef interface {
	Master() Collaborator
	Name() string
}

// Options configures a Monitor. Either Job, or Collaborator and Name, must be set.
type Options struct {
	Collaborator Collaborator
	Name         string
	Job          JobRef

	// Output defaults to a disabled output
	Output *ui.Output

	// Interval defaults to DefaultInterval
	Interval time.Duration

	// Cursor resumes from a known position in the event log
	Cursor int64

	// StopWhen ends Run after the poll whose job info it accepts
	StopWhen func(info *types.JobInfo) bool
}

// Monitor polls a job's controller and displays its progress
type Monitor struct {
	master   Collaborator
	name     string
	output   *ui.Output
	interval time.Duration
	stopWhen func(info *types.JobInfo) bool
	logger   zerolog.Logger

	cursor     int64
	lastStatus string
	lastInfo   *types.JobInfo
}

// New creates a monitor for a job and displays the job heading
func New(opts Options) (*Monitor, error) {
	master, name := opts.Collaborator, opts.Name
	if opts.Job != nil {
		master, name = opts.Job.Master(), opts.Job.Name()
	}
	if master == nil || name == "" {
		return nil, errors.New(errors.ErrConfigInvalid, "specify either a job or a collaborator and job name")
	}
	if opts.Cursor < 0 {
		return nil, errors.Newf(errors.ErrInvalidInput, "cursor must not be negative, got %d", opts.Cursor)
	}

	m := &Monitor{
		master:   master,
		name:     name,
		output:   opts.Output,
		interval: opts.Interval,
		stopWhen: opts.StopWhen,
		cursor:   opts.Cursor,
		logger:   logging.GetLogger("monitor").With().Str("job", name).Logger(),
	}
	if m.output == nil {
		m.output = ui.Disabled()
	}
	if m.interval <= 0 {
		m.interval = DefaultInterval
	}

	m.logger.Debug().
		Bool("enabled", m.output.Enabled()).
		Str("format", m.output.Format().String()).
		Int64("cursor", m.cursor).
		Msg("Monitor created")

	if err := m.output.Display(types.Heading(name)); err != nil {
		return nil, err
	}
	return m, nil
}

// Poll runs one cycle: fetch counters, display new events, then display the
// status line if it changed. A disabled output still advances the state.
// Collaborator failures are returned as is; nothing is retried.
func (m *Monitor) Poll(ctx context.Context) error {
	defer logging.LogOperationStart(m.logger, "poll")()

	info, err := m.master.JobInfo(ctx, m.name)
	if err != nil {
		return errors.Wrapf(err, errors.ErrCollaboratorFetch, "failed to fetch job info for %s", m.name)
	}
	snapshot := types.SnapshotFromJobInfo(info)

	batch, err := m.master.Events(ctx, m.name, m.cursor)
	if err != nil {
		return errors.Wrapf(err, errors.ErrCollaboratorFetch, "failed to fetch events for %s", m.name)
	}

	events := batch.Events
	for _, event := range events {
		if event.Cursor > m.cursor {
			m.cursor = event.Cursor
		}
		if err := m.output.Display(types.EventLineFor(event)); err != nil {
			return err
		}
	}
	if batch.Next > m.cursor {
		m.cursor = batch.Next
	}
	m.lastInfo = info

	status := snapshot.String()
	changed := status != m.lastStatus
	if changed {
		if err := m.output.Display(types.StatusLine(status)); err != nil {
			return err
		}
		m.lastStatus = status
	}

	m.logger.Trace().
		Int("events", len(events)).
		Int64("cursor", m.cursor).
		Bool("statusChanged", changed).
		Msg("Poll completed")
	return nil
}

// Run polls until ctx is cancelled, StopWhen accepts the latest job info, or a
// poll fails. Cancellation ends Run without error.
func (m *Monitor) Run(ctx context.Context) error {
	m.logger.Info().Dur("interval", m.interval).Msg("Monitoring job")

	for {
		if ctx.Err() != nil {
			return nil
		}

		if err := m.Poll(ctx); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil && stderrors.Is(err, ctxErr) {
				return nil
			}
			m.logger.Error().Err(err).Msg("Poll failed")
			return err
		}

		if m.stopWhen != nil && m.stopWhen(m.lastInfo) {
			m.logger.Info().Int64("cursor", m.cursor).Msg("Job finished")
			return nil
		}

		timer := time.NewTimer(m.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

// Name returns the monitored job's name
func (m *Monitor) Name() string {
	return m.name
}

// Cursor returns the position after the last consumed event
func (m *Monitor) Cursor() int64 {
	return m.cursor
}

// LastStatus returns the last status line displayed, or "" before the first poll
func (m *Monitor) LastStatus() string {
	return m.lastStatus
}

// LastJobInfo returns the job info fetched by the latest poll
func (m *Monitor) LastJobInfo() *types.JobInfo {
	return m.lastInfo
}

// Enabled reports whether the monitor's output is shown at all
func (m *Monitor) Enabled() bool {
	return m.output.Enabled()
}
