package cli

import (
	"time"

	"github.com/arthur-debert/discomon/pkg/config"
	"github.com/arthur-debert/discomon/pkg/disco"
	"github.com/arthur-debert/discomon/pkg/errors"
	"github.com/arthur-debert/discomon/pkg/logging"
	"github.com/arthur-debert/discomon/pkg/monitor"
	"github.com/arthur-debert/discomon/pkg/types"
	"github.com/arthur-debert/discomon/pkg/ui"
	"github.com/spf13/cobra"
)

type watchOptions struct {
	events   string
	interval time.Duration
	offset   int64
	master   string
	noStop   bool
}

func newWatchCmd(root *rootOptions) *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:     "watch <job>",
		Short:   MsgWatchShort,
		Long:    MsgWatchLong,
		Example: MsgWatchExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.events, "events", "e", "", MsgFlagEvents)
	cmd.Flags().DurationVar(&opts.interval, "interval", monitor.DefaultInterval, MsgFlagInterval)
	cmd.Flags().Int64Var(&opts.offset, "offset", 0, MsgFlagOffset)
	cmd.Flags().StringVar(&opts.master, "master", "", MsgFlagMaster)
	cmd.Flags().BoolVar(&opts.noStop, "no-stop", false, MsgFlagNoStop)

	return cmd
}

// watchOverrides turns the flags the user actually set into config overrides,
// so unset flags leave file and environment values alone. An empty --events
// counts as unset and falls back to the configured format.
func watchOverrides(cmd *cobra.Command, opts *watchOptions) map[string]interface{} {
	overrides := map[string]interface{}{}
	flags := cmd.Flags()

	if flags.Changed("events") && opts.events != "" {
		overrides["events.format"] = opts.events
	}
	if flags.Changed("interval") {
		overrides["poll.interval"] = opts.interval
	}
	if flags.Changed("master") {
		overrides["master.url"] = opts.master
	}
	if flags.Changed("no-stop") {
		overrides["watch.stop_on_finish"] = !opts.noStop
	}
	return overrides
}

func runWatch(cmd *cobra.Command, root *rootOptions, opts *watchOptions, job string) error {
	ctx := cmd.Context()
	logger := logging.GetLogger("cli.watch")

	if opts.offset < 0 {
		return errors.New(errors.ErrInvalidInput, MsgErrNegOffset).WithDetail("offset", opts.offset)
	}

	cfg, err := config.Load(config.LoadOptions{
		File:      root.configFile,
		Overrides: watchOverrides(cmd, opts),
	})
	if err != nil {
		return err
	}
	masterURL, err := cfg.MasterURL()
	if err != nil {
		return err
	}

	out, err := ui.NewOutput(ctx, cfg.Events.Format, cmd.OutOrStdout())
	if err != nil {
		if ctx.Err() != nil {
			// interrupted before the first poll
			return nil
		}
		return err
	}

	var stopWhen func(*types.JobInfo) bool
	if cfg.Watch.StopOnFinish {
		stopWhen = disco.Finished
	}

	m, err := monitor.New(monitor.Options{
		Job:      disco.Job{Client: disco.NewClient(masterURL, cfg.Master.Timeout), JobName: job},
		Output:   out,
		Interval: cfg.Poll.Interval,
		Cursor:   opts.offset,
		StopWhen: stopWhen,
	})
	if err != nil {
		return err
	}

	logger.Info().
		Str("job", job).
		Str("master", masterURL).
		Str("format", out.Format().String()).
		Dur("interval", cfg.Poll.Interval).
		Int64("offset", opts.offset).
		Msg("Watching job")

	if err := m.Run(ctx); err != nil {
		return errors.Wrapf(err, errors.GetErrorCode(err), MsgErrWatchFailed, job).
			WithDetail("cursor", m.Cursor())
	}

	logger.Info().
		Str("job", job).
		Int64("cursor", m.Cursor()).
		Str("status", m.LastStatus()).
		Msg("Stopped watching job")
	return nil
}
