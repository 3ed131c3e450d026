package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Follow Disco jobs from the terminal"
	MsgWatchShort      = "Poll a job and print its events and status"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Group titles
	MsgGroupCore = "COMMANDS:"
	MsgGroupMisc = "MISC:"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Config file (default is $XDG_CONFIG_HOME/discomon/config.toml)"
	MsgFlagEvents   = "Events format: json, nocolor, term, or empty for none (default $DISCO_EVENTS)"
	MsgFlagInterval = "Time between polls"
	MsgFlagOffset   = "Byte offset in the event log to resume from"
	MsgFlagMaster   = "Disco master URL (http://host:port or disco://host)"
	MsgFlagNoStop   = "Keep polling after the job has finished"
	MsgFlagFormat   = "Output format: toml or yaml"
	MsgFlagTemplate = "Print the commented default config instead"

	// Status messages
	MsgVersionFormat = "discomon version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Error messages
	MsgErrNoCommand   = "no command specified"
	MsgErrNegOffset   = "--offset must not be negative"
	MsgErrWatchFailed = "failed to watch job %s"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/watch-long.txt
	msgWatchLongRaw string
	MsgWatchLong    = strings.TrimSpace(msgWatchLongRaw)

	//go:embed msgs/watch-example.txt
	msgWatchExampleRaw string
	MsgWatchExample    = strings.TrimRight(msgWatchExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
