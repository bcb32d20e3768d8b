package fileset

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "List and merge bounded directory trees"
	MsgFilesShort      = "List the entries below a directory"
	MsgMergeShort      = "Merge several directory trees, first one wins"
	MsgGenConfigShort  = "Print a commented options file"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages into DIR"

	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig       = "Options file (.toml, .yaml or .yml)"
	MsgFlagLogFile      = "Log file path (default $XDG_STATE_HOME/fileset/fileset.log)"
	MsgFlagRecurse      = "Descend into subdirectories"
	MsgFlagRecurseLimit = "Maximum depth below the root, or \"infinite\""
	MsgFlagIgnore       = "Glob matched against base names, repeatable"
	MsgFlagLinks        = "Symbolic link policy: manage or follow"
	MsgFlagChecksumType = "Checksum type recorded with the listing"
	MsgFlagMaxFiles     = "Entry limit: 0 warns past 1000, -1 disables, N fails past N"
	MsgFlagFormat       = "Output format: text, yaml or toml"
	MsgFlagColor        = "Color text output: auto, always or never"
	MsgFlagForce        = "Replace an existing file"

	MsgVersionFormat    = "fileset version %s\n  commit: %s\n  built:  %s\n"
	MsgConfigWritten    = "Wrote options file %s\n"
	MsgErrNoCommand     = "no command specified"
	MsgErrConfigExists  = "%s already exists, use --force to replace it"
	MsgErrWriteConfig   = "cannot write options file %s"
	MsgErrMissingConfig = "configuration was not loaded"
	MsgErrManDir        = "cannot create man page directory %s"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/files-long.txt
	msgFilesLongRaw string
	MsgFilesLong    = strings.TrimSpace(msgFilesLongRaw)

	//go:embed msgs/files-example.txt
	msgFilesExampleRaw string
	MsgFilesExample    = strings.TrimRight(msgFilesExampleRaw, "\n")

	//go:embed msgs/merge-long.txt
	msgMergeLongRaw string
	MsgMergeLong    = strings.TrimSpace(msgMergeLongRaw)

	//go:embed msgs/merge-example.txt
	msgMergeExampleRaw string
	MsgMergeExample    = strings.TrimRight(msgMergeExampleRaw, "\n")

	//go:embed msgs/gen-config-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
