package fileset

import (
	"github.com/arthur-debert/fileset/pkg/fileset"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// flagKeys maps command-line flags to configuration keys. Only flags the
// user actually set are passed on, so unset flags never shadow the options
// file or the environment.
var flagKeys = map[string]string{
	"recurse":       fileset.OptionRecurse,
	"recurselimit":  fileset.OptionRecurseLimit,
	"ignore":        fileset.OptionIgnore,
	"links":         fileset.OptionLinks,
	"checksum-type": fileset.OptionChecksumType,
	"max-files":     fileset.OptionMaxFiles,
	"format":        "output.format",
	"color":         "output.color",
}

// addTraversalFlags registers the flags shared by files and merge
func addTraversalFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.BoolP("recurse", "r", false, MsgFlagRecurse)
	flags.String("recurselimit", "infinite", MsgFlagRecurseLimit)
	flags.StringArray("ignore", nil, MsgFlagIgnore)
	flags.String("links", "manage", MsgFlagLinks)
	flags.String("checksum-type", "", MsgFlagChecksumType)
	flags.Int("max-files", 0, MsgFlagMaxFiles)
	flags.StringP("format", "f", "text", MsgFlagFormat)
	flags.String("color", "auto", MsgFlagColor)

	_ = cmd.RegisterFlagCompletionFunc("links", fixedCompletion("manage", "follow"))
	_ = cmd.RegisterFlagCompletionFunc("format", fixedCompletion("text", "yaml", "toml"))
	_ = cmd.RegisterFlagCompletionFunc("color", fixedCompletion("auto", "always", "never"))
}

// collectOverrides returns the configuration keys for every changed flag
func collectOverrides(flags *pflag.FlagSet) (map[string]interface{}, error) {
	overrides := make(map[string]interface{})

	var err error
	flags.Visit(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || err != nil {
			return
		}

		var value interface{}
		switch f.Value.Type() {
		case "bool":
			value, err = flags.GetBool(f.Name)
		case "int":
			value, err = flags.GetInt(f.Name)
		case "stringArray":
			value, err = flags.GetStringArray(f.Name)
		default:
			value = f.Value.String()
		}
		overrides[key] = value
	})
	if err != nil {
		return nil, err
	}
	return overrides, nil
}

func fixedCompletion(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
