package fileset

import (
	"fmt"

	"github.com/arthur-debert/fileset/internal/version"
	"github.com/arthur-debert/fileset/pkg/config"
	"github.com/arthur-debert/fileset/pkg/errors"
	"github.com/arthur-debert/fileset/pkg/logging"
	"github.com/arthur-debert/fileset/pkg/output"
	"github.com/arthur-debert/fileset/pkg/utils"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// session carries what PersistentPreRunE prepared for the subcommands
type session struct {
	verbosity  int
	configFile string
	logFile    string

	cfg *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Quiet until prepare has read the verbosity
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	initTemplateFormatting()

	s := &session{}

	rootCmd := &cobra.Command{
		Use:     "fileset",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.prepare(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidArgument, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&s.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&s.configFile, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&s.logFile, "log-file", "", MsgFlagLogFile)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newFilesCmd(s))
	rootCmd.AddCommand(newMergeCmd(s))
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	initTopics(rootCmd)

	return rootCmd
}

// prepare loads the configuration with the invoking command's flags on
// top, then sets up logging from it
func (s *session) prepare(cmd *cobra.Command, args []string) error {
	overrides, err := collectOverrides(cmd.Flags())
	if err != nil {
		return err
	}

	configFile := s.configFile
	if configFile != "" {
		if configFile, err = utils.ExpandPath(configFile); err != nil {
			return err
		}
	}

	cfg, err := config.Load(config.LoadOptions{
		File:      configFile,
		Overrides: overrides,
	})
	if err != nil {
		return err
	}
	s.cfg = cfg

	logFile := s.logFile
	if logFile == "" {
		logFile = cfg.Settings.Log.File
	}
	if logFile != "" {
		if logFile, err = utils.ExpandPath(logFile); err != nil {
			return err
		}
	}
	logging.SetupLoggerWithOptions(logging.Options{
		Verbosity:  s.verbosity,
		File:       logFile,
		MaxSizeMB:  cfg.Settings.Log.MaxSizeMB,
		MaxBackups: cfg.Settings.Log.MaxBackups,
		MaxAgeDays: cfg.Settings.Log.MaxAgeDays,
		Console:    cmd.ErrOrStderr(),
		RunID:      logging.NewRunID(),
	})
	logging.LogCommand(cmd.CommandPath(), args)
	return nil
}

// renderer builds an output renderer from the loaded settings
func (s *session) renderer(cmd *cobra.Command) (*output.Renderer, error) {
	if s.cfg == nil {
		return nil, errors.New(errors.ErrInternal, MsgErrMissingConfig)
	}

	format, err := output.ParseFormat(s.cfg.Settings.Output.Format)
	if err != nil {
		return nil, err
	}
	color, err := output.ParseColorMode(s.cfg.Settings.Output.Color)
	if err != nil {
		return nil, err
	}
	return output.NewRenderer(cmd.OutOrStdout(), format, color), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
