package fileset

import (
	"github.com/arthur-debert/fileset/pkg/fileset"
	"github.com/arthur-debert/fileset/pkg/logging"
	"github.com/spf13/cobra"
)

func newMergeCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "merge PATH...",
		Short:   MsgMergeShort,
		Long:    MsgMergeLong,
		Example: MsgMergeExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.merge")

			filesets := make([]*fileset.Fileset, 0, len(args))
			for _, arg := range args {
				fset, err := s.open(arg)
				if err != nil {
					return err
				}
				filesets = append(filesets, fset)
			}

			merged, err := fileset.Merge(filesets...)
			if err != nil {
				return err
			}
			logger.Info().
				Int("roots", len(filesets)).
				Int("entries", len(merged)).
				Msg("Merged filesets")

			r, err := s.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderMerge(merged)
		},
	}
	addTraversalFlags(cmd)
	return cmd
}
