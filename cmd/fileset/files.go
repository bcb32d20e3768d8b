package fileset

import (
	"github.com/arthur-debert/fileset/pkg/errors"
	"github.com/arthur-debert/fileset/pkg/fileset"
	"github.com/arthur-debert/fileset/pkg/logging"
	"github.com/arthur-debert/fileset/pkg/utils"
	"github.com/spf13/cobra"
)

func newFilesCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "files PATH",
		Short:   MsgFilesShort,
		Long:    MsgFilesLong,
		Example: MsgFilesExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.files")

			fset, err := s.open(args[0])
			if err != nil {
				return err
			}

			files, err := fset.Files()
			if err != nil {
				return err
			}
			logger.Info().
				Str("root", fset.Path()).
				Int("entries", len(files)).
				Msg("Listed fileset")

			r, err := s.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderFiles(fset.Path(), files)
		},
	}
	addTraversalFlags(cmd)
	return cmd
}

// open builds a fileset for a command-line path using the loaded options
func (s *session) open(path string) (*fileset.Fileset, error) {
	if s.cfg == nil {
		return nil, errors.New(errors.ErrInternal, MsgErrMissingConfig)
	}

	abs, err := utils.AbsolutePath(path)
	if err != nil {
		return nil, err
	}
	return fileset.NewFromRequest(abs, s.cfg)
}
