package fileset

import (
	"fmt"
	"os"

	"github.com/arthur-debert/fileset/pkg/config"
	"github.com/arthur-debert/fileset/pkg/errors"
	"github.com/arthur-debert/fileset/pkg/utils"
	"github.com/spf13/cobra"
)

func newGenConfigCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "gen-config [FILE]",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.GenerateConfigContent()
			if len(args) == 0 {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			path, err := utils.ExpandPath(args[0])
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return errors.Newf(errors.ErrInvalidArgument, MsgErrConfigExists, path).
					WithDetail("path", path)
			}
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrInternal, MsgErrWriteConfig, path)
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}
