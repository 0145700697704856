package cli

import (
	"github.com/spf13/cobra"

	"github.com/writewhisker/tourkit/internal/imaging"
)

// NewIconsCommand creates the icons command.
func NewIconsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "icons",
		Short:         "Render the PWA icon set",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := rootOpts.Catalog()
			if err != nil {
				return err
			}
			gen := &imaging.Icons{
				Catalog: cat,
				Dir:     rootOpts.IconsDir,
				Out:     cmd.OutOrStdout(),
			}
			_, err = gen.Run(cmd.Context())
			return err
		},
	}
}
