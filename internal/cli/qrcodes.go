package cli

import (
	"github.com/spf13/cobra"

	"github.com/writewhisker/tourkit/internal/qr"
)

// NewQRCodesCommand creates the qrcodes command.
func NewQRCodesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "qrcodes",
		Short:         "Render one QR code PNG per tour stop",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := rootOpts.Catalog()
			if err != nil {
				return err
			}
			gen := &qr.Codes{
				Catalog: cat,
				Dir:     rootOpts.QRCodesDir(),
				Out:     cmd.OutOrStdout(),
			}
			_, err = gen.Run(cmd.Context())
			return err
		},
	}
}
