package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/writewhisker/tourkit/internal/verify"
)

// NewVerifyCommand creates the verify command. Missing assets are a
// reporting outcome, not an error: the command exits zero regardless of
// the completion percentage.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:           "verify",
		Short:         "Report required-vs-found status for the asset tree",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := rootOpts.Catalog()
			if err != nil {
				return err
			}
			check := &verify.Check{
				Catalog:   cat,
				AssetsDir: rootOpts.AssetsDir,
				IconsDir:  rootOpts.IconsDir,
				StoryPath: rootOpts.Story,
			}
			rep := check.Run()

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rep)
			}
			verify.Render(cmd.OutOrStdout(), rep)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the report as JSON")
	return cmd
}
