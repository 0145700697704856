package cli

import (
	"github.com/spf13/cobra"

	"github.com/writewhisker/tourkit/internal/imaging"
	"github.com/writewhisker/tourkit/internal/logging"
)

// NewImagesCommand groups the artwork image generators.
func NewImagesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "images",
		Short: "Generate or download tour-stop images",
	}
	cmd.AddCommand(newImagesPlaceholdersCommand(rootOpts))
	cmd.AddCommand(newImagesFetchCommand(rootOpts))
	return cmd
}

func newImagesPlaceholdersCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "placeholders",
		Short:         "Render branded placeholder JPEGs for every artwork",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := rootOpts.Catalog()
			if err != nil {
				return err
			}
			gen := &imaging.Placeholders{
				Catalog: cat,
				Dir:     rootOpts.ImagesDir(),
				Out:     cmd.OutOrStdout(),
			}
			_, err = gen.Run(cmd.Context())
			return err
		},
	}
}

func newImagesFetchCommand(rootOpts *RootOptions) *cobra.Command {
	var apiKey string

	cmd := &cobra.Command{
		Use:           "fetch",
		Short:         "Download real artwork images from the museum collection",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := rootOpts.Catalog()
			if err != nil {
				return err
			}
			gen := &imaging.Fetcher{
				Catalog: cat,
				Dir:     rootOpts.ImagesDir(),
				Out:     cmd.OutOrStdout(),
				APIKey:  apiKey,
			}
			_, err = gen.Run(cmd.Context())
			return err
		},
	}

	cmd.Flags().StringVar(&apiKey, "api-key", logging.EnvOrDefault("RIJKSMUSEUM_API_KEY", ""),
		"museum collection API key (default from RIJKSMUSEUM_API_KEY)")
	return cmd
}
