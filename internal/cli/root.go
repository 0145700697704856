// Package cli wires the asset generators into the tourkit command tree.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/writewhisker/tourkit/internal/catalog"
	"github.com/writewhisker/tourkit/internal/logging"
)

// RootOptions holds the persistent flags shared by every subcommand.
type RootOptions struct {
	AssetsDir   string
	IconsDir    string
	Story       string
	CatalogPath string
	Verbose     bool
}

// Catalog returns the tour catalog the command operates on: the built-in
// Rijksmuseum tables, or the YAML catalog named by --catalog.
func (o *RootOptions) Catalog() (*catalog.Catalog, error) {
	if o.CatalogPath == "" {
		return catalog.Rijksmuseum(), nil
	}
	return catalog.Load(o.CatalogPath)
}

// ImagesDir returns the artwork image directory under the asset root.
func (o *RootOptions) ImagesDir() string { return filepath.Join(o.AssetsDir, "images") }

// AudioDir returns the narration audio root; generators add the
// per-language subdirectories.
func (o *RootOptions) AudioDir() string { return filepath.Join(o.AssetsDir, "audio") }

// QRCodesDir returns the QR code directory under the asset root.
func (o *RootOptions) QRCodesDir() string { return filepath.Join(o.AssetsDir, "qr_codes") }

// NewRootCommand creates the root command for the tourkit CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "tourkit",
		Short: "Prepare the static assets for a self-guided museum tour",
		Long: `tourkit prepares the static assets for a self-guided museum tour
content package: tour-stop images, per-language narration audio, QR codes,
PWA icons, and a verification report of the whole asset tree.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Init()
			if opts.Verbose {
				logging.SetVerbose()
			}
			if opts.CatalogPath != "" {
				if _, err := os.Stat(opts.CatalogPath); err != nil {
					return fmt.Errorf("catalog file %s: %w", opts.CatalogPath, err)
				}
			}

			rl := logging.NewRunLogger(cmd.CommandPath()).
				Config("assetsDir", opts.AssetsDir).
				Config("iconsDir", opts.IconsDir).
				Config("story", opts.Story).
				Config("catalog", opts.CatalogPath).
				Feature("verbose", opts.Verbose)
			if f := cmd.Flags().Lookup("bucket"); f != nil && f.Value.String() != "" {
				rl.S3Bucket("destination", f.Value.String())
			}
			rl.Log()
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.AssetsDir, "assets-dir", "assets", "root directory for generated assets")
	cmd.PersistentFlags().StringVar(&opts.IconsDir, "icons-dir", filepath.Join("web_runtime", "icons"), "output directory for PWA icons")
	cmd.PersistentFlags().StringVar(&opts.Story, "story", "rijksmuseum_tour.whisker", "path to the tour story file")
	cmd.PersistentFlags().StringVar(&opts.CatalogPath, "catalog", "", "YAML tour catalog (default: built-in Rijksmuseum tour)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose (debug) logging")

	cmd.AddCommand(NewImagesCommand(opts))
	cmd.AddCommand(NewAudioCommand(opts))
	cmd.AddCommand(NewQRCodesCommand(opts))
	cmd.AddCommand(NewIconsCommand(opts))
	cmd.AddCommand(NewVerifyCommand(opts))
	cmd.AddCommand(NewPublishCommand(opts))

	return cmd
}
