package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/writewhisker/tourkit/internal/logging"
	"github.com/writewhisker/tourkit/internal/publish"
)

// NewPublishCommand creates the publish command.
func NewPublishCommand(rootOpts *RootOptions) *cobra.Command {
	var bucket, prefix string

	cmd := &cobra.Command{
		Use:           "publish",
		Short:         "Upload the asset tree to S3 with a run manifest",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if bucket == "" {
				return fmt.Errorf("no destination bucket: set --bucket or TOURKIT_BUCKET")
			}
			cat, err := rootOpts.Catalog()
			if err != nil {
				return err
			}
			if prefix == "" {
				base := filepath.Base(rootOpts.Story)
				prefix = strings.TrimSuffix(base, filepath.Ext(base))
			}

			cfg, err := awsconfig.LoadDefaultConfig(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load AWS config: %w", err)
			}
			log.Debug().Str("region", cfg.Region).Msg("AWS config loaded")

			pub := &publish.Publisher{
				Catalog:   cat,
				AssetsDir: rootOpts.AssetsDir,
				IconsDir:  rootOpts.IconsDir,
				StoryPath: rootOpts.Story,
				Bucket:    bucket,
				Prefix:    prefix,
				Client:    s3.NewFromConfig(cfg),
				Out:       cmd.OutOrStdout(),
			}
			_, err = pub.Run(cmd.Context())
			return err
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", logging.EnvOrDefault("TOURKIT_BUCKET", ""),
		"destination S3 bucket (default from TOURKIT_BUCKET)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "object key prefix (default: story name)")
	return cmd
}
