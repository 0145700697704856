package cli

import (
	"github.com/spf13/cobra"

	"github.com/writewhisker/tourkit/internal/audio"
	"github.com/writewhisker/tourkit/internal/tts"
)

// NewAudioCommand groups the narration audio generators.
func NewAudioCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audio",
		Short: "Generate narration audio files",
	}
	cmd.AddCommand(newAudioPlaceholdersCommand(rootOpts))
	cmd.AddCommand(newAudioSynthCommand(rootOpts))
	return cmd
}

func newAudioPlaceholdersCommand(rootOpts *RootOptions) *cobra.Command {
	var markers bool

	cmd := &cobra.Command{
		Use:           "placeholders",
		Short:         "Write silent MP3s of the declared narration durations",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := rootOpts.Catalog()
			if err != nil {
				return err
			}
			gen := &audio.Placeholders{
				Catalog: cat,
				Dir:     rootOpts.AudioDir(),
				Out:     cmd.OutOrStdout(),
				Markers: markers,
			}
			_, err = gen.Run(cmd.Context())
			return err
		},
	}

	cmd.Flags().BoolVar(&markers, "markers", false, "write text markers instead of silent MP3s")
	return cmd
}

func newAudioSynthCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "synth",
		Short:         "Synthesize narration speech for every language",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := rootOpts.Catalog()
			if err != nil {
				return err
			}
			gen := &audio.Synth{
				Catalog:     cat,
				Dir:         rootOpts.AudioDir(),
				Out:         cmd.OutOrStdout(),
				Synthesizer: &tts.GoogleTranslate{},
			}
			_, err = gen.Run(cmd.Context())
			return err
		},
	}
}
