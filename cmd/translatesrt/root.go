package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var inputFlag string

	ctx := newCommandContext()

	rootCmd := &cobra.Command{
		Use:           "translatesrt -i <input.srt> <output.srt>",
		Short:         "Translate SRT subtitles sentence by sentence",
		Long:          "translatesrt joins subtitle cues into whole sentences, translates them, and writes the\ntranslation back into the original cue layout.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// The root translate command loads config itself once its
			// arguments check out.
			if shouldSkipConfig(cmd) || !cmd.HasParent() {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, ctx, inputFlag, args)
		},
	}

	rootCmd.Flags().StringVarP(&inputFlag, "input", "i", "", "Input SRT file")

	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
