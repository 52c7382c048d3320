package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProbeCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "probe <audio-file>",
		Short: "Inspect an audio file and report its properties",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path, err := resolveInputPath(args[0])
			if err != nil {
				return err
			}

			duration, result, err := probeAudio(cmd.Context(), cfg, path)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, result)
			}

			rows := [][]string{
				{"Duration", formatDuration(duration)},
				{"Audio streams", fmt.Sprintf("%d", result.AudioStreamCount())},
			}
			if rate := result.SampleRate(); rate > 0 {
				rows = append(rows, []string{"Sample rate", fmt.Sprintf("%d Hz", rate)})
			}
			if stream, ok := result.FirstAudioStream(); ok && stream.Channels > 0 {
				rows = append(rows, []string{"Channels", fmt.Sprintf("%d", stream.Channels)})
			}
			if size := result.SizeBytes(); size > 0 {
				rows = append(rows, []string{"Size", fmt.Sprintf("%d bytes", size)})
			}
			if rate := result.BitRate(); rate > 0 {
				rows = append(rows, []string{"Bit rate", fmt.Sprintf("%d b/s", rate)})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Property", "Value"},
				rows,
				[]columnAlignment{alignLeft, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit raw probe data as JSON")
	return cmd
}
