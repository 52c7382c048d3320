package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	var flags timingFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "plan <audio-file> <photos-dir>",
		Short: "Compute and display the slideshow timeline without writing anything",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := buildPlan(cmd, ctx, args[0], args[1], flags)
			if err != nil {
				return err
			}
			built := result.plan

			if asJSON {
				return writeJSON(cmd, built)
			}

			out := cmd.OutOrStdout()
			if built.Intro != nil {
				fmt.Fprintf(out, "Intro  %s - %s  %q\n",
					formatDuration(built.Intro.Span.Start), formatDuration(built.Intro.Span.End), built.Intro.Text)
			}

			rows := make([][]string, 0, len(built.Clips))
			for i, clip := range built.Clips {
				fade := ""
				if clip.FadeIn > 0 {
					fade = fmt.Sprintf("%.2fs", clip.FadeIn)
				}
				rows = append(rows, []string{
					fmt.Sprintf("%d", i+1),
					filepath.Base(clip.Photo),
					formatDuration(clip.Span.Start),
					formatDuration(clip.Span.End),
					fmt.Sprintf("%.2fs", clip.Span.Duration()),
					fade,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Photo", "Start", "End", "Length", "Fade In"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight, alignRight},
			))

			if built.Outro != nil {
				fmt.Fprintf(out, "Outro  %s - %s  %q\n",
					formatDuration(built.Outro.Span.Start), formatDuration(built.Outro.Span.End), built.Outro.Text)
			}
			fmt.Fprintf(out, "Total  %s  (%d clips, %d photos)\n",
				formatDuration(built.TotalDuration), len(built.Clips), built.PhotoCount())
			return nil
		},
	}

	registerTimingFlags(cmd, &flags)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the plan as JSON")
	return cmd
}
