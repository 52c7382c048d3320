package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"slidecast/internal/history"
	"slidecast/internal/logging"
	"slidecast/internal/render"
)

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var flags timingFlags
	var profile profileFlags
	var outputPath string

	cmd := &cobra.Command{
		Use:   "render <audio-file> <photos-dir>",
		Short: "Render the slideshow video directly with ffmpeg",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := buildPlan(cmd, ctx, args[0], args[1], flags)
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			target := strings.TrimSpace(outputPath)
			if target == "" {
				target = defaultOutputPath(result.audioPath, ".mp4")
			}

			settings := render.Settings{
				Width:           cfg.Video.Width,
				Height:          cfg.Video.Height,
				FPSNumerator:    cfg.Video.FPSNumerator,
				FPSDenominator:  cfg.Video.FPSDenominator,
				BackgroundColor: profile.backgroundColor(cmd, cfg),
				Preset:          cfg.Render.Preset,
				CRF:             cfg.Render.CRF,
				YouTube:         profile.youtube(cmd, cfg),
			}

			out := cmd.OutOrStdout()
			interactive := isTerminal(out)
			logger := ctx.componentLogger("render")

			runner := render.NewRunner(render.WithBinary(cfg.FFmpegBinary()))
			err = runner.Render(cmd.Context(), result.plan, result.audioPath, target, settings, func(update render.ProgressUpdate) {
				if interactive {
					fmt.Fprintf(out, "\rRendering %5.1f%%  %s  %s", update.Percent, formatDuration(update.OutTime), update.Speed)
					return
				}
				logger.Info("render progress",
					logging.Float64("percent", update.Percent),
					logging.Float64("out_time", update.OutTime),
					logging.String("speed", update.Speed))
			})
			if interactive {
				fmt.Fprintln(out)
			}
			if err != nil {
				return err
			}

			recordHistory(cmd, ctx, history.Record{
				Kind:          history.KindRender,
				AudioPath:     result.audioPath,
				PhotosDir:     result.photosDir,
				OutputPath:    target,
				AudioDuration: result.opts.AudioDuration,
				ClipCount:     len(result.plan.Clips),
				PhotoCount:    result.plan.PhotoCount(),
			})

			fmt.Fprintf(out, "Rendered %s (%s)\n", target, formatDuration(result.plan.TotalDuration))
			return nil
		},
	}

	registerTimingFlags(cmd, &flags)
	registerProfileFlags(cmd, &profile)
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Video destination (default <audio>.mp4)")
	return cmd
}
