package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"slidecast/internal/history"
	"slidecast/internal/project"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var flags timingFlags
	var profile profileFlags
	var outputPath string

	cmd := &cobra.Command{
		Use:   "generate <audio-file> <photos-dir>",
		Short: "Write an OpenShot project file for the slideshow",
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
				target = defaultOutputPath(result.audioPath, ".osp")
			}

			generator := project.NewGenerator(project.Settings{
				Width:           cfg.Video.Width,
				Height:          cfg.Video.Height,
				FPSNumerator:    cfg.Video.FPSNumerator,
				FPSDenominator:  cfg.Video.FPSDenominator,
				SampleRate:      cfg.Video.SampleRate,
				Channels:        cfg.Video.Channels,
				BackgroundColor: profile.backgroundColor(cmd, cfg),
				YouTube:         profile.youtube(cmd, cfg),
			})
			doc, err := generator.Document(result.plan, result.audioPath)
			if err != nil {
				return err
			}
			if err := doc.WriteFile(target); err != nil {
				return err
			}

			recordHistory(cmd, ctx, history.Record{
				Kind:          history.KindProject,
				AudioPath:     result.audioPath,
				PhotosDir:     result.photosDir,
				OutputPath:    target,
				AudioDuration: result.opts.AudioDuration,
				ClipCount:     len(result.plan.Clips),
				PhotoCount:    result.plan.PhotoCount(),
			})

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote project %s (%d clips over %s)\n",
				target, len(result.plan.Clips), formatDuration(result.plan.TotalDuration))
			return nil
		},
	}

	registerTimingFlags(cmd, &flags)
	registerProfileFlags(cmd, &profile)
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Project file destination (default <audio>.osp)")
	return cmd
}
