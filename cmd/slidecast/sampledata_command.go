package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"slidecast/internal/config"
	"slidecast/internal/sampledata"
)

func newSampleDataCommand(ctx *commandContext) *cobra.Command {
	var (
		dir        string
		photoCount int
		duration   float64
		width      int
		height     int
		baseColor  string
	)

	cmd := &cobra.Command{
		Use:         "sample-data",
		Short:       "Generate a test audio track and photo set",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := config.ExpandPath(dir)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", target, err)
			}

			audioPath := filepath.Join(target, "melody.wav")
			if err := sampledata.WriteMelodyWAV(audioPath, duration); err != nil {
				return err
			}

			photosDir := filepath.Join(target, "photos")
			paths, err := sampledata.WritePhotoSet(photosDir, photoCount, width, height, baseColor)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote %s (%.1fs)\n", audioPath, duration)
			fmt.Fprintf(out, "Wrote %d photos under %s\n", len(paths), photosDir)
			fmt.Fprintf(out, "Try: slidecast plan %s %s\n", audioPath, photosDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "testdata", "Directory to write sample data into")
	cmd.Flags().IntVar(&photoCount, "photos", 6, "Number of photos to generate")
	cmd.Flags().Float64Var(&duration, "duration", 30, "Audio duration in seconds")
	cmd.Flags().IntVar(&width, "width", 640, "Photo width in pixels")
	cmd.Flags().IntVar(&height, "height", 360, "Photo height in pixels")
	cmd.Flags().StringVar(&baseColor, "color", "#336699", "Base photo color as hex")
	return cmd
}
