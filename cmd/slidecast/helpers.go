package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"slidecast/internal/config"
	"slidecast/internal/history"
	"slidecast/internal/logging"
	"slidecast/internal/media/ffprobe"
	"slidecast/internal/photos"
	"slidecast/internal/plan"
)

// timingFlags holds the per-invocation overrides for the plan timings. A
// negative duration means "use the configured default".
type timingFlags struct {
	photoDuration float64
	fadeDuration  float64
	introDuration float64
	outroDuration float64
	title         string
	copyright     string
}

func registerTimingFlags(cmd *cobra.Command, flags *timingFlags) {
	cmd.Flags().Float64Var(&flags.photoDuration, "photo-duration", -1, "Seconds each photo is shown (default from config)")
	cmd.Flags().Float64Var(&flags.fadeDuration, "fade-duration", -1, "Crossfade seconds between photos (default from config)")
	cmd.Flags().Float64Var(&flags.introDuration, "intro-duration", -1, "Intro title card seconds (default from config)")
	cmd.Flags().Float64Var(&flags.outroDuration, "outro-duration", -1, "Outro card seconds (default from config)")
	cmd.Flags().StringVar(&flags.title, "title", "", "Intro title text")
	cmd.Flags().StringVar(&flags.copyright, "copyright", "", "Outro copyright text")
}

func (f timingFlags) resolve(cmd *cobra.Command, cfg *config.Config) (plan.Options, error) {
	opts := plan.Options{
		PhotoDuration: cfg.Slideshow.PhotoDuration,
		FadeDuration:  cfg.Slideshow.FadeDuration,
		IntroDuration: cfg.Slideshow.IntroDuration,
		OutroDuration: cfg.Slideshow.OutroDuration,
		IntroText:     cfg.Slideshow.TitleText,
		OutroText:     cfg.Slideshow.CopyrightText,
	}
	if cmd.Flags().Changed("photo-duration") {
		opts.PhotoDuration = f.photoDuration
	}
	if cmd.Flags().Changed("fade-duration") {
		opts.FadeDuration = f.fadeDuration
	}
	if cmd.Flags().Changed("intro-duration") {
		opts.IntroDuration = f.introDuration
	}
	if cmd.Flags().Changed("outro-duration") {
		opts.OutroDuration = f.outroDuration
	}
	if cmd.Flags().Changed("title") {
		opts.IntroText = f.title
	}
	if cmd.Flags().Changed("copyright") {
		opts.OutroText = f.copyright
	}
	return opts, nil
}

// profileFlags holds the per-invocation overrides for the output profile
// shared by generate and render.
type profileFlags struct {
	bgColor   string
	noYouTube bool
}

func registerProfileFlags(cmd *cobra.Command, flags *profileFlags) {
	cmd.Flags().StringVar(&flags.bgColor, "bg-color", "", "Background color as hex, like #000000 (default from config)")
	cmd.Flags().BoolVar(&flags.noYouTube, "no-youtube", false, "Disable the YouTube-optimized export profile")
}

func (f profileFlags) backgroundColor(cmd *cobra.Command, cfg *config.Config) string {
	if cmd.Flags().Changed("bg-color") {
		return f.bgColor
	}
	return cfg.Video.BackgroundColor
}

func (f profileFlags) youtube(cmd *cobra.Command, cfg *config.Config) bool {
	if cmd.Flags().Changed("no-youtube") {
		return !f.noYouTube
	}
	return cfg.Render.YouTube
}

// probeAudio inspects the audio file and returns its duration in seconds.
func probeAudio(ctx context.Context, cfg *config.Config, path string) (float64, ffprobe.Result, error) {
	result, err := ffprobe.Inspect(ctx, cfg.FFprobeBinary(), path)
	if err != nil {
		return 0, ffprobe.Result{}, err
	}
	if result.AudioStreamCount() == 0 {
		return 0, result, fmt.Errorf("probe %s: no audio stream found", path)
	}
	duration := result.DurationSeconds()
	if math.IsNaN(duration) || duration <= 0 {
		return 0, result, fmt.Errorf("probe %s: could not determine audio duration", path)
	}
	return duration, result, nil
}

// planResult bundles the computed plan with the resolved inputs so commands
// can report and record them.
type planResult struct {
	plan      plan.Plan
	opts      plan.Options
	audioPath string
	photosDir string
}

// buildPlan runs the full plan pipeline: scan and sort photos, probe the
// audio, resolve timings, and compute the timeline.
func buildPlan(cmd *cobra.Command, cctx *commandContext, audioPath, photosDir string, flags timingFlags) (planResult, error) {
	cfg, err := cctx.ensureConfig()
	if err != nil {
		return planResult{}, err
	}

	audioPath, err = resolveInputPath(audioPath)
	if err != nil {
		return planResult{}, err
	}
	photosDir, err = resolveInputPath(photosDir)
	if err != nil {
		return planResult{}, err
	}

	found, err := photos.Scan(photosDir)
	if err != nil {
		return planResult{}, err
	}

	duration, _, err := probeAudio(cmd.Context(), cfg, audioPath)
	if err != nil {
		return planResult{}, err
	}

	opts, err := flags.resolve(cmd, cfg)
	if err != nil {
		return planResult{}, err
	}
	opts.AudioDuration = duration
	opts.Photos = found

	logger := cctx.componentLogger("plan")
	logger.Info("building plan",
		logging.String("audio", audioPath),
		logging.String("photos_dir", photosDir),
		logging.Int("photo_count", len(found)),
		logging.Float64("audio_duration", duration))

	built, err := plan.Build(opts)
	if err != nil {
		return planResult{}, err
	}
	return planResult{plan: built, opts: opts, audioPath: audioPath, photosDir: photosDir}, nil
}

func resolveInputPath(path string) (string, error) {
	expanded, err := config.ExpandPath(strings.TrimSpace(path))
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(expanded); err != nil {
		return "", fmt.Errorf("inspect path %q: %w", expanded, err)
	}
	return expanded, nil
}

// recordHistory appends a run record when history is enabled. Failures are
// logged and never abort the command.
func recordHistory(cmd *cobra.Command, cctx *commandContext, record history.Record) {
	cfg, err := cctx.ensureConfig()
	if err != nil || !cfg.History.Enabled {
		return
	}
	logger := cctx.componentLogger("history")
	store, err := history.Open(cfg.HistoryPath())
	if err != nil {
		logger.Warn("open history store", logging.Error(err))
		return
	}
	defer store.Close()
	if _, err := store.Add(cmd.Context(), record); err != nil {
		logger.Warn("record history entry", logging.Error(err))
	}
}

func formatDuration(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	// Round to centiseconds first so values just under a minute boundary
	// carry into the minutes field instead of printing as 0:60.00.
	centis := int64(math.Round(seconds * 100))
	minutes := centis / 6000
	return fmt.Sprintf("%d:%05.2f", minutes, float64(centis%6000)/100)
}

func defaultOutputPath(audioPath, extension string) string {
	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	if base == "" {
		base = "slideshow"
	}
	return base + extension
}
