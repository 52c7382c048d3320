package plan

import (
	"fmt"
	"math"

	"slidecast/internal/services"
)

// Options are the immutable inputs to Build. Photos must already be in the
// desired display order; Build never touches the filesystem.
type Options struct {
	AudioDuration float64
	Photos        []string
	PhotoDuration float64
	FadeDuration  float64
	IntroDuration float64
	OutroDuration float64
	IntroText     string
	OutroText     string
}

// Build computes the timed clip placements that exactly tile the audio
// duration, looping photos when there are fewer photos than clips. The
// result is deterministic: identical options yield an identical plan.
func Build(opts Options) (Plan, error) {
	if err := validate(opts); err != nil {
		return Plan{}, err
	}

	slideshowStart := opts.IntroDuration
	slideshowDuration := opts.AudioDuration - opts.IntroDuration - opts.OutroDuration

	clipCount := int(math.Ceil(slideshowDuration / opts.PhotoDuration))
	photoCount := len(opts.Photos)

	clips := make([]Clip, 0, clipCount)
	for i := 0; i < clipCount; i++ {
		duration := opts.PhotoDuration
		if i == clipCount-1 {
			// Truncate the final clip so the sum is exact; no drift past
			// the audio duration.
			duration = slideshowDuration - float64(clipCount-1)*opts.PhotoDuration
		}
		if duration <= 0 {
			// Degenerate zero-length tail clip after truncation.
			break
		}

		start := slideshowStart + float64(i)*opts.PhotoDuration
		clip := Clip{
			Photo:      opts.Photos[i%photoCount],
			PhotoIndex: i % photoCount,
			Span:       TimeSpan{Start: start, End: start + duration},
		}
		if i > 0 && opts.FadeDuration > 0 {
			fade := math.Min(opts.FadeDuration, duration/2)
			clip.FadeIn = fade
			clips[len(clips)-1].FadeOut = fade
		}
		clips = append(clips, clip)
	}

	result := Plan{
		Clips:         clips,
		TotalDuration: opts.AudioDuration,
	}
	if opts.IntroDuration > 0 {
		result.Intro = &Segment{
			Text: opts.IntroText,
			Span: TimeSpan{Start: 0, End: opts.IntroDuration},
		}
	}
	if opts.OutroDuration > 0 {
		result.Outro = &Segment{
			Text: opts.OutroText,
			Span: TimeSpan{Start: opts.AudioDuration - opts.OutroDuration, End: opts.AudioDuration},
		}
	}
	return result, nil
}

func validate(opts Options) error {
	if opts.AudioDuration <= 0 {
		return configErr(fmt.Sprintf("audio duration must be positive, got %.3f", opts.AudioDuration))
	}
	if len(opts.Photos) == 0 {
		return configErr("at least one photo is required")
	}
	if opts.PhotoDuration <= 0 {
		return configErr(fmt.Sprintf("photo duration must be positive, got %.3f", opts.PhotoDuration))
	}
	if opts.FadeDuration < 0 {
		return configErr("fade duration must not be negative")
	}
	if opts.IntroDuration < 0 || opts.OutroDuration < 0 {
		return configErr("intro and outro durations must not be negative")
	}
	if opts.IntroDuration+opts.OutroDuration >= opts.AudioDuration {
		return configErr(fmt.Sprintf(
			"intro (%.1fs) + outro (%.1fs) leaves no room in audio duration (%.1fs)",
			opts.IntroDuration, opts.OutroDuration, opts.AudioDuration,
		))
	}
	return nil
}

func configErr(message string) error {
	return services.Wrap(services.ErrConfiguration, "plan", "build", message, nil)
}
