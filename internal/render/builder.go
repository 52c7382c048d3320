package render

import (
	"errors"
	"fmt"
	"strings"

	"slidecast/internal/plan"
)

// Settings carries the encoder and canvas options for the direct ffmpeg path.
type Settings struct {
	Width           int
	Height          int
	FPSNumerator    int
	FPSDenominator  int
	BackgroundColor string
	Preset          string
	CRF             int
	YouTube         bool
}

// segment is one video source on the timeline before the crossfade chain is
// applied: either a photo input or a solid-color intro/outro card.
type segment struct {
	photo    string  // empty for color segments
	duration float64 // seconds, including the fade-in overlap
	fadeIn   float64 // crossfade duration joining this segment to the previous one
	start    float64 // timeline position where this segment begins
}

// BuildArgs translates a plan into ffmpeg arguments. Each photo is a looped
// image input; intro/outro become color sources; adjacent segments are joined
// with xfade when the plan specifies a fade and concat otherwise. Photo
// inputs are extended by their fade-in so the crossfade overlap does not
// shorten the output, and -t pins the final duration to the audio's.
func BuildArgs(p plan.Plan, audioPath, outputPath string, settings Settings) ([]string, error) {
	if len(p.Clips) == 0 {
		return nil, errors.New("render: plan has no clips")
	}
	if audioPath == "" || outputPath == "" {
		return nil, errors.New("render: audio and output paths required")
	}

	fps := fmt.Sprintf("%d/%d", settings.FPSNumerator, settings.FPSDenominator)
	size := fmt.Sprintf("%dx%d", settings.Width, settings.Height)
	bg := normalizeColor(settings.BackgroundColor)

	segments := collectSegments(p)

	args := []string{"-hide_banner", "-y"}
	for _, seg := range segments {
		if seg.photo == "" {
			args = append(args,
				"-f", "lavfi",
				"-t", formatSeconds(seg.duration+seg.fadeIn),
				"-i", fmt.Sprintf("color=c=%s:s=%s:r=%s", bg, size, fps),
			)
			continue
		}
		args = append(args,
			"-loop", "1",
			"-t", formatSeconds(seg.duration+seg.fadeIn),
			"-i", seg.photo,
		)
	}
	audioIndex := len(segments)
	args = append(args, "-i", audioPath)

	args = append(args, "-filter_complex", buildFilterGraph(segments, settings, bg))

	args = append(args,
		"-map", "[vout]",
		"-map", fmt.Sprintf("%d:a", audioIndex),
		"-c:v", "libx264",
		"-preset", settings.Preset,
		"-crf", fmt.Sprintf("%d", settings.CRF),
		"-r", fps,
		"-pix_fmt", "yuv420p",
		"-c:a", "aac",
	)
	if settings.YouTube {
		args = append(args, "-b:a", "192k", "-movflags", "+faststart")
	}
	args = append(args,
		"-t", formatSeconds(p.TotalDuration),
		outputPath,
	)
	return args, nil
}

func collectSegments(p plan.Plan) []segment {
	var segments []segment
	if p.Intro != nil {
		segments = append(segments, segment{
			duration: p.Intro.Span.Duration(),
			start:    p.Intro.Span.Start,
		})
	}
	for i, clip := range p.Clips {
		seg := segment{
			photo:    clip.Photo,
			duration: clip.Span.Duration(),
			start:    clip.Span.Start,
		}
		if i > 0 || p.Intro != nil {
			seg.fadeIn = clip.FadeIn
		}
		segments = append(segments, seg)
	}
	if p.Outro != nil {
		segments = append(segments, segment{
			duration: p.Outro.Span.Duration(),
			start:    p.Outro.Span.Start,
		})
	}
	return segments
}

// buildFilterGraph normalizes every input to the canvas and chains them.
func buildFilterGraph(segments []segment, settings Settings, bg string) string {
	var sb strings.Builder

	for i := range segments {
		fmt.Fprintf(&sb,
			"[%d:v]scale=%d:%d:force_original_aspect_ratio=decrease,pad=%d:%d:(ow-iw)/2:(oh-ih)/2:color=%s,setsar=1[s%d];",
			i, settings.Width, settings.Height, settings.Width, settings.Height, bg, i,
		)
	}

	current := "[s0]"
	for i := 1; i < len(segments); i++ {
		out := fmt.Sprintf("[v%d]", i)
		seg := segments[i]
		if seg.fadeIn > 0 {
			// The fade begins inside the previous segment's tail.
			offset := seg.start - seg.fadeIn
			fmt.Fprintf(&sb, "%s[s%d]xfade=transition=fade:duration=%s:offset=%s%s;",
				current, i, formatSeconds(seg.fadeIn), formatSeconds(offset), out)
		} else {
			fmt.Fprintf(&sb, "%s[s%d]concat=n=2:v=1:a=0%s;", current, i, out)
		}
		current = out
	}

	fmt.Fprintf(&sb, "%sformat=yuv420p[vout]", current)
	return sb.String()
}

func normalizeColor(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "black"
	}
	if strings.HasPrefix(trimmed, "#") {
		return "0x" + strings.TrimPrefix(trimmed, "#")
	}
	return trimmed
}

func formatSeconds(value float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", value), "0"), ".")
}
