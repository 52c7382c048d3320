package plan

// TimeSpan is a half-open interval [Start, End) in seconds on the output
// timeline.
type TimeSpan struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Duration returns the span length in seconds.
func (s TimeSpan) Duration() float64 {
	return s.End - s.Start
}

// Clip is one photo's timed placement on the output timeline. FadeIn and
// FadeOut describe crossfade overlap shared with the adjacent clips; the
// overlap lives inside the two spans rather than between them.
type Clip struct {
	Photo      string   `json:"photo"`
	PhotoIndex int      `json:"photo_index"`
	Span       TimeSpan `json:"span"`
	FadeIn     float64  `json:"fade_in,omitempty"`
	FadeOut    float64  `json:"fade_out,omitempty"`
}

// Segment is a title card occupying part of the timeline before or after the
// photo slideshow.
type Segment struct {
	Text string   `json:"text"`
	Span TimeSpan `json:"span"`
}

// Plan is the full ordered timeline: optional intro and outro segments with
// photo clips tiling the span between them. Clips appear in timeline order
// and, together with the segments, cover [0, TotalDuration) exactly.
type Plan struct {
	Clips         []Clip   `json:"clips"`
	Intro         *Segment `json:"intro,omitempty"`
	Outro         *Segment `json:"outro,omitempty"`
	TotalDuration float64  `json:"total_duration"`
}

// SlideshowSpan returns the interval covered by photo clips.
func (p Plan) SlideshowSpan() TimeSpan {
	if len(p.Clips) == 0 {
		return TimeSpan{}
	}
	return TimeSpan{Start: p.Clips[0].Span.Start, End: p.Clips[len(p.Clips)-1].Span.End}
}

// PhotoCount returns the number of distinct photos referenced by the plan.
func (p Plan) PhotoCount() int {
	seen := make(map[int]struct{}, len(p.Clips))
	for _, clip := range p.Clips {
		seen[clip.PhotoIndex] = struct{}{}
	}
	return len(seen)
}
