package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"slidecast/internal/plan"
)

const (
	layerAudio  = 1
	layerPhotos = 2
)

// Settings carries the project-level properties written into the document.
type Settings struct {
	Width           int
	Height          int
	FPSNumerator    int
	FPSDenominator  int
	SampleRate      int
	Channels        int
	BackgroundColor string
	YouTube         bool
}

// Fraction mirrors OpenShot's num/den pairs.
type Fraction struct {
	Num int `json:"num"`
	Den int `json:"den"`
}

// File is a media asset referenced by clips.
type File struct {
	ID    string `json:"id"`
	Path  string `json:"path"`
	Media string `json:"media_type"`
}

// Point is a keyframe point; X is a frame number, Y the value at that frame.
type Point struct {
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Interpolation string  `json:"interpolation"`
}

// Keyframe is a list of interpolated points.
type Keyframe struct {
	Points []Point `json:"points"`
}

// Clip is a timed placement of a file on a layer. Position/Start/End are in
// seconds; Alpha implements the crossfades.
type Clip struct {
	ID       string    `json:"id"`
	FileID   string    `json:"file_id"`
	Title    string    `json:"title"`
	Layer    int       `json:"layer"`
	Position float64   `json:"position"`
	Start    float64   `json:"start"`
	End      float64   `json:"end"`
	Alpha    *Keyframe `json:"alpha,omitempty"`
}

// Title is a text card occupying part of the timeline.
type Title struct {
	ID       string  `json:"id"`
	Text     string  `json:"text"`
	Position float64 `json:"position"`
	Duration float64 `json:"duration"`
}

// Export describes encoder settings embedded for downstream rendering.
type Export struct {
	Target       string `json:"target"`
	VideoCodec   string `json:"video_codec"`
	AudioCodec   string `json:"audio_codec"`
	VideoBitrate int    `json:"video_bitrate"`
	AudioBitrate int    `json:"audio_bitrate"`
}

// Document is the project file payload this tool emits. It is a subset of
// OpenShot's schema: enough for the timeline, assets, and export settings.
type Document struct {
	ID              string   `json:"id"`
	FPS             Fraction `json:"fps"`
	Width           int      `json:"width"`
	Height          int      `json:"height"`
	SampleRate      int      `json:"sample_rate"`
	Channels        int      `json:"channels"`
	BackgroundColor string   `json:"background_color"`
	Duration        float64  `json:"duration"`
	Files           []File   `json:"files"`
	Clips           []Clip   `json:"clips"`
	Titles          []Title  `json:"titles,omitempty"`
	Export          *Export  `json:"export,omitempty"`
	Version         string   `json:"version"`
}

const documentVersion = "slidecast-1"

// Generator assembles Documents from plans.
type Generator struct {
	settings Settings
	newID    func() string
}

// Option configures a Generator.
type Option func(*Generator)

// WithIDSource overrides the clip/file ID generator. Tests use it to pin IDs.
func WithIDSource(fn func() string) Option {
	return func(g *Generator) {
		if fn != nil {
			g.newID = fn
		}
	}
}

// NewGenerator constructs a Generator with the provided project settings.
func NewGenerator(settings Settings, opts ...Option) *Generator {
	g := &Generator{settings: settings, newID: uuid.NewString}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Document converts a plan into a project document. audioPath is placed on
// the audio layer for the full duration; each distinct photo becomes one file
// entry shared by its clips.
func (g *Generator) Document(p plan.Plan, audioPath string) (Document, error) {
	if len(p.Clips) == 0 {
		return Document{}, errors.New("project: plan has no clips")
	}
	if audioPath == "" {
		return Document{}, errors.New("project: audio path required")
	}

	absAudio, err := filepath.Abs(audioPath)
	if err != nil {
		return Document{}, fmt.Errorf("project: resolve audio path: %w", err)
	}

	doc := Document{
		ID:              g.newID(),
		FPS:             Fraction{Num: g.settings.FPSNumerator, Den: g.settings.FPSDenominator},
		Width:           g.settings.Width,
		Height:          g.settings.Height,
		SampleRate:      g.settings.SampleRate,
		Channels:        g.settings.Channels,
		BackgroundColor: g.settings.BackgroundColor,
		Duration:        p.TotalDuration,
		Version:         documentVersion,
	}

	audioFile := File{ID: g.newID(), Path: absAudio, Media: "audio"}
	doc.Files = append(doc.Files, audioFile)
	doc.Clips = append(doc.Clips, Clip{
		ID:       g.newID(),
		FileID:   audioFile.ID,
		Title:    filepath.Base(absAudio),
		Layer:    layerAudio,
		Position: 0,
		Start:    0,
		End:      p.TotalDuration,
	})

	// One file entry per distinct photo; clips that loop share it.
	photoFiles := make(map[string]string)
	for _, clip := range p.Clips {
		absPhoto, err := filepath.Abs(clip.Photo)
		if err != nil {
			return Document{}, fmt.Errorf("project: resolve photo path: %w", err)
		}
		fileID, ok := photoFiles[absPhoto]
		if !ok {
			fileID = g.newID()
			photoFiles[absPhoto] = fileID
			doc.Files = append(doc.Files, File{ID: fileID, Path: absPhoto, Media: "image"})
		}

		doc.Clips = append(doc.Clips, Clip{
			ID:       g.newID(),
			FileID:   fileID,
			Title:    filepath.Base(absPhoto),
			Layer:    layerPhotos,
			Position: clip.Span.Start,
			Start:    0,
			End:      clip.Span.Duration(),
			Alpha:    g.alphaKeyframe(clip),
		})
	}

	if p.Intro != nil {
		doc.Titles = append(doc.Titles, Title{
			ID:       g.newID(),
			Text:     p.Intro.Text,
			Position: p.Intro.Span.Start,
			Duration: p.Intro.Span.Duration(),
		})
	}
	if p.Outro != nil {
		doc.Titles = append(doc.Titles, Title{
			ID:       g.newID(),
			Text:     p.Outro.Text,
			Position: p.Outro.Span.Start,
			Duration: p.Outro.Span.Duration(),
		})
	}

	if g.settings.YouTube {
		doc.Export = &Export{
			Target:       "youtube",
			VideoCodec:   "libx264",
			AudioCodec:   "aac",
			VideoBitrate: 8_000_000,
			AudioBitrate: 192_000,
		}
	}

	return doc, nil
}

// alphaKeyframe maps the clip's fades onto clip-local frame keyframes.
// Frames are 1-based; a nil result means fully opaque.
func (g *Generator) alphaKeyframe(clip plan.Clip) *Keyframe {
	if clip.FadeIn <= 0 && clip.FadeOut <= 0 {
		return nil
	}

	fps := float64(g.settings.FPSNumerator) / float64(g.settings.FPSDenominator)
	duration := clip.Span.Duration()
	lastFrame := secondsToFrame(duration, fps)

	var points []Point
	if clip.FadeIn > 0 {
		points = append(points,
			Point{X: 1, Y: 0, Interpolation: "linear"},
			Point{X: secondsToFrame(clip.FadeIn, fps), Y: 1, Interpolation: "linear"},
		)
	} else {
		points = append(points, Point{X: 1, Y: 1, Interpolation: "linear"})
	}
	if clip.FadeOut > 0 {
		points = append(points,
			Point{X: secondsToFrame(duration-clip.FadeOut, fps), Y: 1, Interpolation: "linear"},
			Point{X: lastFrame, Y: 0, Interpolation: "linear"},
		)
	} else {
		points = append(points, Point{X: lastFrame, Y: 1, Interpolation: "linear"})
	}
	return &Keyframe{Points: points}
}

func secondsToFrame(seconds, fps float64) float64 {
	frame := seconds * fps
	if frame < 1 {
		return 1
	}
	return frame
}

// WriteFile marshals the document as indented JSON at path.
func (d Document) WriteFile(path string) error {
	payload, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("project: marshal document: %w", err)
	}
	payload = append(payload, '\n')
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("project: write %s: %w", path, err)
	}
	return nil
}
