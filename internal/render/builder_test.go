package render

import (
	"strings"
	"testing"

	"slidecast/internal/plan"
)

func testSettings() Settings {
	return Settings{
		Width:           1920,
		Height:          1080,
		FPSNumerator:    30,
		FPSDenominator:  1,
		BackgroundColor: "#1a2b3c",
		Preset:          "medium",
		CRF:             20,
		YouTube:         true,
	}
}

func mustPlan(t *testing.T, opts plan.Options) plan.Plan {
	t.Helper()
	p, err := plan.Build(opts)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	return p
}

func argsAfter(t *testing.T, args []string, flag string) string {
	t.Helper()
	for i, arg := range args {
		if arg == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	t.Fatalf("flag %q not found in %v", flag, args)
	return ""
}

func TestBuildArgsPhotoInputsAndDuration(t *testing.T) {
	p := mustPlan(t, plan.Options{
		AudioDuration: 300,
		Photos:        []string{"/p/a.jpg", "/p/b.jpg"},
		PhotoDuration: 120,
	})

	args, err := BuildArgs(p, "/a/track.mp3", "/out/video.mp4", testSettings())
	if err != nil {
		t.Fatalf("BuildArgs returned error: %v", err)
	}

	joined := strings.Join(args, " ")
	if !strings.Contains(joined, "-loop 1 -t 120 -i /p/a.jpg") {
		t.Fatalf("expected first photo input, got %s", joined)
	}
	if !strings.Contains(joined, "-i /a/track.mp3") {
		t.Fatalf("expected audio input, got %s", joined)
	}
	if got := argsAfter(t, args, "-t"); got != "120" {
		t.Fatalf("first -t should be the first clip duration, got %q", got)
	}
	if args[len(args)-1] != "/out/video.mp4" {
		t.Fatalf("output path must be last, got %q", args[len(args)-1])
	}
	// Final -t pins the total duration.
	if args[len(args)-2] != "300" || args[len(args)-3] != "-t" {
		t.Fatalf("expected trailing -t 300, got %v", args[len(args)-4:])
	}
}

func TestBuildArgsXfadeOffsets(t *testing.T) {
	p := mustPlan(t, plan.Options{
		AudioDuration: 240,
		Photos:        []string{"/p/a.jpg", "/p/b.jpg"},
		PhotoDuration: 120,
		FadeDuration:  2,
	})

	args, err := BuildArgs(p, "/a/track.mp3", "/out/video.mp4", testSettings())
	if err != nil {
		t.Fatalf("BuildArgs returned error: %v", err)
	}
	graph := argsAfter(t, args, "-filter_complex")

	// Second clip starts at 120 with a 2s fade overlapping the first clip's tail.
	if !strings.Contains(graph, "xfade=transition=fade:duration=2:offset=118") {
		t.Fatalf("expected xfade at offset 118, got %s", graph)
	}
	if !strings.HasSuffix(graph, "format=yuv420p[vout]") {
		t.Fatalf("graph must end in [vout], got %s", graph)
	}
	// Second photo input is extended by its fade-in.
	joined := strings.Join(args, " ")
	if !strings.Contains(joined, "-loop 1 -t 122 -i /p/b.jpg") {
		t.Fatalf("expected fade-extended input for second photo, got %s", joined)
	}
}

func TestBuildArgsIntroOutroColorSources(t *testing.T) {
	p := mustPlan(t, plan.Options{
		AudioDuration: 360,
		Photos:        []string{"/p/a.jpg"},
		PhotoDuration: 120,
		IntroDuration: 60,
		OutroDuration: 60,
	})

	args, err := BuildArgs(p, "/a/track.mp3", "/out/video.mp4", testSettings())
	if err != nil {
		t.Fatalf("BuildArgs returned error: %v", err)
	}
	joined := strings.Join(args, " ")
	if strings.Count(joined, "color=c=0x1a2b3c:s=1920x1080:r=30/1") != 2 {
		t.Fatalf("expected two color sources for intro and outro, got %s", joined)
	}
	graph := argsAfter(t, args, "-filter_complex")
	// No fades configured between color cards and clips: segments concat.
	if !strings.Contains(graph, "concat=n=2:v=1:a=0") {
		t.Fatalf("expected concat joins, got %s", graph)
	}
}

func TestBuildArgsWithoutYouTubeProfile(t *testing.T) {
	settings := testSettings()
	settings.YouTube = false

	p := mustPlan(t, plan.Options{
		AudioDuration: 120,
		Photos:        []string{"/p/a.jpg"},
		PhotoDuration: 120,
	})
	args, err := BuildArgs(p, "/a/track.mp3", "/out/video.mp4", settings)
	if err != nil {
		t.Fatalf("BuildArgs returned error: %v", err)
	}
	joined := strings.Join(args, " ")
	if strings.Contains(joined, "faststart") {
		t.Fatalf("faststart belongs to the YouTube profile only: %s", joined)
	}
}

func TestBuildArgsValidation(t *testing.T) {
	if _, err := BuildArgs(plan.Plan{}, "/a.mp3", "/out.mp4", testSettings()); err == nil {
		t.Fatal("expected error for empty plan")
	}
	p := mustPlan(t, plan.Options{AudioDuration: 120, Photos: []string{"/p/a.jpg"}, PhotoDuration: 120})
	if _, err := BuildArgs(p, "", "/out.mp4", testSettings()); err == nil {
		t.Fatal("expected error for missing audio path")
	}
}
