package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"slidecast/internal/config"
)

func TestLoadDefaultsWhenNoFileExists(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd returned error: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir returned error: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(origDir); err != nil {
			t.Fatalf("restoring working directory: %v", err)
		}
	})

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantState := filepath.Join(tempHome, ".local", "share", "slidecast")
	if cfg.Paths.StateDir != wantState {
		t.Fatalf("unexpected state dir: got %q want %q", cfg.Paths.StateDir, wantState)
	}
	if cfg.Video.Width != 1920 || cfg.Video.Height != 1080 {
		t.Fatalf("unexpected video dimensions: %dx%d", cfg.Video.Width, cfg.Video.Height)
	}
	if cfg.Slideshow.PhotoDuration != 120 {
		t.Fatalf("unexpected photo duration: %v", cfg.Slideshow.PhotoDuration)
	}
	if cfg.Slideshow.IntroDuration != 180 || cfg.Slideshow.OutroDuration != 60 {
		t.Fatalf("unexpected intro/outro defaults: %v/%v", cfg.Slideshow.IntroDuration, cfg.Slideshow.OutroDuration)
	}
	if !cfg.Render.YouTube {
		t.Fatal("expected YouTube preset enabled by default")
	}
	if cfg.FFmpegBinary() != "ffmpeg" || cfg.FFprobeBinary() != "ffprobe" {
		t.Fatalf("unexpected binaries: %q %q", cfg.FFmpegBinary(), cfg.FFprobeBinary())
	}
	if got := cfg.HistoryPath(); got != filepath.Join(wantState, "history.db") {
		t.Fatalf("unexpected history path: %q", got)
	}
}

func TestLoadReadsFileAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(t.TempDir(), "config.toml")
	content := strings.Join([]string{
		"[paths]",
		`state_dir = "~/state"`,
		"[slideshow]",
		"photo_duration = 45.5",
		`title_text = "Lecture"`,
		"[render]",
		`preset = "FAST"`,
		"crf = 18",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected existing config at %q, got %q exists=%v", path, resolved, exists)
	}
	if cfg.Paths.StateDir != filepath.Join(tempHome, "state") {
		t.Fatalf("expected ~ expansion, got %q", cfg.Paths.StateDir)
	}
	if cfg.Slideshow.PhotoDuration != 45.5 {
		t.Fatalf("unexpected photo duration: %v", cfg.Slideshow.PhotoDuration)
	}
	if cfg.Slideshow.TitleText != "Lecture" {
		t.Fatalf("unexpected title text: %q", cfg.Slideshow.TitleText)
	}
	if cfg.Render.Preset != "fast" {
		t.Fatalf("expected preset lowered, got %q", cfg.Render.Preset)
	}
	if cfg.Render.CRF != 18 {
		t.Fatalf("unexpected crf: %d", cfg.Render.CRF)
	}
	// Defaults fill sections the file omits.
	if cfg.Slideshow.FadeDuration != 2 {
		t.Fatalf("expected default fade, got %v", cfg.Slideshow.FadeDuration)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"negative fade", "[slideshow]\nfade_duration = -1.0"},
		{"zero photo duration", "[slideshow]\nphoto_duration = 0.0"},
		{"bad preset", "[render]\npreset = \"turbo\""},
		{"bad crf", "[render]\ncrf = 99"},
		{"bad color", "[video]\nbackground_color = \"red\""},
		{"bad log format", "[logging]\nformat = \"xml\""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, _, _, err := config.Load(path); err == nil {
				t.Fatalf("expected validation error for %s", tc.name)
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Video.Width != config.Default().Video.Width {
		t.Fatalf("sample config should keep defaults, got width %d", cfg.Video.Width)
	}
}

func TestHistoryPathOverride(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[history]\npath = \"~/runs.db\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.HistoryPath() != filepath.Join(tempHome, "runs.db") {
		t.Fatalf("unexpected history path: %q", cfg.HistoryPath())
	}
}
