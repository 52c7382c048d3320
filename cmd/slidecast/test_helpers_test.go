package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	audioPath  string
	photosDir  string
	ffmpegLog  string
}

const stubProbeJSON = `{
  "streams": [
    {"index": 0, "codec_name": "pcm_s16le", "codec_type": "audio", "sample_rate": "44100", "channels": 2}
  ],
  "format": {"filename": "stub", "nb_streams": 1, "duration": "480.000000", "size": "1024", "bit_rate": "1411200"}
}`

// setupCLITestEnv builds a temp config with stubbed ffmpeg/ffprobe binaries,
// a fake audio file, and a small photo directory.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	binDir := filepath.Join(base, "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("mkdir bin: %v", err)
	}

	ffprobePath := filepath.Join(binDir, "ffprobe")
	writeStub(t, ffprobePath, fmt.Sprintf("#!/bin/sh\ncat <<'EOF'\n%s\nEOF\n", stubProbeJSON))

	ffmpegLog := filepath.Join(base, "ffmpeg-args.txt")
	ffmpegPath := filepath.Join(binDir, "ffmpeg")
	writeStub(t, ffmpegPath, fmt.Sprintf(
		"#!/bin/sh\nprintf '%%s\\n' \"$@\" > %q\necho 'out_time_us=480000000'\necho 'speed=12x'\necho 'progress=end'\nexit 0\n",
		ffmpegLog))

	audioPath := filepath.Join(base, "track.wav")
	if err := os.WriteFile(audioPath, []byte("not really audio"), 0o644); err != nil {
		t.Fatalf("write audio: %v", err)
	}

	photosDir := filepath.Join(base, "photos")
	if err := os.MkdirAll(photosDir, 0o755); err != nil {
		t.Fatalf("mkdir photos: %v", err)
	}
	for _, name := range []string{"b.jpg", "a.png", "c.jpeg"} {
		if err := os.WriteFile(filepath.Join(photosDir, name), []byte("img"), 0o644); err != nil {
			t.Fatalf("write photo: %v", err)
		}
	}

	configPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf(`[paths]
state_dir = %q
log_dir = %q

[render]
ffmpeg_binary = %q
ffprobe_binary = %q

[history]
enabled = true
path = %q
`,
		filepath.Join(base, "state"),
		filepath.Join(base, "logs"),
		ffmpegPath,
		ffprobePath,
		filepath.Join(base, "state", "history.db"))
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return &cliTestEnv{
		baseDir:    base,
		configPath: configPath,
		audioPath:  audioPath,
		photosDir:  photosDir,
		ffmpegLog:  ffmpegLog,
	}
}

func writeStub(t *testing.T, path, script string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", path, err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
