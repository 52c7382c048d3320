package render

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofrs/flock"

	"slidecast/internal/plan"
	"slidecast/internal/services"
)

func writeStub(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ffmpeg-stub")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

func TestRenderReportsProgress(t *testing.T) {
	stub := writeStub(t, `#!/bin/sh
cat <<'EOF'
frame=100
out_time_us=60000000
speed=12.5x
progress=continue
frame=200
out_time_us=120000000
speed=12.1x
progress=end
EOF
`)

	p := mustPlan(t, plan.Options{
		AudioDuration: 120,
		Photos:        []string{"/p/a.jpg"},
		PhotoDuration: 120,
	})

	var updates []ProgressUpdate
	runner := NewRunner(WithBinary(stub))
	out := filepath.Join(t.TempDir(), "out.mp4")
	err := runner.Render(context.Background(), p, "/a/track.mp3", out, testSettings(), func(u ProgressUpdate) {
		updates = append(updates, u)
	})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if len(updates) != 2 {
		t.Fatalf("expected 2 progress updates, got %d", len(updates))
	}
	if updates[0].Percent != 50 {
		t.Fatalf("expected 50%% after 60s of 120s, got %v", updates[0].Percent)
	}
	if updates[0].Speed != "12.5x" || updates[0].FrameCount != 100 {
		t.Fatalf("unexpected first update: %+v", updates[0])
	}
	if updates[1].Percent != 100 {
		t.Fatalf("expected 100%% at end, got %v", updates[1].Percent)
	}
}

func TestRenderSurfacesStderrOnFailure(t *testing.T) {
	stub := writeStub(t, `#!/bin/sh
echo "Unknown encoder 'libx264'" >&2
exit 1
`)

	p := mustPlan(t, plan.Options{
		AudioDuration: 120,
		Photos:        []string{"/p/a.jpg"},
		PhotoDuration: 120,
	})

	runner := NewRunner(WithBinary(stub))
	out := filepath.Join(t.TempDir(), "out.mp4")
	err := runner.Render(context.Background(), p, "/a/track.mp3", out, testSettings(), nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected external tool error, got %v", err)
	}
	if !strings.Contains(err.Error(), "Unknown encoder") {
		t.Fatalf("expected stderr detail in error, got %v", err)
	}
}

func TestRenderSurfacesOversizedProgressLine(t *testing.T) {
	// A progress line beyond the scanner's 64KB token limit aborts the read;
	// Render must still reap the child and report the failure.
	stub := writeStub(t, `#!/bin/sh
head -c 70000 /dev/zero | tr '\0' 'a'
echo
`)

	p := mustPlan(t, plan.Options{
		AudioDuration: 120,
		Photos:        []string{"/p/a.jpg"},
		PhotoDuration: 120,
	})

	runner := NewRunner(WithBinary(stub))
	out := filepath.Join(t.TempDir(), "out.mp4")
	err := runner.Render(context.Background(), p, "/a/track.mp3", out, testSettings(), nil)
	if err == nil {
		t.Fatal("expected error for oversized progress output")
	}
	if !strings.Contains(err.Error(), "read ffmpeg output") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRenderRefusesLockedOutput(t *testing.T) {
	p := mustPlan(t, plan.Options{
		AudioDuration: 120,
		Photos:        []string{"/p/a.jpg"},
		PhotoDuration: 120,
	})

	out := filepath.Join(t.TempDir(), "out.mp4")
	held := flock.New(out + ".lock")
	locked, err := held.TryLock()
	if err != nil || !locked {
		t.Fatalf("prepare lock: %v locked=%v", err, locked)
	}
	defer held.Unlock() //nolint:errcheck

	runner := NewRunner(WithBinary("/bin/true"))
	err = runner.Render(context.Background(), p, "/a/track.mp3", out, testSettings(), nil)
	if err == nil {
		t.Fatal("expected lock contention error")
	}
	if !strings.Contains(err.Error(), "another render") {
		t.Fatalf("unexpected error: %v", err)
	}
}
