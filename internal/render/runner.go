package render

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/gofrs/flock"

	"slidecast/internal/plan"
	"slidecast/internal/services"
)

var commandContext = exec.CommandContext

// ProgressUpdate captures ffmpeg progress events.
type ProgressUpdate struct {
	Percent    float64
	OutTime    float64
	Speed      string
	FrameCount int64
}

// Runner drives ffmpeg for the direct rendering path.
type Runner struct {
	binary string
}

// Option configures the Runner.
type Option func(*Runner)

// WithBinary overrides the default ffmpeg binary name.
func WithBinary(binary string) Option {
	return func(r *Runner) {
		if strings.TrimSpace(binary) != "" {
			r.binary = binary
		}
	}
}

// NewRunner constructs a Runner using defaults.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{binary: "ffmpeg"}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render encodes the plan to outputPath, reporting progress as ffmpeg emits
// it. A lock file next to the output prevents two renders from writing the
// same file concurrently.
func (r *Runner) Render(ctx context.Context, p plan.Plan, audioPath, outputPath string, settings Settings, progress func(ProgressUpdate)) error {
	args, err := BuildArgs(p, audioPath, outputPath, settings)
	if err != nil {
		return err
	}

	lock := flock.New(outputPath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("render: acquire output lock: %w", err)
	}
	if !locked {
		return services.Wrap(services.ErrValidation, "render", "lock",
			fmt.Sprintf("another render is already writing %s", outputPath), nil)
	}
	defer lock.Unlock() //nolint:errcheck

	// The output path must stay last; splice the progress flags in before it.
	output := args[len(args)-1]
	args = append(args[:len(args)-1], "-progress", "pipe:1", "-nostats", output)
	cmd := commandContext(ctx, r.binary, args...) //nolint:gosec

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("render: stdout pipe: %w", err)
	}
	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return services.Wrap(services.ErrExternalTool, "render", "start ffmpeg", r.binary, err)
	}

	scanner := bufio.NewScanner(stdout)
	update := ProgressUpdate{}
	for scanner.Scan() {
		key, value, ok := strings.Cut(strings.TrimSpace(scanner.Text()), "=")
		if !ok {
			continue
		}
		switch key {
		case "out_time_us":
			if us, err := strconv.ParseInt(value, 10, 64); err == nil {
				update.OutTime = float64(us) / 1e6
				if p.TotalDuration > 0 {
					update.Percent = clampPercent(update.OutTime / p.TotalDuration * 100)
				}
			}
		case "frame":
			if frames, err := strconv.ParseInt(value, 10, 64); err == nil {
				update.FrameCount = frames
			}
		case "speed":
			update.Speed = strings.TrimSpace(value)
		case "progress":
			if value == "end" {
				update.Percent = 100
			}
			if progress != nil {
				progress(update)
			}
		}
	}
	if scanErr := scanner.Err(); scanErr != nil {
		// Reap the child before bailing so it does not linger as a zombie.
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return fmt.Errorf("render: read ffmpeg output: %w", scanErr)
	}

	if err := cmd.Wait(); err != nil {
		return services.Wrap(services.ErrExternalTool, "render", "ffmpeg encode",
			tailLines(stderr.String(), 5), err)
	}
	return nil
}

func clampPercent(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}

func tailLines(s string, n int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "; ")
}
