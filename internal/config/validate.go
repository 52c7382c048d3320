package config

import (
	"errors"
	"fmt"
	"strings"
)

var allowedVideoPresets = map[string]struct{}{
	"ultrafast": {},
	"superfast": {},
	"veryfast":  {},
	"faster":    {},
	"fast":      {},
	"medium":    {},
	"slow":      {},
	"slower":    {},
	"veryslow":  {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateVideo(); err != nil {
		return err
	}
	if err := c.validateSlideshow(); err != nil {
		return err
	}
	if err := c.validateRender(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateVideo() error {
	if c.Video.Width <= 0 || c.Video.Height <= 0 {
		return errors.New("video.width and video.height must be positive")
	}
	if c.Video.FPSNumerator <= 0 || c.Video.FPSDenominator <= 0 {
		return errors.New("video.fps_numerator and video.fps_denominator must be positive")
	}
	if c.Video.SampleRate <= 0 {
		return errors.New("video.sample_rate must be positive")
	}
	if c.Video.Channels <= 0 {
		return errors.New("video.channels must be positive")
	}
	if err := validateHexColor(c.Video.BackgroundColor); err != nil {
		return fmt.Errorf("video.background_color: %w", err)
	}
	return nil
}

func (c *Config) validateSlideshow() error {
	if c.Slideshow.PhotoDuration <= 0 {
		return errors.New("slideshow.photo_duration must be positive")
	}
	if c.Slideshow.FadeDuration < 0 {
		return errors.New("slideshow.fade_duration must not be negative")
	}
	if c.Slideshow.IntroDuration < 0 {
		return errors.New("slideshow.intro_duration must not be negative")
	}
	if c.Slideshow.OutroDuration < 0 {
		return errors.New("slideshow.outro_duration must not be negative")
	}
	return nil
}

func (c *Config) validateRender() error {
	if _, ok := allowedVideoPresets[c.Render.Preset]; !ok {
		return fmt.Errorf("render.preset %q is not a recognized x264 preset", c.Render.Preset)
	}
	if c.Render.CRF < 0 || c.Render.CRF > 51 {
		return errors.New("render.crf must be between 0 and 51")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q is not supported (console, json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not supported (debug, info, warn, error)", c.Logging.Level)
	}
	return nil
}

func validateHexColor(value string) error {
	trimmed := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(trimmed) != 6 && len(trimmed) != 3 {
		return fmt.Errorf("%q must be a hex color such as #1a2b3c", value)
	}
	for _, r := range trimmed {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return fmt.Errorf("%q must be a hex color such as #1a2b3c", value)
		}
	}
	return nil
}
