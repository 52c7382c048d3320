package config

const (
	defaultStateDir        = "~/.local/share/slidecast"
	defaultLogDir          = "~/.local/share/slidecast/logs"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	defaultBackgroundColor = "#000000"
	defaultRenderPreset    = "medium"
	defaultRenderCRF       = 20

	defaultPhotoDuration = 120.0
	defaultFadeDuration  = 2.0
	defaultIntroDuration = 180.0
	defaultOutroDuration = 60.0
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
			LogDir:   defaultLogDir,
		},
		Video: Video{
			Width:           1920,
			Height:          1080,
			FPSNumerator:    30,
			FPSDenominator:  1,
			SampleRate:      48000,
			Channels:        2,
			BackgroundColor: defaultBackgroundColor,
		},
		Slideshow: Slideshow{
			PhotoDuration: defaultPhotoDuration,
			FadeDuration:  defaultFadeDuration,
			IntroDuration: defaultIntroDuration,
			OutroDuration: defaultOutroDuration,
			TitleText:     "Demo",
			CopyrightText: "© 2024",
		},
		Render: Render{
			Preset:  defaultRenderPreset,
			CRF:     defaultRenderCRF,
			YouTube: true,
		},
		History: History{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
