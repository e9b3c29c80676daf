// Package config handles explorer configuration loading and management.
package config

// Config holds all explorer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	World    WorldConfig    `yaml:"world"`
	Controls ControlsConfig `yaml:"controls"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	ShowFPS    bool `yaml:"show_fps"`
}

// WorldConfig holds generation settings.
type WorldConfig struct {
	Seed    int64   `yaml:"seed"`
	Radius  int     `yaml:"radius"`
	HexSize float64 `yaml:"hex_size"`
}

// ControlsConfig holds input settings. MouseSensitivity scales the
// camera's base drag sensitivity.
type ControlsConfig struct {
	MouseSensitivity float64 `yaml:"mouse_sensitivity"`
	InvertY          bool    `yaml:"invert_y"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			ShowFPS:    false,
		},
		World: WorldConfig{
			Seed:    1337,
			Radius:  9,
			HexSize: 1.0,
		},
		Controls: ControlsConfig{
			MouseSensitivity: 1.0,
			InvertY:          false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
