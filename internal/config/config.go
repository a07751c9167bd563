package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Sampling SamplingConfig
	Chart    ChartConfig
	Preview  PreviewConfig
	Log      LogConfig
	Env      string
}

// SamplingConfig holds the constants shared by every run
type SamplingConfig struct {
	PointCount   int
	SpeedOfLight float64
}

// ChartConfig holds image output configuration
type ChartConfig struct {
	Output       string
	WidthInches  float64
	HeightInches float64
}

// PreviewConfig holds terminal preview configuration
type PreviewConfig struct {
	Enabled bool
	Width   int
	Height  int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// Load loads configuration from environment variables and .env files.
// Every key can be overridden with a WAVESUM_ prefixed variable.
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("POINT_COUNT", 100)
	v.SetDefault("SPEED_OF_LIGHT", 3e8)
	v.SetDefault("OUTPUT", "wavesum.png")
	v.SetDefault("CHART_WIDTH_INCHES", 10.0)
	v.SetDefault("CHART_HEIGHT_INCHES", 6.0)
	v.SetDefault("PREVIEW", true)
	v.SetDefault("PREVIEW_WIDTH", 100)
	v.SetDefault("PREVIEW_HEIGHT", 20)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ENVIRONMENT", "dev")

	v.SetEnvPrefix("WAVESUM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read from .env files based on environment
	env := v.GetString("ENVIRONMENT")
	if env == "" {
		env = "dev"
	}

	v.SetConfigName(".env." + env)
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read .env.%s: %w", env, err)
		}
	}

	config := &Config{
		Sampling: SamplingConfig{
			PointCount:   v.GetInt("POINT_COUNT"),
			SpeedOfLight: v.GetFloat64("SPEED_OF_LIGHT"),
		},
		Chart: ChartConfig{
			Output:       v.GetString("OUTPUT"),
			WidthInches:  v.GetFloat64("CHART_WIDTH_INCHES"),
			HeightInches: v.GetFloat64("CHART_HEIGHT_INCHES"),
		},
		Preview: PreviewConfig{
			Enabled: v.GetBool("PREVIEW"),
			Width:   v.GetInt("PREVIEW_WIDTH"),
			Height:  v.GetInt("PREVIEW_HEIGHT"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Env: env,
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Int("point_count", config.Sampling.PointCount).
		Float64("speed_of_light", config.Sampling.SpeedOfLight).
		Str("output", config.Chart.Output).
		Bool("preview", config.Preview.Enabled).
		Str("env", config.Env).
		Msg("Configuration loaded")

	return config, nil
}

// Validate rejects values the sampler or renderers cannot work with
func (c *Config) Validate() error {
	if c.Sampling.PointCount <= 0 {
		return fmt.Errorf("POINT_COUNT must be positive, got %d", c.Sampling.PointCount)
	}
	if c.Sampling.SpeedOfLight <= 0 {
		return fmt.Errorf("SPEED_OF_LIGHT must be positive, got %v", c.Sampling.SpeedOfLight)
	}
	if c.Chart.Output == "" {
		return fmt.Errorf("OUTPUT is required")
	}
	if c.Chart.WidthInches <= 0 || c.Chart.HeightInches <= 0 {
		return fmt.Errorf("chart size must be positive, got %vx%v inches", c.Chart.WidthInches, c.Chart.HeightInches)
	}
	if c.Preview.Enabled && (c.Preview.Width <= 0 || c.Preview.Height <= 0) {
		return fmt.Errorf("preview size must be positive, got %dx%d", c.Preview.Width, c.Preview.Height)
	}
	return nil
}
