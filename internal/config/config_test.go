package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inTempDir runs the test from an empty directory so no stray .env file is read
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	inTempDir(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.Sampling.PointCount)
	assert.Equal(t, 3e8, cfg.Sampling.SpeedOfLight)
	assert.Equal(t, "wavesum.png", cfg.Chart.Output)
	assert.Equal(t, 10.0, cfg.Chart.WidthInches)
	assert.Equal(t, 6.0, cfg.Chart.HeightInches)
	assert.True(t, cfg.Preview.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "dev", cfg.Env)
}

func TestLoad_EnvOverrides(t *testing.T) {
	inTempDir(t)
	t.Setenv("WAVESUM_POINT_COUNT", "256")
	t.Setenv("WAVESUM_OUTPUT", "out.svg")
	t.Setenv("WAVESUM_PREVIEW", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 256, cfg.Sampling.PointCount)
	assert.Equal(t, "out.svg", cfg.Chart.Output)
	assert.False(t, cfg.Preview.Enabled)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := inTempDir(t)
	t.Setenv("WAVESUM_ENVIRONMENT", "test")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.test"), []byte("SPEED_OF_LIGHT=299792458\nLOG_LEVEL=debug\n"), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 299792458.0, cfg.Sampling.SpeedOfLight)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "test", cfg.Env)
}

func TestLoad_RejectsInvalid(t *testing.T) {
	inTempDir(t)
	t.Setenv("WAVESUM_POINT_COUNT", "0")

	cfg, err := Load()
	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "POINT_COUNT")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Sampling: SamplingConfig{PointCount: 100, SpeedOfLight: 3e8},
			Chart:    ChartConfig{Output: "x.png", WidthInches: 10, HeightInches: 6},
			Preview:  PreviewConfig{Enabled: true, Width: 80, Height: 20},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "negative speed of light", mutate: func(c *Config) { c.Sampling.SpeedOfLight = -1 }},
		{name: "missing output", mutate: func(c *Config) { c.Chart.Output = "" }},
		{name: "zero chart width", mutate: func(c *Config) { c.Chart.WidthInches = 0 }},
		{name: "zero preview height", mutate: func(c *Config) { c.Preview.Height = 0 }},
	}

	base := valid()
	require.NoError(t, base.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}

	disabled := valid()
	disabled.Preview = PreviewConfig{Enabled: false}
	assert.NoError(t, disabled.Validate())
}
