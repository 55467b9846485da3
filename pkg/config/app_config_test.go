package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.BaseDir)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, DefaultPlayfieldWidth, cfg.Playfield.Width)
	assert.Equal(t, DefaultPlayfieldHeight, cfg.Playfield.Height)
	assert.Equal(t, 1.0, cfg.Window.Scale)
	assert.Equal(t, DefaultRespawnDelay, cfg.Respawn.Delay)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := `
base_dir: /opt/planewar
verbose: true
playfield:
  width: 512
  height: 768
window:
  scale: 1.5
respawn:
  delay: 2.5
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "planewar.yaml"), []byte(content), 0644))

	cfg, err := Load(viper.New(), dir)
	require.NoError(t, err)

	assert.Equal(t, "/opt/planewar", cfg.BaseDir)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 512, cfg.Playfield.Width)
	assert.Equal(t, 768, cfg.Playfield.Height)
	assert.Equal(t, 1.5, cfg.Window.Scale)
	assert.Equal(t, 2.5, cfg.Respawn.Delay)

	w, h := cfg.WindowSize()
	assert.Equal(t, 768, w)
	assert.Equal(t, 1152, h)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "planewar.yaml"), []byte("base_dir: /from/file\n"), 0644))

	t.Setenv("PLANEWAR_BASE_DIR", "/from/env")
	t.Setenv("PLANEWAR_PLAYFIELD_WIDTH", "640")

	cfg, err := Load(viper.New(), dir)
	require.NoError(t, err)

	assert.Equal(t, "/from/env", cfg.BaseDir)
	assert.Equal(t, 640, cfg.Playfield.Width)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("PLANEWAR_BASE_DIR", "/from/env")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--base-dir", "/from/flag", "--height", "900"}))

	v := viper.New()
	require.NoError(t, BindFlags(v, fs))

	cfg, err := Load(v, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "/from/flag", cfg.BaseDir)
	assert.Equal(t, 900, cfg.Playfield.Height)
	// 未显式传入的参数不覆盖默认值
	assert.Equal(t, DefaultPlayfieldWidth, cfg.Playfield.Width)
}

func TestLoad_InvalidConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "planewar.yaml"), []byte("playfield: [1, 2\n"), 0644))

	_, err := Load(viper.New(), dir)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := AppConfig{
		BaseDir:   ".",
		Playfield: PlayfieldConfig{Width: 480, Height: 700},
		Window:    WindowConfig{Scale: 1},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(c *AppConfig)
	}{
		{"empty base dir", func(c *AppConfig) { c.BaseDir = " " }},
		{"zero width", func(c *AppConfig) { c.Playfield.Width = 0 }},
		{"negative height", func(c *AppConfig) { c.Playfield.Height = -1 }},
		{"height inside margin", func(c *AppConfig) { c.Playfield.Height = MarginBottom }},
		{"zero scale", func(c *AppConfig) { c.Window.Scale = 0 }},
		{"negative respawn delay", func(c *AppConfig) { c.Respawn.Delay = -0.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestBindFlags_UnknownFlag(t *testing.T) {
	fs := pflag.NewFlagSet("empty", pflag.ContinueOnError)
	assert.Error(t, BindFlags(viper.New(), fs))
}
