package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "src", cfg.SrcDir)
	assert.Equal(t, "tmp/step-1-enhanced-md", cfg.PreprocessDir)
	assert.Equal(t, "tmp/step-2-resulting-html", cfg.BuildDir)
	assert.NoError(t, cfg.Validate())
}

func TestValidate_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"src_dir", func(c *Config) { c.SrcDir = "" }, "src_dir is required"},
		{"preprocess_dir", func(c *Config) { c.PreprocessDir = "" }, "preprocess_dir is required"},
		{"build_dir", func(c *Config) { c.BuildDir = "" }, "build_dir is required"},
		{"template", func(c *Config) { c.Template = "" }, "template is required"},
		{"css", func(c *Config) { c.CSS = "" }, "css is required"},
		{"dev_js", func(c *Config) { c.DevJS = "" }, "dev_js is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "mdp.yml")

	cfg := Default()
	cfg.SrcDir = "docs"
	cfg.Directives = "docs/directives.conf"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mdp.yml")
	require.NoError(t, os.WriteFile(path, []byte("src_dir: content\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "content", cfg.SrcDir)
	assert.Equal(t, Default().BuildDir, cfg.BuildDir)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mdp.yml")
	require.NoError(t, os.WriteFile(path, []byte("src_dir: [unclosed\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadWithEnv_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadWithEnv(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("MDP_SRC_DIR", "content")
	t.Setenv("MDP_DIRECTIVES", "conf/directives.conf")
	t.Setenv("MDP_CSS", "")

	cfg := Default()
	cfg.LoadFromEnv()
	assert.Equal(t, "content", cfg.SrcDir)
	assert.Equal(t, "conf/directives.conf", cfg.Directives)
	// Empty env vars do not clear existing values.
	assert.Equal(t, Default().CSS, cfg.CSS)
}
