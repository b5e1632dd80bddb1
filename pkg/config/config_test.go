package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pkgsnap.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "text", cfg.Format)
	assert.False(t, cfg.Compress)
	assert.False(t, cfg.Detailed)
	assert.Equal(t, 30, cfg.Timeout)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingOrEmptyPath(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"empty path", ""},
		{"nonexistent file", filepath.Join(t.TempDir(), "absent.yaml")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.path)
			require.NoError(t, err)
			assert.Equal(t, Default(), cfg)
		})
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "format: json\ncompress: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Format)
	assert.True(t, cfg.Compress)
	assert.Equal(t, 30, cfg.Timeout, "unset keys keep their defaults")
	assert.Equal(t, "INFO", cfg.LogLevel)
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `format: json
compress: true
detailed: true
timeout: 45
output_dir: /var/lib/pkgsnap
log_level: DEBUG
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, Config{
		Format:    "json",
		Compress:  true,
		Detailed:  true,
		Timeout:   45,
		OutputDir: "/var/lib/pkgsnap",
		LogLevel:  "DEBUG",
	}, cfg)
	assert.Equal(t, 45*time.Second, cfg.TimeoutDuration())
}

func TestLoad_Malformed(t *testing.T) {
	path := writeConfig(t, "format: [this is\nnot yaml\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_ZeroTimeoutFallsBack(t *testing.T) {
	path := writeConfig(t, "timeout: 0\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Timeout, cfg.Timeout, "zero means the default, not a rejection")
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"unsupported format", "format: yaml\n"},
		{"negative timeout", "timeout: -5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.contents)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Format = "json"
	cfg.Timeout = 60

	buf, err := cfg.Marshal()
	require.NoError(t, err)

	got, err := Load(writeConfig(t, string(buf)))
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
