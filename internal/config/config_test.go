package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
listen: 127.0.0.1:5000
unix_socket: /tmp/cxxflags.sock
base_dir: /home/user/project
extra_flags:
  - "-DFOO"
  - "-iquote"
  - src
log:
  filename: /tmp/cxxflags.log
  verbosity: 2
`))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:5000", cfg.Listen)
	assert.Equal(t, "/tmp/cxxflags.sock", cfg.UnixSocket)
	assert.Equal(t, "/home/user/project", cfg.BaseDir)
	assert.Equal(t, []string{"-DFOO", "-iquote", "src"}, cfg.ExtraFlags)
	assert.Equal(t, "/tmp/cxxflags.log", cfg.Log.Filename)
	assert.Equal(t, int64(2), cfg.Log.Verbosity)
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("extra_flags: [\"-DBAR\"]\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultListenAddr, cfg.Listen)
	assert.Equal(t, "", cfg.BaseDir)
	require.NotNil(t, cfg.Log)
	assert.Equal(t, int64(0), cfg.Log.Verbosity)
	assert.Equal(t, "/from/caller", cfg.BaseDirOr("/from/caller"))
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"relative base dir", "base_dir: project\n"},
		{"verbosity too high", "log:\n  verbosity: 3\n"},
		{"empty extra flag", "extra_flags: [\"-DFOO\", \"\"]\n"},
		{"mapping instead of list", "extra_flags: {a: b}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.contents))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	confPath := filepath.Join(t.TempDir(), "cxxflags.yml")
	require.NoError(t, os.WriteFile(confPath, []byte("base_dir: /srv/project\n"), 0644))

	cfg, err := LoadConfig(confPath)
	require.NoError(t, err)
	assert.Equal(t, "/srv/project", cfg.BaseDirOr("/other"))

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
