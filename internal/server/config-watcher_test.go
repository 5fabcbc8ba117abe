package server

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/VKCOM/cxxflags/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigWatcher_Reload(t *testing.T) {
	confPath := filepath.Join(t.TempDir(), "cxxflags.yml")
	require.NoError(t, os.WriteFile(confPath, []byte("base_dir: /srv/one\n"), 0644))

	reloaded := make(chan *config.Config, 4)
	failed := make(chan error, 4)
	w, err := MakeConfigWatcher(confPath, 20*time.Millisecond,
		func(cfg *config.Config) { reloaded <- cfg },
		func(err error) { failed <- err })
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx)
	}()
	defer func() {
		cancel()
		assert.NoError(t, <-done)
	}()

	// Run() adds the watch asynchronously, give it a moment
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(confPath, []byte("base_dir: /srv/two\nextra_flags: [\"-DTWO\"]\n"), 0644))
	select {
	case cfg := <-reloaded:
		assert.Equal(t, "/srv/two", cfg.BaseDir)
		assert.Equal(t, []string{"-DTWO"}, cfg.ExtraFlags)
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded")
	}

	require.NoError(t, os.WriteFile(confPath, []byte("base_dir: relative\n"), 0644))
	select {
	case err := <-failed:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("invalid config was not reported")
	}
}

func TestConfigWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	confPath := filepath.Join(dir, "cxxflags.yml")
	require.NoError(t, os.WriteFile(confPath, []byte("{}\n"), 0644))

	reloaded := make(chan *config.Config, 4)
	w, err := MakeConfigWatcher(confPath, 20*time.Millisecond,
		func(cfg *config.Config) { reloaded <- cfg },
		func(err error) {})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644))
	select {
	case <-reloaded:
		t.Fatal("reloaded on unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}
