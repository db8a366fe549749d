package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, "adb", cfg.BridgePath)
	assert.Equal(t, "scrcpy", cfg.MirrorPath)
	assert.Equal(t, "WARN", cfg.LogLevel)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, time.Second, cfg.SuperviseInterval)
	assert.Empty(t, cfg.MirrorDir)
}

func TestReadFileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[bridge]
path = "/opt/platform-tools/adb"

[logging]
level = "debug"

[workers]
max = 8

[supervise]
interval = "250ms"
`), 0o600))
	t.Setenv("DROIDMIRROR_WORKERS_MAX", "2")
	t.Setenv("DROIDMIRROR_MIRROR_DIR", "/opt/scrcpy")

	v := New()
	require.NoError(t, ReadFile(v, path))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "/opt/platform-tools/adb", cfg.BridgePath)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 250*time.Millisecond, cfg.SuperviseInterval)
	assert.Equal(t, "/opt/scrcpy", cfg.MirrorDir)
}

func TestReadFileMissingDefaultIsIgnored(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	require.NoError(t, ReadFile(New(), ""))
}

func TestReadFileMissingExplicitPathFails(t *testing.T) {
	t.Parallel()

	err := ReadFile(New(), filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "read config file")
}

func TestLoadValidates(t *testing.T) {
	t.Parallel()

	v := New()
	v.Set(LogLevelKey, "verbose")
	v.Set(WorkersKey, 0)
	v.Set(SuperviseIntervalKey, "0s")

	_, err := Load(v)
	require.Error(t, err)
	assert.ErrorContains(t, err, "logging.level")
	assert.ErrorContains(t, err, "workers.max must be at least 1")
	assert.ErrorContains(t, err, "supervise.interval must be positive")
}

func TestConfigDirPrefersXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	assert.Equal(t, filepath.Join(dir, "droidmirror"), ConfigDir())
}

func writeExecutable(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755))
	return path
}

func TestResolveToolsDefaultsDirectories(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script executables")
	}
	t.Parallel()

	bridgeDir := t.TempDir()
	mirrorDir := t.TempDir()
	cfg := Config{
		BridgePath: writeExecutable(t, bridgeDir, "adb"),
		MirrorPath: writeExecutable(t, mirrorDir, "scrcpy"),
	}

	tools, err := cfg.ResolveTools()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(bridgeDir, "adb"), tools.BridgePath)
	assert.Equal(t, mirrorDir, tools.MirrorDir)
	assert.Equal(t, bridgeDir, tools.PathPrepend)
}

func TestResolveToolsMissingExecutable(t *testing.T) {
	t.Parallel()

	cfg := Config{BridgePath: filepath.Join(t.TempDir(), "adb"), MirrorPath: "scrcpy"}

	_, err := cfg.ResolveTools()
	require.Error(t, err)
	assert.ErrorContains(t, err, "bridge tool not found")
}

func TestResolveToolsRejectsMissingMirrorDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script executables")
	}
	t.Parallel()

	dir := t.TempDir()
	cfg := Config{
		BridgePath: writeExecutable(t, dir, "adb"),
		MirrorPath: writeExecutable(t, dir, "scrcpy"),
		MirrorDir:  filepath.Join(dir, "missing"),
	}

	_, err := cfg.ResolveTools()
	require.Error(t, err)
	assert.ErrorContains(t, err, "mirror.dir")
}
