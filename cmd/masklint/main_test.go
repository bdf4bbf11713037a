package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/masklint/internal/config"
)

func TestVersionFlag(t *testing.T) {
	a := &app{cfg: config.DefaultConfig()}
	cmd := newRootCmd(a)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "masklint "+version)
	assert.Zero(t, a.status)
}

func TestHelpUsesCustomUsage(t *testing.T) {
	a := &app{cfg: config.DefaultConfig()}
	cmd := newRootCmd(a)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--help"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "masklint [OPTIONS] <input>")
	assert.Contains(t, out.String(), "--images")
}

func TestConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "masklint.yaml")
	require.NoError(t, os.WriteFile(file, []byte("jobs: 3\nstrict: true\nimages: /from/file\n"), 0o644))
	t.Setenv("MASKLINT_JOBS", "5")

	cfg, err := loadWith(t, "--config", file, dir)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Jobs, "environment overrides the file")
	assert.True(t, cfg.Strict, "file value kept when nothing overrides it")
	assert.Equal(t, "/from/file", cfg.ImagesDir)
	assert.Equal(t, dir, cfg.InputDir)

	cfg, err = loadWith(t, "--config", file, "-j", "7", dir)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Jobs, "flags override the environment")
}

func TestConfigFileFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "masklint.yaml")
	require.NoError(t, os.WriteFile(file, []byte("verbose: true\n"), 0o644))
	t.Setenv("MASKLINT_CONFIG", file)

	cfg, err := loadWith(t, dir)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, file, cfg.ConfigFile)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := loadWith(t)
	assert.ErrorContains(t, err, "need exactly one input directory")

	_, err = loadWith(t, "a", "b")
	assert.Error(t, err)

	_, err = loadWith(t, "-j", "0", "a")
	assert.ErrorContains(t, err, "jobs must be a positive integer")

	_, err = loadWith(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "a")
	assert.Error(t, err)

	cfg, err := loadWith(t, "--check")
	require.NoError(t, err, "check mode needs no input directory")
	assert.True(t, cfg.CheckOnly)
}

func TestExecute_StrictExitStatus(t *testing.T) {
	root := t.TempDir()
	item := filepath.Join(root, "A")
	require.NoError(t, os.Mkdir(item, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(item, "broken.png"), []byte("not an image"), 0o644))

	cfg := config.DefaultConfig()
	cfg.InputDir = root
	cfg.ColorMode = config.ColorNever
	assert.Equal(t, 0, execute(context.Background(), &cfg), "diagnostics alone do not fail the run")

	cfg.Strict = true
	assert.Equal(t, 1, execute(context.Background(), &cfg))
}

func TestExecute_MissingInput(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.InputDir = filepath.Join(t.TempDir(), "nope")
	cfg.ColorMode = config.ColorNever
	assert.Equal(t, 1, execute(context.Background(), &cfg))
}

// loadWith parses args against a fresh root command and layers config
// without executing a lint run.
func loadWith(t *testing.T, args ...string) (config.Config, error) {
	t.Helper()
	a := &app{cfg: config.DefaultConfig()}
	cmd := newRootCmd(a)
	require.NoError(t, cmd.ParseFlags(args))
	err := loadConfig(cmd, a.flags, &a.cfg, cmd.Flags().Args())
	return a.cfg, err
}
