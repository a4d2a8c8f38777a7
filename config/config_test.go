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

	assert.Equal(t, DefaultFiles, cfg.Files)
	assert.Equal(t, "texts", filepath.Base(cfg.DataDir))

	locs := cfg.Locations()
	require.Len(t, locs, 2)
	assert.Equal(t, filepath.Join(cfg.DataDir, "chigo-no-sorane.json"), locs[0])
	assert.Equal(t, filepath.Join(cfg.DataDir, "ebutsu-shi-ryoshu.json"), locs[1])
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "refmap.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: texts\nfiles:\n  - a.json\n  - /abs/b.json\n  - mem://localhost/c.json\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "texts"), cfg.DataDir)
	assert.Equal(t, []string{
		filepath.Join(dir, "texts", "a.json"),
		"/abs/b.json",
		"mem://localhost/c.json",
	}, cfg.Locations())
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "refmap.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: /srv/texts\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/texts", cfg.DataDir)
	assert.Equal(t, DefaultFiles, cfg.Files)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("files: [unclosed\n"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestLocationsURLDataDir(t *testing.T) {
	cfg := Config{DataDir: "s3://bucket/texts/", Files: []string{"a.json"}}
	assert.Equal(t, []string{"s3://bucket/texts/a.json"}, cfg.Locations())
}

func TestSetArgsResolvesAgainstWorkingDir(t *testing.T) {
	t.Chdir(t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)

	cfg := Config{DataDir: "/data/texts", Files: DefaultFiles}
	require.NoError(t, cfg.SetArgs([]string{"d.json", "/abs/e.json", "s3://bucket/f.json"}))

	assert.Equal(t, []string{
		filepath.Join(wd, "d.json"),
		"/abs/e.json",
		"s3://bucket/f.json",
	}, cfg.Locations())
}
