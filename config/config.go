// Package config resolves the data directory and the documents a run
// rewrites.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFiles are the texts rewritten when nothing else is configured.
var DefaultFiles = []string{
	"chigo-no-sorane.json",
	"ebutsu-shi-ryoshu.json",
}

type Config struct {
	// DataDir is the directory relative file entries resolve against.
	DataDir string `yaml:"data_dir"`

	// Files are document paths or URLs, relative to DataDir unless absolute.
	Files []string `yaml:"files"`
}

// Default returns the built-in configuration: the default files in the
// texts directory next to the executable.
func Default() Config {
	files := make([]string, len(DefaultFiles))
	copy(files, DefaultFiles)

	return Config{
		DataDir: DefaultDataDir(),
		Files:   files,
	}
}

// DefaultDataDir returns <executable dir>/../app/data/texts.
func DefaultDataDir() string {
	dir := "."
	if exe, err := os.Executable(); err == nil {
		dir = filepath.Dir(exe)
	}
	return filepath.Join(dir, "..", "app", "data", "texts")
}

// Load reads a YAML configuration file. Keys missing from the file keep
// their default value.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	// A relative data_dir is relative to the config file.
	if cfg.DataDir != "" && !filepath.IsAbs(cfg.DataDir) && !isURL(cfg.DataDir) {
		cfg.DataDir = filepath.Join(filepath.Dir(path), cfg.DataDir)
	}

	return cfg, nil
}

// Locations returns the document locations of the run in order.
func (c Config) Locations() []string {
	locs := make([]string, 0, len(c.Files))
	for _, f := range c.Files {
		switch {
		case isURL(f), filepath.IsAbs(f):
			locs = append(locs, f)
		case isURL(c.DataDir):
			locs = append(locs, strings.TrimSuffix(c.DataDir, "/")+"/"+f)
		default:
			locs = append(locs, filepath.Join(c.DataDir, f))
		}
	}
	return locs
}

// SetArgs replaces the file list with command line arguments. Relative paths
// are made absolute against the working directory, so they do not resolve
// against DataDir.
func (c *Config) SetArgs(args []string) error {
	files := make([]string, 0, len(args))
	for _, a := range args {
		if isURL(a) || filepath.IsAbs(a) {
			files = append(files, a)
			continue
		}
		abs, err := filepath.Abs(a)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", a, err)
		}
		files = append(files, abs)
	}
	c.Files = files
	return nil
}

func isURL(s string) bool {
	return strings.Contains(s, "://")
}
