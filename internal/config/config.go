// Package config loads the optional mdtok YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"pkt.systems/mdtok"
)

// FileName is the configuration file looked up in the working directory and
// the user config directory.
const FileName = "mdtok.yaml"

// DefaultYAML documents every key with its default value.
const DefaultYAML = `# mdtok configuration
version: 1

# Built-in theme for ansi output (see mdtok --list-themes).
theme: default

# Wrap width; 0 uses the terminal width.
width: 0

# Output format: auto, ansi, plain, html or tokens.
format: auto

# Recognise '#' heading lines.
headings: true

# Extra delimiter families, added after the built-in ones.
# tags:
#   - name: mark
#     delimiter: "=="
#     element: mark
#     style: mark
`

// ErrUnsupportedVersion reports a configuration file written for another version.
var ErrUnsupportedVersion = errors.New("unsupported config version")

// Config models mdtok.yaml.
type Config struct {
	Version  int            `yaml:"version"`
	Theme    string         `yaml:"theme"`
	Width    int            `yaml:"width"`
	Format   string         `yaml:"format"`
	Headings *bool          `yaml:"headings"`
	Tags     []mdtok.TagDef `yaml:"tags"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	headings := true
	return Config{Version: 1, Theme: "default", Format: "auto", Headings: &headings}
}

// Load reads path. An empty path searches FileName in the working directory
// and then in the user config directory; a missing file yields Default.
func Load(path string) (Config, error) {
	explicit := strings.TrimSpace(path) != ""
	candidates := []string{path}
	if !explicit {
		candidates = searchPaths()
	}
	for _, candidate := range candidates {
		data, err := os.ReadFile(candidate)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && !explicit {
				continue
			}
			return Config{}, fmt.Errorf("read config %s: %w", candidate, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config %s: %w", candidate, err)
		}
		return cfg, nil
	}
	return Default(), nil
}

// Parse decodes YAML over the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if cfg.Version != 1 {
		return Config{}, fmt.Errorf("version %d: %w", cfg.Version, ErrUnsupportedVersion)
	}
	if cfg.Headings == nil {
		headings := true
		cfg.Headings = &headings
	}
	return cfg, nil
}

// TagSet returns the built-in families followed by the configured ones.
func (c Config) TagSet() (*mdtok.TagSet, error) {
	if len(c.Tags) == 0 {
		return mdtok.DefaultTagSet(), nil
	}
	defs := append(mdtok.DefaultTagDefs(), c.Tags...)
	return mdtok.NewTagSet(defs...)
}

// HeadingsEnabled reports whether heading lines are recognised.
func (c Config) HeadingsEnabled() bool {
	return c.Headings == nil || *c.Headings
}

func searchPaths() []string {
	paths := []string{FileName}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "mdtok", FileName))
	}
	return paths
}
