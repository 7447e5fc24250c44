// Package config loads the iconbake command configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/gogpu/iconbake"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked up in the working directory.
const DefaultPath = "iconbake.yaml"

// DefaultProfile is the profile used when the file does not name one. It
// is the threshold-200, full-canvas encoding the renderer shipped with.
const DefaultProfile = "simple"

// Icon is one table entry as written in the configuration file.
type Icon struct {
	Name        string `yaml:"name"`
	File        string `yaml:"file"`
	ContentSize int    `yaml:"content_size,omitempty"` // default icon_size
}

// Config holds the command configuration.
type Config struct {
	Profile  string `yaml:"profile"`
	Backend  string `yaml:"backend,omitempty"` // default "xdraw"
	IconDir  string `yaml:"icon_dir"`
	Fallback string `yaml:"fallback"`
	Output   string `yaml:"output"`
	Header   string `yaml:"header,omitempty"` // empty: no header written
	IconSize int    `yaml:"icon_size,omitempty"`
	Workers  int    `yaml:"workers,omitempty"` // default 1; negative: GOMAXPROCS
	Verbose  bool   `yaml:"verbose,omitempty"`

	// Icons replaces the built-in table when non-empty.
	Icons []Icon `yaml:"icons,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads the configuration at path. A missing file yields Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML configuration and fills in defaults. Unknown keys
// are rejected.
func Parse(data []byte) (*Config, error) {
	c := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	c.applyDefaults()
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Profile == "" {
		c.Profile = DefaultProfile
	}
	if c.IconDir == "" {
		c.IconDir = iconbake.DefaultIconDir
	}
	if c.Fallback == "" {
		c.Fallback = iconbake.DefaultFallback
	}
	if c.Output == "" {
		c.Output = iconbake.DefaultOutput
	}
	if c.IconSize == 0 {
		c.IconSize = iconbake.IconSize
	}
	if c.Workers == 0 {
		c.Workers = 1
	}
	for i := range c.Icons {
		if c.Icons[i].ContentSize == 0 {
			c.Icons[i].ContentSize = c.IconSize
		}
	}
}

// Table returns the icon table: the configured icons when present, the
// built-in table otherwise.
func (c *Config) Table() iconbake.Table {
	if len(c.Icons) == 0 {
		return iconbake.DefaultTable()
	}
	t := make(iconbake.Table, 0, len(c.Icons))
	for _, ic := range c.Icons {
		t = append(t, iconbake.IconSpec{
			ID:          iconbake.Label(ic.Name),
			File:        ic.File,
			ContentSize: ic.ContentSize,
		})
	}
	return t
}

// Options converts the configuration into Baker options. imaging may be nil
// for the built-in backend.
func (c *Config) Options(imaging iconbake.Imaging) ([]iconbake.Option, error) {
	profile, err := iconbake.ProfileByName(c.Profile)
	if err != nil {
		return nil, err
	}
	opts := []iconbake.Option{
		iconbake.WithProfile(profile),
		iconbake.WithIconDir(c.IconDir),
		iconbake.WithFallback(c.Fallback),
		iconbake.WithIconSize(c.IconSize),
		iconbake.WithTable(c.Table()),
		iconbake.WithWorkers(c.Workers),
	}
	if imaging != nil {
		opts = append(opts, iconbake.WithImaging(imaging))
	}
	return opts, nil
}
