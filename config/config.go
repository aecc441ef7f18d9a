// Package config carries the event settings shared by the iscol commands:
// what the conference is called, when and where it runs, and which poster
// sessions its program has. Settings layer in order: built-in defaults,
// then an optional YAML file, then ISCOL_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config is the full toolkit configuration.
type Config struct {
	Event Event `yaml:"event" envconfig:"EVENT"`
	// Session times contain colons, which the envconfig map syntax cannot
	// express, so sessions are file-only.
	Sessions map[int]string `yaml:"sessions" ignored:"true"`
	Output   Output         `yaml:"output" envconfig:"OUTPUT"`
}

// Event identifies the conference edition being organized.
type Event struct {
	Name  string `yaml:"name" envconfig:"NAME"`
	Date  string `yaml:"date" envconfig:"DATE"`
	Venue string `yaml:"venue" envconfig:"VENUE"`
	URL   string `yaml:"url" envconfig:"URL"`
}

// Output controls where generated files land.
type Output struct {
	Dir string `yaml:"dir" envconfig:"DIR"`
}

// Default returns the ISCOL 2025 settings.
func Default() *Config {
	return &Config{
		Event: Event{
			Name:  "ISCOL 2025",
			Date:  "December 18th, 2025",
			Venue: "Bar-Ilan University",
			URL:   "https://iscol-meeting.github.io/iscol2025/",
		},
		Sessions: map[int]string{
			1: "10:15 - 11:15",
			2: "13:45 - 14:45",
			3: "16:40 - 17:40",
		},
		Output: Output{Dir: "."},
	}
}

// Load builds the configuration. An empty path skips the file layer;
// a named file must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		file, err := loadFromFile(path)
		if err != nil {
			return nil, err
		}
		merge(cfg, file)
	}

	if err := envconfig.Process("ISCOL", cfg); err != nil {
		return nil, fmt.Errorf("reading ISCOL environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFromFile(path string) (Config, error) {
	var file Config

	data, err := os.ReadFile(path)
	if err != nil {
		return file, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return file, fmt.Errorf("parsing %s: %w", path, err)
	}
	return file, nil
}

// merge applies the fields the file actually set over the defaults. A
// sessions mapping replaces the default program wholesale.
func merge(base *Config, file Config) {
	if file.Event.Name != "" {
		base.Event.Name = file.Event.Name
	}
	if file.Event.Date != "" {
		base.Event.Date = file.Event.Date
	}
	if file.Event.Venue != "" {
		base.Event.Venue = file.Event.Venue
	}
	if file.Event.URL != "" {
		base.Event.URL = file.Event.URL
	}
	if file.Sessions != nil {
		base.Sessions = file.Sessions
	}
	if file.Output.Dir != "" {
		base.Output.Dir = file.Output.Dir
	}
}

// Validate checks for settings the commands cannot work with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Event.Name) == "" {
		return fmt.Errorf("event name is required")
	}
	for id := range c.Sessions {
		if id < 1 {
			return fmt.Errorf("session ID %d: must be positive", id)
		}
	}
	return nil
}

// PageURL resolves a page name against the event site URL.
func (c *Config) PageURL(page string) string {
	return strings.TrimSuffix(c.Event.URL, "/") + "/" + page
}
