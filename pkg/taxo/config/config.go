// Package config loads the tool's YAML configuration and constructs
// components from it.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/contentops/taxo/pkg/taxo/advise"
	"github.com/contentops/taxo/pkg/taxo/canon"
)

// Thresholds mirrors advise.Thresholds in the config file.
type Thresholds struct {
	MinCategoryDocs int64 `yaml:"min_category_docs"`
	SingleUseCount  int64 `yaml:"single_use_count"`
}

// Config represents the tool configuration.
type Config struct {
	ContentDir string            `yaml:"content_dir"`
	ReportsDir string            `yaml:"reports_dir"`
	HistoryDB  string            `yaml:"history_db"`
	Categories map[string]string `yaml:"categories"`
	Tags       map[string]string `yaml:"tags"`
	Thresholds Thresholds        `yaml:"thresholds"`
}

// Default returns the built-in configuration: the blog's curated tables and
// conventional paths.
func Default() Config {
	return Config{
		ContentDir: "content/blog",
		ReportsDir: "reports",
		HistoryDB:  "reports/history.db",
		Categories: canon.DefaultCategories(),
		Tags:       canon.DefaultTags(),
	}
}

// Load reads a config file. Fields left out fall back to defaults, so a
// config file can override just the tables or just the paths. A table given
// in the file replaces the default table rather than merging into it.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	if file.ContentDir != "" {
		cfg.ContentDir = file.ContentDir
	}
	if file.ReportsDir != "" {
		cfg.ReportsDir = file.ReportsDir
	}
	if file.HistoryDB != "" {
		cfg.HistoryDB = file.HistoryDB
	}
	if len(file.Categories) > 0 {
		cfg.Categories = file.Categories
	}
	if len(file.Tags) > 0 {
		cfg.Tags = file.Tags
	}
	cfg.Thresholds = file.Thresholds
	return cfg, nil
}

// ApplyEnv overrides paths from the environment (TAXO_CONTENT_DIR,
// TAXO_REPORTS_DIR, TAXO_HISTORY_DB).
func (c *Config) ApplyEnv() {
	if v := os.Getenv("TAXO_CONTENT_DIR"); v != "" {
		c.ContentDir = v
	}
	if v := os.Getenv("TAXO_REPORTS_DIR"); v != "" {
		c.ReportsDir = v
	}
	if v := os.Getenv("TAXO_HISTORY_DB"); v != "" {
		c.HistoryDB = v
	}
}

// Components holds the constructed analysis components.
type Components struct {
	Categories *canon.Table
	Tags       *canon.Table
	Generator  *advise.Generator
}

// Build constructs components from the configuration.
func (c Config) Build() *Components {
	categories := canon.New(c.Categories)
	tags := canon.New(c.Tags)
	return &Components{
		Categories: categories,
		Tags:       tags,
		Generator: &advise.Generator{
			Categories: categories,
			Tags:       tags,
			Thresholds: advise.Thresholds{
				MinCategoryDocs: c.Thresholds.MinCategoryDocs,
				SingleUseCount:  c.Thresholds.SingleUseCount,
			},
		},
	}
}
