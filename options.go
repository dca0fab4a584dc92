package lablens

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/uzii9/lablens/ocr"
)

// ParseOptions holds configuration for a parse run.
type ParseOptions struct {
	// Page budget; 0 means the rendering backend's own cap.
	maxPages int

	// Rendering backend name ("mupdf" or "poppler"); empty means default.
	renderer string

	// OCR engine settings.
	ocrConfig ocr.Config

	// Logger for pipeline diagnostics; stdout is reserved for the JSON
	// result, so loggers should write to stderr.
	logger *slog.Logger
}

// defaultParseOptions returns the default parse options.
func defaultParseOptions() ParseOptions {
	return ParseOptions{
		maxPages:  0,
		renderer:  "",
		ocrConfig: ocr.DefaultConfig(),
		logger:    nil, // resolved to slog.Default() at use
	}
}

// clone creates a copy of ParseOptions.
func (o ParseOptions) clone() ParseOptions {
	return ParseOptions{
		maxPages:  o.maxPages,
		renderer:  o.renderer,
		ocrConfig: o.ocrConfig,
		logger:    o.logger,
	}
}

func (o ParseOptions) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return slog.Default()
}

// FileConfig is the optional YAML configuration accepted by the CLI. Only
// fields present in the file override the defaults.
type FileConfig struct {
	Language  string `yaml:"language"`
	MaxPages  int    `yaml:"max_pages"`
	Renderer  string `yaml:"renderer"`
	Whitelist string `yaml:"whitelist"`
}

// LoadFileConfig reads a YAML configuration file.
func LoadFileConfig(path string) (FileConfig, error) {
	var cfg FileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c FileConfig) apply(o ParseOptions) ParseOptions {
	if c.Language != "" {
		o.ocrConfig.Language = c.Language
	}
	if c.MaxPages > 0 {
		o.maxPages = c.MaxPages
	}
	if c.Renderer != "" {
		o.renderer = c.Renderer
	}
	if c.Whitelist != "" {
		o.ocrConfig.Whitelist = c.Whitelist
	}
	return o
}
