// Package config holds the run settings for the review word-count tool.
package config

import (
	"github.com/walteh/reviewwc/pkg/discover"
	"github.com/walteh/reviewwc/pkg/review"
	"gitlab.com/tozd/go/errors"
)

// Config controls a single batch run. Every field has a working
// default, so an absent config file is a normal way to run the tool.
type Config struct {
	// Directory is the root directory scanned for review files. The
	// CLI's positional argument overrides it.
	Directory string `json:"directory,omitempty" yaml:"directory,omitempty" hcl:"directory,optional"`

	// Pattern is the file name glob matched against direct children of
	// Directory.
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty" hcl:"pattern,optional"`

	// TextField is the record field the word count is derived from.
	TextField string `json:"text_field,omitempty" yaml:"text_field,omitempty" hcl:"text_field,optional"`

	// CountField is the record field the word count is written to.
	CountField string `json:"count_field,omitempty" yaml:"count_field,omitempty" hcl:"count_field,optional"`

	// Indent is the output indent width in spaces. Zero is treated as
	// unset and falls back to the default of 2.
	Indent int `json:"indent,omitempty" yaml:"indent,omitempty" hcl:"indent,optional"`

	// Strict makes the process exit non-zero when any file fails.
	// Default is the tolerant batch behavior: failures are reported
	// but the run still exits zero.
	Strict bool `json:"strict,omitempty" yaml:"strict,omitempty" hcl:"strict,optional"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Directory:  "data",
		Pattern:    discover.DefaultPattern,
		TextField:  review.DefaultTextField,
		CountField: review.DefaultCountField,
		Indent:     2,
	}
}

// applyDefaults fills zero-valued fields with their defaults.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Directory == "" {
		c.Directory = def.Directory
	}
	if c.Pattern == "" {
		c.Pattern = def.Pattern
	}
	if c.TextField == "" {
		c.TextField = def.TextField
	}
	if c.CountField == "" {
		c.CountField = def.CountField
	}
	if c.Indent == 0 {
		c.Indent = def.Indent
	}
}

// Validate checks the configuration for values the pipeline cannot run
// with.
func (c *Config) Validate() error {
	if c.Directory == "" {
		return errors.New("directory is required")
	}
	if c.Pattern == "" {
		return errors.New("pattern is required")
	}
	if c.TextField == "" {
		return errors.New("text_field is required")
	}
	if c.CountField == "" {
		return errors.New("count_field is required")
	}
	if c.Indent < 0 {
		return errors.Errorf("indent must be non-negative, got %d", c.Indent)
	}
	return nil
}
