// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"taxfilter/internal/cli"
)

// File is the optional YAML config shape. Pointer fields distinguish "not
// set" from zero values so flags keep their defaults when the file is silent.
type File struct {
	MinRatio      *float64 `yaml:"min_ratio"`
	AncestryLevel *int     `yaml:"ancestry_level"`
	Threads       *int     `yaml:"threads"`
	TaxonomyURL   string   `yaml:"taxonomy_url"`
	TaxonomyDump  string   `yaml:"taxonomy_dump"`
	Output        string   `yaml:"output"`
}

// Load reads and parses a YAML config file.
func Load(path string) (File, error) {
	var f File
	b, err := os.ReadFile(path)
	if err != nil {
		return f, err
	}
	if err := yaml.Unmarshal(b, &f); err != nil {
		return f, fmt.Errorf("config %s: %w", path, err)
	}
	return f, nil
}

// Apply fills opt from f for every parameter the user did not set on the
// command line. Explicit flags always win over the file.
func (f File) Apply(opt *cli.Options) {
	set := opt.Explicit
	if f.MinRatio != nil && !set["min-ratio"] {
		opt.MinRatio = *f.MinRatio
	}
	if f.AncestryLevel != nil && !set["ancestry-level"] {
		opt.AncestryLevel = *f.AncestryLevel
	}
	if f.Threads != nil && !set["threads"] {
		opt.Threads = *f.Threads
	}
	if f.TaxonomyURL != "" && !set["taxonomy-url"] && opt.TaxonomyDump == "" {
		opt.TaxonomyURL = f.TaxonomyURL
	}
	if f.TaxonomyDump != "" && !set["taxonomy-dump"] && opt.TaxonomyURL == "" {
		opt.TaxonomyDump = f.TaxonomyDump
	}
	if f.Output != "" && !set["output"] {
		opt.Output = f.Output
	}
}
