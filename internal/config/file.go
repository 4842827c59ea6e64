package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// File is the YAML config file layout. Every key is optional; keys that are
// present override the built-in defaults but not flags given on the command
// line.
type File struct {
	URL         string `yaml:"url"`
	Wordlist    string `yaml:"wordlist"`
	Threads     int    `yaml:"threads"`
	Timeout     string `yaml:"timeout"`
	MatchCodes  []int  `yaml:"match_codes"`
	FilterCodes []int  `yaml:"filter_codes"`
	Output      string `yaml:"output"`
	Format      string `yaml:"format"`
	Sort        string `yaml:"sort"`
	UserAgent   string `yaml:"user_agent"`
	OnResult    string `yaml:"on_result"`
	NoColor     *bool  `yaml:"no_color"`
	Quiet       *bool  `yaml:"quiet"`
}

// LoadFile parses the YAML config file at path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if f.Timeout != "" {
		if _, err := time.ParseDuration(f.Timeout); err != nil {
			return nil, fmt.Errorf("parsing config file %s: timeout: %w", path, err)
		}
	}
	return &f, nil
}

// Apply copies file values into opts. isSet reports whether a flag was given
// explicitly on the command line; such values are left untouched.
func (f *File) Apply(opts *Options, isSet func(flag string) bool) {
	setString := func(flag string, dst *string, v string) {
		if v != "" && !isSet(flag) {
			*dst = v
		}
	}
	setString("url", &opts.URL, f.URL)
	setString("wordlist", &opts.WordlistPath, f.Wordlist)
	setString("output", &opts.OutputFile, f.Output)
	setString("format", &opts.OutputFormat, f.Format)
	setString("sort", &opts.SortBy, f.Sort)
	setString("user-agent", &opts.UserAgent, f.UserAgent)
	setString("on-result", &opts.OnResultCmd, f.OnResult)

	if f.Threads > 0 && !isSet("threads") {
		opts.Threads = f.Threads
	}
	if f.Timeout != "" && !isSet("timeout") {
		// Validated by LoadFile.
		opts.Timeout, _ = time.ParseDuration(f.Timeout)
	}
	if len(f.MatchCodes) > 0 && !isSet("match-code") {
		opts.MatchCodes = f.MatchCodes
	}
	if len(f.FilterCodes) > 0 && !isSet("filter-code") {
		opts.FilterCodes = f.FilterCodes
	}
	if f.NoColor != nil && !isSet("no-color") {
		opts.NoColor = *f.NoColor
	}
	if f.Quiet != nil && !isSet("quiet") {
		opts.Quiet = *f.Quiet
	}
}
