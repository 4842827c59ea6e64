package config

import (
	"errors"
	"fmt"
	"time"
)

// Defaults applied by the CLI and by LoadFile.
const (
	DefaultThreads = 10
	DefaultTimeout = 5 * time.Second
	DefaultFormat  = "text"
)

// Options holds all configuration for a pather run.
type Options struct {
	// Target
	URL          string // template containing FUZZ
	WordlistPath string

	// Performance
	Threads int
	Timeout time.Duration

	// Status filtering. FilterCodes is checked before MatchCodes.
	MatchCodes  []int
	FilterCodes []int

	// Output
	OutputFile   string // appended to, never truncated
	OutputFormat string // "text", "json", "csv"
	SortBy       string // "", "status", "url"
	Quiet        bool
	Verbose      bool
	NoColor      bool
	NoProgress   bool

	// HTTP
	UserAgent string

	// Hooks
	OnResultCmd string
}

// Validate checks the values the CLI cannot constrain by type alone.
func (o *Options) Validate() error {
	if o.URL == "" {
		return errors.New("target required: use -u")
	}
	if o.WordlistPath == "" {
		return errors.New("wordlist required: use -w")
	}
	if o.Threads < 1 {
		return fmt.Errorf("--threads must be positive, got %d", o.Threads)
	}
	if o.Timeout <= 0 {
		return fmt.Errorf("--timeout must be positive, got %s", o.Timeout)
	}
	switch o.OutputFormat {
	case "text", "json", "csv":
	default:
		return fmt.Errorf("--format must be one of: text, json, csv")
	}
	switch o.SortBy {
	case "", "status", "url":
	default:
		return fmt.Errorf("--sort must be one of: status, url")
	}
	return nil
}
