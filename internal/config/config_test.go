package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOpts() *Options {
	return &Options{
		URL:          "https://example.com/FUZZ",
		WordlistPath: "words.txt",
		Threads:      DefaultThreads,
		Timeout:      DefaultTimeout,
		OutputFormat: DefaultFormat,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr bool
	}{
		{"defaults", func(*Options) {}, false},
		{"missing url", func(o *Options) { o.URL = "" }, true},
		{"missing wordlist", func(o *Options) { o.WordlistPath = "" }, true},
		{"zero threads", func(o *Options) { o.Threads = 0 }, true},
		{"zero timeout", func(o *Options) { o.Timeout = 0 }, true},
		{"bad format", func(o *Options) { o.OutputFormat = "xml" }, true},
		{"bad sort", func(o *Options) { o.SortBy = "size" }, true},
		{"sort by url", func(o *Options) { o.SortBy = "url" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := validOpts()
			tt.mutate(o)
			err := o.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pather.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFileApply(t *testing.T) {
	path := writeConfig(t, `
threads: 42
timeout: 2s
match_codes: [200, 301]
filter_codes: [404]
output: results.txt
no_color: true
`)
	f, err := LoadFile(path)
	require.NoError(t, err)

	opts := validOpts()
	f.Apply(opts, func(string) bool { return false })

	assert.Equal(t, 42, opts.Threads)
	assert.Equal(t, 2*time.Second, opts.Timeout)
	assert.Equal(t, []int{200, 301}, opts.MatchCodes)
	assert.Equal(t, []int{404}, opts.FilterCodes)
	assert.Equal(t, "results.txt", opts.OutputFile)
	assert.True(t, opts.NoColor)
	assert.Equal(t, "https://example.com/FUZZ", opts.URL, "absent keys keep their value")
}

func TestApplyKeepsExplicitFlags(t *testing.T) {
	path := writeConfig(t, "threads: 42\nfilter_codes: [404]\n")
	f, err := LoadFile(path)
	require.NoError(t, err)

	opts := validOpts()
	opts.Threads = 3
	explicit := map[string]bool{"threads": true}
	f.Apply(opts, func(name string) bool { return explicit[name] })

	assert.Equal(t, 3, opts.Threads)
	assert.Equal(t, []int{404}, opts.FilterCodes)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadFile(writeConfig(t, "threads: [oops"))
	assert.Error(t, err)

	_, err = LoadFile(writeConfig(t, "timeout: soon"))
	assert.Error(t, err)
}
