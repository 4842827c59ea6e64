// Package target turns a URL template and a word into the concrete URL to probe.
package target

import (
	"errors"
	"strings"
)

// Placeholder is the token substituted with each wordlist entry.
const Placeholder = "FUZZ"

// ErrNoPlaceholder is returned when a URL template lacks the placeholder.
var ErrNoPlaceholder = errors.New("the URL must contain the string " + Placeholder)

// Template is a normalized URL containing the placeholder.
type Template struct {
	raw string
}

// New validates raw and returns its normalized template. The placeholder is
// checked before normalization so the error reports what the user typed.
func New(raw string) (Template, error) {
	if !strings.Contains(raw, Placeholder) {
		return Template{}, ErrNoPlaceholder
	}
	return Template{raw: Normalize(raw)}, nil
}

// Normalize prefixes https:// to a URL that has no scheme, dropping trailing
// slashes first. URLs that already carry a scheme are returned unchanged.
func Normalize(raw string) string {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "https://" + strings.TrimRight(raw, "/")
}

// Build substitutes word into the template. A word of the form "host/path"
// is split at its first slash: host replaces the placeholder and path is
// appended after exactly one slash.
func (t Template) Build(word string) string {
	host, path, found := strings.Cut(word, "/")
	if !found {
		return strings.ReplaceAll(t.raw, Placeholder, word)
	}
	base := strings.TrimRight(strings.ReplaceAll(t.raw, Placeholder, host), "/")
	return base + "/" + path
}

func (t Template) String() string { return t.raw }
