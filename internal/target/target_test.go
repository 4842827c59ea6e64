package target

import (
	"errors"
	"strings"
	"testing"
)

func mustNew(t *testing.T, raw string) Template {
	t.Helper()
	tmpl, err := New(raw)
	if err != nil {
		t.Fatalf("New(%q): %v", raw, err)
	}
	return tmpl
}

func TestNewRequiresPlaceholder(t *testing.T) {
	_, err := New("https://example.com/admin")
	if !errors.Is(err, ErrNoPlaceholder) {
		t.Fatalf("expected ErrNoPlaceholder, got %v", err)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"no scheme", "example.com/FUZZ", "https://example.com/FUZZ"},
		{"no scheme trailing slash", "FUZZ.example.com/", "https://FUZZ.example.com"},
		{"http kept", "http://example.com/FUZZ/", "http://example.com/FUZZ/"},
		{"https kept", "https://example.com/FUZZ", "https://example.com/FUZZ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.raw); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name     string
		template string
		word     string
		want     string
	}{
		{"plain path", "https://example.com/FUZZ", "admin", "https://example.com/admin"},
		{"plain subdomain", "https://FUZZ.example.com", "dev", "https://dev.example.com"},
		{"empty word", "https://example.com/FUZZ", "", "https://example.com/"},
		{"no stripping without slash", "https://example.com/FUZZ/", "admin", "https://example.com/admin/"},
		{"host and path", "https://FUZZ.example.com", "admin/login", "https://admin.example.com/login"},
		{"trailing slash collapsed", "https://FUZZ.example.com/", "admin/login", "https://admin.example.com/login"},
		{"split at first slash", "https://FUZZ.example.com", "a/b/c", "https://a.example.com/b/c"},
		{"empty path segment", "https://FUZZ.example.com", "api/", "https://api.example.com/"},
		{"every placeholder replaced", "https://FUZZ.example.com/FUZZ", "x", "https://x.example.com/x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustNew(t, tt.template).Build(tt.word)
			if got != tt.want {
				t.Errorf("Build(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestBuildWithoutSlashIsVerbatimReplace(t *testing.T) {
	tmpl := mustNew(t, "https://example.com/api/FUZZ?x=1")
	for _, word := range []string{"users", "v1.json", "a b", "%2e%2e"} {
		want := strings.ReplaceAll("https://example.com/api/FUZZ?x=1", Placeholder, word)
		if got := tmpl.Build(word); got != want {
			t.Errorf("Build(%q) = %q, want %q", word, got, want)
		}
	}
}
