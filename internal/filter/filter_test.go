package filter

import (
	"testing"

	"github.com/maxvaer/pather/internal/scanner"
)

func TestStatusMatch(t *testing.T) {
	f := NewStatusMatch([]int{200, 301})

	if f.ShouldFilter(&scanner.Outcome{StatusCode: 200}) {
		t.Error("200 should pass match filter")
	}
	if !f.ShouldFilter(&scanner.Outcome{StatusCode: 404}) {
		t.Error("404 should be filtered by match filter")
	}
}

func TestStatusExclude(t *testing.T) {
	f := NewStatusExclude([]int{404, 500})

	if f.ShouldFilter(&scanner.Outcome{StatusCode: 200}) {
		t.Error("200 should pass exclude filter")
	}
	if !f.ShouldFilter(&scanner.Outcome{StatusCode: 404}) {
		t.Error("404 should be filtered by exclude filter")
	}
}

func TestStatusChain(t *testing.T) {
	tests := []struct {
		name     string
		match    []int
		filter   []int
		code     int
		filtered bool
		reason   string
	}{
		{"no filters", nil, nil, 500, false, ""},
		{"filter hit", nil, []int{404}, 404, true, "filter-code"},
		{"filter miss", nil, []int{404}, 200, false, ""},
		{"match hit", []int{200}, nil, 200, false, ""},
		{"match miss", []int{200}, nil, 302, true, "match-code"},
		{"filter wins over match", []int{200, 404}, []int{404}, 404, true, "filter-code"},
		{"both pass", []int{200, 404}, []int{404}, 200, false, ""},
		{"in neither with both set", []int{200}, []int{404}, 500, true, "match-code"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain := NewStatusChain(tt.match, tt.filter)
			filtered, reason := chain.Apply(&scanner.Outcome{StatusCode: tt.code})
			if filtered != tt.filtered {
				t.Errorf("filtered = %v, want %v", filtered, tt.filtered)
			}
			if reason != tt.reason {
				t.Errorf("reason = %q, want %q", reason, tt.reason)
			}
		})
	}
}

func TestNewStatusChainEmpty(t *testing.T) {
	if n := NewStatusChain(nil, []int{}).Len(); n != 0 {
		t.Errorf("expected empty chain, got %d filters", n)
	}
}
