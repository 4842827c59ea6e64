package filter

import "github.com/maxvaer/pather/internal/scanner"

type codeSet map[int]struct{}

func newCodeSet(codes []int) codeSet {
	s := make(codeSet, len(codes))
	for _, code := range codes {
		s[code] = struct{}{}
	}
	return s
}

func (s codeSet) has(code int) bool {
	_, ok := s[code]
	return ok
}

// StatusExclude hides outcomes whose status code is in the set (-fc).
type StatusExclude struct {
	codes codeSet
}

// NewStatusExclude creates a deny-list status filter.
func NewStatusExclude(codes []int) *StatusExclude {
	return &StatusExclude{codes: newCodeSet(codes)}
}

func (f *StatusExclude) Name() string { return "filter-code" }

func (f *StatusExclude) ShouldFilter(outcome *scanner.Outcome) bool {
	return f.codes.has(outcome.StatusCode)
}

// StatusMatch hides outcomes whose status code is NOT in the set (-mc).
type StatusMatch struct {
	codes codeSet
}

// NewStatusMatch creates an allow-list status filter.
func NewStatusMatch(codes []int) *StatusMatch {
	return &StatusMatch{codes: newCodeSet(codes)}
}

func (f *StatusMatch) Name() string { return "match-code" }

func (f *StatusMatch) ShouldFilter(outcome *scanner.Outcome) bool {
	return !f.codes.has(outcome.StatusCode)
}
