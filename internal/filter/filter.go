package filter

import "github.com/maxvaer/pather/internal/scanner"

// Filter decides whether a probe outcome should be hidden from output.
type Filter interface {
	Name() string
	ShouldFilter(outcome *scanner.Outcome) bool
}

// Chain applies multiple filters in order, short-circuiting on the first match.
type Chain struct {
	filters []Filter
}

// NewChain returns an empty filter chain.
func NewChain() *Chain {
	return &Chain{}
}

// NewStatusChain builds the status chain for a run. The filter-code list is
// consulted before the match-code list, so a code present in both is hidden.
// Either list may be empty.
func NewStatusChain(matchCodes, filterCodes []int) *Chain {
	c := NewChain()
	if len(filterCodes) > 0 {
		c.Add(NewStatusExclude(filterCodes))
	}
	if len(matchCodes) > 0 {
		c.Add(NewStatusMatch(matchCodes))
	}
	return c
}

// Add appends a filter to the chain.
func (c *Chain) Add(f Filter) {
	c.filters = append(c.filters, f)
}

// Len returns the number of filters in the chain.
func (c *Chain) Len() int { return len(c.filters) }

// Apply runs every filter against the outcome. Returns true and the filter
// name if the outcome should be filtered out.
func (c *Chain) Apply(outcome *scanner.Outcome) (bool, string) {
	for _, f := range c.filters {
		if f.ShouldFilter(outcome) {
			return true, f.Name()
		}
	}
	return false, ""
}
