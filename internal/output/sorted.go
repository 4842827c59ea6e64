package output

import (
	"cmp"
	"slices"
)

// SortedWriter buffers results and replays them sorted by a field when
// WriteFooter is called. It wraps any other Writer.
type SortedWriter struct {
	inner   Writer
	sortBy  string
	results []Record
}

// NewSortedWriter wraps inner and buffers results for sorted replay.
// sortBy is "status" or "url".
func NewSortedWriter(inner Writer, sortBy string) *SortedWriter {
	return &SortedWriter{inner: inner, sortBy: sortBy}
}

func (w *SortedWriter) WriteHeader() error {
	return w.inner.WriteHeader()
}

func (w *SortedWriter) WriteResult(r Record) error {
	w.results = append(w.results, r)
	return nil
}

func (w *SortedWriter) WriteFooter(stats Stats) error {
	slices.SortStableFunc(w.results, func(a, b Record) int {
		switch w.sortBy {
		case "status":
			if c := cmp.Compare(a.StatusCode, b.StatusCode); c != 0 {
				return c
			}
			return cmp.Compare(a.URL, b.URL)
		case "url":
			return cmp.Compare(a.URL, b.URL)
		default:
			return 0
		}
	})
	for _, r := range w.results {
		if err := w.inner.WriteResult(r); err != nil {
			return err
		}
	}
	w.results = nil
	return w.inner.WriteFooter(stats)
}

func (w *SortedWriter) Close() error {
	return w.inner.Close()
}
