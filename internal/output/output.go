package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/maxvaer/pather/internal/scanner"
)

// Record is one emitted result.
type Record struct {
	Word       string
	URL        string
	StatusCode int
	Class      scanner.Class
	Location   string // redirect target, "unknown" when the header was absent
}

// FromOutcome converts a classified outcome into a Record.
func FromOutcome(o *scanner.Outcome) Record {
	return Record{
		Word:       o.Word,
		URL:        o.URL,
		StatusCode: o.StatusCode,
		Class:      o.Class,
		Location:   o.Location,
	}
}

// Stats holds aggregate run statistics.
type Stats struct {
	TotalWords  int
	Completed   int
	Emitted     int
	Filtered    int
	Unreachable int
	Duration    time.Duration
	Interrupted bool
}

// Writer is implemented by each output format.
type Writer interface {
	WriteHeader() error
	WriteResult(r Record) error
	WriteFooter(stats Stats) error
	Close() error
}

// OpenAppend opens path for appending, creating it if needed. It also
// reports whether the file already held data.
func OpenAppend(path string) (*os.File, bool, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, false, fmt.Errorf("opening output file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, false, fmt.Errorf("opening output file: %w", err)
	}
	return f, info.Size() > 0, nil
}

func isStdStream(w io.Writer) bool {
	return w == io.Writer(os.Stdout) || w == io.Writer(os.Stderr)
}
