package output

import (
	"encoding/csv"
	"io"
	"strconv"
)

// CSVWriter writes results in CSV format.
type CSVWriter struct {
	w          *csv.Writer
	closer     io.Closer
	skipHeader bool
}

// NewCSVWriter creates a CSV writer over w. skipHeader suppresses the header
// row, e.g. when appending to a file that already has one.
func NewCSVWriter(w io.Writer, skipHeader bool) *CSVWriter {
	c := &CSVWriter{w: csv.NewWriter(w), skipHeader: skipHeader}
	if cl, ok := w.(io.Closer); ok && !isStdStream(w) {
		c.closer = cl
	}
	return c
}

func (c *CSVWriter) WriteHeader() error {
	if c.skipHeader {
		return nil
	}
	return c.w.Write([]string{"word", "url", "status", "class", "location"})
}

func (c *CSVWriter) WriteResult(r Record) error {
	if err := c.w.Write([]string{
		r.Word,
		r.URL,
		strconv.Itoa(r.StatusCode),
		r.Class.String(),
		r.Location,
	}); err != nil {
		return err
	}
	// Flush per row so an interrupted run keeps what it found.
	c.w.Flush()
	return c.w.Error()
}

func (c *CSVWriter) WriteFooter(_ Stats) error {
	c.w.Flush()
	return c.w.Error()
}

func (c *CSVWriter) Close() error {
	c.w.Flush()
	if c.closer != nil {
		return c.closer.Close()
	}
	return nil
}
