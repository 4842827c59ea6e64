package output

import (
	"encoding/json"
	"io"
)

type jsonEntry struct {
	Word       string `json:"word"`
	URL        string `json:"url"`
	StatusCode int    `json:"status"`
	Class      string `json:"class"`
	Location   string `json:"location,omitempty"`
}

// JSONWriter writes one JSON object per line so that repeated runs can
// append to the same file.
type JSONWriter struct {
	enc    *json.Encoder
	closer io.Closer
}

// NewJSONWriter creates a JSON Lines writer over w.
func NewJSONWriter(w io.Writer) *JSONWriter {
	j := &JSONWriter{enc: json.NewEncoder(w)}
	if c, ok := w.(io.Closer); ok && !isStdStream(w) {
		j.closer = c
	}
	return j
}

func (j *JSONWriter) WriteHeader() error { return nil }

func (j *JSONWriter) WriteResult(r Record) error {
	return j.enc.Encode(jsonEntry{
		Word:       r.Word,
		URL:        r.URL,
		StatusCode: r.StatusCode,
		Class:      r.Class.String(),
		Location:   r.Location,
	})
}

func (j *JSONWriter) WriteFooter(Stats) error { return nil }

func (j *JSONWriter) Close() error {
	if j.closer != nil {
		return j.closer.Close()
	}
	return nil
}
