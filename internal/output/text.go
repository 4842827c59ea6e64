package output

import (
	"fmt"
	"io"

	"github.com/maxvaer/pather/internal/scanner"
)

// urlColumn is the width the URL is padded to.
const urlColumn = 40

// TextWriter writes one line per record:
//
//	[+] https://admin.example.com/login          [200]
//	[!] https://example.com/old                  [301]      >>      /new
type TextWriter struct {
	w      io.Writer
	closer io.Closer
	styles Styles
	color  bool
}

// NewTextWriter creates a text writer over w. When colorize is false no
// escape codes are written; files are always written that way. If w is an
// io.Closer other than the process streams, Close closes it.
func NewTextWriter(w io.Writer, styles Styles, colorize bool) *TextWriter {
	t := &TextWriter{w: w, styles: styles, color: colorize}
	if c, ok := w.(io.Closer); ok && !isStdStream(w) {
		t.closer = c
	}
	return t
}

// FormatLine renders a record without color.
func FormatLine(r Record, styles Styles) string {
	line := fmt.Sprintf("%s %-*s [%d]", styles.For(r.Class).Marker, urlColumn, r.URL, r.StatusCode)
	if r.Class == scanner.Redirect {
		line += "      >>      " + r.Location
	}
	return line
}

func (t *TextWriter) WriteHeader() error { return nil }

func (t *TextWriter) WriteResult(r Record) error {
	line := FormatLine(r, t.styles)
	if st := t.styles.For(r.Class); t.color && st.Color != nil {
		line = st.Color.Sprint(line)
	}
	_, err := fmt.Fprintln(t.w, line)
	return err
}

func (t *TextWriter) WriteFooter(Stats) error { return nil }

func (t *TextWriter) Close() error {
	if t.closer != nil {
		return t.closer.Close()
	}
	return nil
}
