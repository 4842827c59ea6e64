package output

import "errors"

// MultiWriter duplicates every call to each of its writers, e.g. the
// terminal and the output file.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter returns a writer that fans out to writers in order.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

func (m *MultiWriter) WriteHeader() error {
	for _, w := range m.writers {
		if err := w.WriteHeader(); err != nil {
			return err
		}
	}
	return nil
}

func (m *MultiWriter) WriteResult(r Record) error {
	for _, w := range m.writers {
		if err := w.WriteResult(r); err != nil {
			return err
		}
	}
	return nil
}

func (m *MultiWriter) WriteFooter(stats Stats) error {
	for _, w := range m.writers {
		if err := w.WriteFooter(stats); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every writer and joins their errors.
func (m *MultiWriter) Close() error {
	var errs []error
	for _, w := range m.writers {
		errs = append(errs, w.Close())
	}
	return errors.Join(errs...)
}
