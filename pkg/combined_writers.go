package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans every Write out to all underlying writers, so log
// output can go to the rotated file and stdout at once. A failing writer
// does not stop the others; their errors are combined with multierr.
type CombinedWriter struct {
	writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{writers: writers}
}

func (cw *CombinedWriter) Write(p []byte) (n int, err error) {
	for _, w := range cw.writers {
		written, werr := w.Write(p)
		if werr != nil {
			err = multierr.Combine(err, werr)
			continue
		}
		n += written
	}
	return n, err
}
