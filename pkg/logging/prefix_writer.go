package logging

import (
	"bytes"
	"io"
)

// PrefixWriter is an io.Writer that prepends a fixed prefix to every line
// written through it. Partial lines are held back until their newline
// arrives.
type PrefixWriter struct {
	prefix  []byte
	out     io.Writer
	pending bytes.Buffer
}

// NewPrefixWriter creates a new PrefixWriter.
func NewPrefixWriter(prefix string, out io.Writer) *PrefixWriter {
	return &PrefixWriter{
		prefix: []byte(prefix),
		out:    out,
	}
}

// Write implements io.Writer. Complete lines are emitted with the prefix;
// the tail of an incomplete line stays buffered for the next call.
func (w *PrefixWriter) Write(p []byte) (int, error) {
	if _, err := w.pending.Write(p); err != nil {
		return 0, err
	}

	for {
		idx := bytes.IndexByte(w.pending.Bytes(), '\n')
		if idx < 0 {
			break
		}
		line := w.pending.Next(idx + 1)
		if _, err := w.out.Write(w.prefix); err != nil {
			return 0, err
		}
		if _, err := w.out.Write(line); err != nil {
			return 0, err
		}
	}

	return len(p), nil
}
