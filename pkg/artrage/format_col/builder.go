package format_col

import (
	"bytes"

	"github.com/mohogain/gpl2col/pkg/gpl"
)

// Builder accumulates palette entries and assembles the complete .col byte
// stream. Colour records and name records are kept in two parallel in-memory
// buffers; the format associates name i with colour i purely by position, so
// the two buffers must only ever grow together.
type Builder struct {
	colors bytes.Buffer
	names  bytes.Buffer
	count  int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends one entry's colour and name records. It fails with
// ErrTooManyEntries once MaxEntries entries have been accepted; the entry
// count is a single byte in the file header.
func (b *Builder) Add(e gpl.Entry) error {
	if b.count >= MaxEntries {
		return ErrTooManyEntries
	}
	b.colors.Write(EncodeColor(e))
	b.names.Write(EncodeName(e))
	b.count++
	return nil
}

// Count returns the number of accepted entries.
func (b *Builder) Count() int {
	return b.count
}

// Bytes assembles the complete file: file header, colour table, name-section
// preamble, name table, 3-byte terminator. Output is deterministic for a
// given sequence of Add calls. With zero entries the result is still a
// structurally valid palette.
func (b *Builder) Bytes() []byte {
	size := FileHeaderSize + b.colors.Len() + NamePreambleSize + b.names.Len() + NameTerminatorSize
	out := make([]byte, 0, size)
	out = append(out, FileHeader(uint8(b.count))...)
	out = append(out, b.colors.Bytes()...)
	out = append(out, NamePreamble()...)
	out = append(out, b.names.Bytes()...)
	out = append(out, 0x00, 0x00, 0x00)
	return out
}
