package format_col

import (
	"unicode/utf8"

	"github.com/mohogain/gpl2col/pkg/gpl"
)

// EncodeColor returns the 4-byte colour record for e. ArtRage stores
// channels in BGR order with a fixed 0xFF terminator byte.
func EncodeColor(e gpl.Entry) []byte {
	return []byte{e.B, e.G, e.R, ColorAlpha}
}

// EncodeName returns the name record for e: each Unicode character's UTF-8
// encoding preceded by a single 0x00 byte. Character by character, not true
// UTF-16, so a multi-byte character still gets exactly one 0x00. An empty
// name produces no bytes.
func EncodeName(e gpl.Entry) []byte {
	buf := make([]byte, 0, 2*len(e.Name))
	for _, r := range e.Name {
		buf = append(buf, 0x00)
		buf = utf8.AppendRune(buf, r)
	}
	return buf
}
