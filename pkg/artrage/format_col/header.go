package format_col

// interleaveZero widens a magic byte sequence by appending a 0x00 byte
// after every source byte, mimicking a wide-character encoding. The result
// is exactly twice the source length.
func interleaveZero(src []byte) []byte {
	out := make([]byte, 0, 2*len(src))
	for _, b := range src {
		out = append(out, b, 0x00)
	}
	return out
}

// FileHeader packs the fixed 53-byte .col file header for the given entry
// count: the interleaved format magic, the colour-table marker, eight
// reserved bytes, the count byte, and three more reserved bytes.
func FileHeader(count uint8) []byte {
	buf := make([]byte, 0, FileHeaderSize)
	buf = append(buf, interleaveZero(FileMagicBytes)...)
	buf = append(buf, 0x30, 0x00, 0xFF) // colour-table marker
	buf = append(buf, make([]byte, 8)...)
	buf = append(buf, count)
	buf = append(buf, 0x00, 0x00, 0x00)
	return buf
}

// NamePreamble packs the fixed 42-byte marker that opens the name section.
func NamePreamble() []byte {
	return interleaveZero(NameMagicBytes)
}
