package format_col

// Core format constants that never change

var (
	// "AR2 COLOR PRESET\r\n" plus the 0x8F version trailer byte, before
	// zero-interleaving
	FileMagicBytes = []byte{
		0x41, 0x52, 0x32, 0x20, 0x43, 0x4F, 0x4C, 0x4F, 0x52, 0x20,
		0x50, 0x52, 0x45, 0x53, 0x45, 0x54, 0x0D, 0x0A, 0x8F,
	}

	// "ARSwatchFileVersion-3", before zero-interleaving
	NameMagicBytes = []byte{
		0x41, 0x52, 0x53, 0x77, 0x61, 0x74, 0x63, 0x68, 0x46, 0x69,
		0x6C, 0x65, 0x56, 0x65, 0x72, 0x73, 0x69, 0x6F, 0x6E, 0x2D,
		0x33,
	}
)

const (
	// Fixed sizes - part of the format specification
	FileHeaderSize     = 53 // interleaved magic (38) + table marker (3) + reserved (8) + count (1) + reserved (3)
	NamePreambleSize   = 42 // interleaved name magic
	ColorRecordSize    = 4  // B, G, R, 0xFF
	NameTerminatorSize = 3  // three 0x00 bytes close the name table

	// MaxEntries is the palette ceiling: the entry count is stored in a
	// single byte.
	MaxEntries = 255

	// ColorAlpha terminates every colour record.
	ColorAlpha = 0xFF
)

// File permission defaults
const (
	FilePerms = 0o644
)
