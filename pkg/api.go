package pkg

import (
	"github.com/mohogain/gpl2col/pkg/artrage/format_col"
)

// Convert converts a GIMP colour palette file (.gpl) to an ArtRage colour
// palette file (.col).
func Convert(inputPath, outputPath string) error {
	return format_col.Convert(inputPath, outputPath)
}

// ConvertWithLogLevel is Convert with explicit log level control; an empty
// logLevel uses the environment or the default.
func ConvertWithLogLevel(inputPath, outputPath, logLevel string) error {
	return format_col.ConvertWithLogLevel(inputPath, outputPath, logLevel)
}
