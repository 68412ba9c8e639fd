package format_col

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/hashicorp/go-hclog"

	"github.com/mohogain/gpl2col/pkg/gpl"
	"github.com/mohogain/gpl2col/pkg/logging"
)

// ConvertWithLogLevel converts the .gpl palette at inputPath to a .col
// palette at outputPath with explicit log level control. An empty
// cliLogLevel falls back to the GPL2COL_LOG_LEVEL environment variable.
func ConvertWithLogLevel(inputPath, outputPath, cliLogLevel string) error {
	level, source := logging.ResolveLevel(cliLogLevel)
	logger := logging.NewLogger("gpl2col", level)

	logger.Info("🎨 gpl2col starting...")
	logger.Debug("Log level", "level", level, "source", source)

	return ConvertFile(logger, inputPath, outputPath)
}

// Convert converts the .gpl palette at inputPath to a .col palette at
// outputPath using the default logging configuration.
func Convert(inputPath, outputPath string) error {
	return ConvertWithLogLevel(inputPath, outputPath, "")
}

// ConvertFile runs one conversion from file to file. The output is staged
// to a temporary file and renamed into place, so a failed conversion never
// leaves a partial .col behind.
func ConvertFile(logger hclog.Logger, inputPath, outputPath string) error {
	logger.Info("📖 Reading palette", "path", inputPath)
	in, err := os.Open(inputPath)
	if err != nil {
		logger.Error("❌ Failed to open input file", "error", err, "path", inputPath)
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	data, err := ConvertReader(logger, in)
	if err != nil {
		return err
	}

	tempPath := fmt.Sprintf("%s.tmp.%d", outputPath, os.Getpid())
	logger.Debug("💾 Writing staged output", "temp_path", tempPath, "size", len(data))
	if err := os.WriteFile(tempPath, data, os.FileMode(FilePerms)); err != nil {
		logger.Error("❌ Failed to write output", "error", err, "path", tempPath)
		return fmt.Errorf("write output: %w", err)
	}
	if err := os.Rename(tempPath, outputPath); err != nil {
		os.Remove(tempPath)
		logger.Error("❌ Failed to replace output file", "error", err, "path", outputPath)
		return fmt.Errorf("replace output: %w", err)
	}

	logger.Info("✅ Done", "path", outputPath, "size", len(data))
	return nil
}

// ConvertReader consumes a .gpl text stream and returns the assembled .col
// bytes. The first line is only checked against the format marker; every
// later line either becomes a palette entry or is skipped.
func ConvertReader(logger hclog.Logger, in io.Reader) ([]byte, error) {
	scanner := bufio.NewScanner(in)

	if !scanner.Scan() || scanner.Text() != gpl.HeaderLine {
		if err := scanner.Err(); err != nil {
			logger.Error("❌ Failed to read input", "error", err)
			return nil, fmt.Errorf("read input: %w", err)
		}
		logger.Warn("⚠️ The input file may not be a valid GIMP colour palette file, proceeding")
	}

	builder := NewBuilder()
	lineNo := 1
	for scanner.Scan() {
		lineNo++
		entry, matched, err := gpl.ParseLine(scanner.Text())
		if err != nil {
			logger.Error("❌ Malformed palette entry", "line", lineNo, "error", err)
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if !matched {
			logger.Trace("Skipping non-entry line", "line", lineNo)
			continue
		}
		if err := builder.Add(entry); err != nil {
			logger.Error("❌ The provided GIMP colour palette has more entries than the entry limit for ArtRage .col files (255)", "line", lineNo)
			return nil, err
		}
		logger.Trace("Accepted entry", "line", lineNo, "name", entry.Name)
	}
	if err := scanner.Err(); err != nil {
		logger.Error("❌ Failed to read input", "error", err)
		return nil, fmt.Errorf("read input: %w", err)
	}

	out := builder.Bytes()
	logger.Debug("📦 Assembled palette",
		"entries", builder.Count(),
		"size", len(out),
		"xxhash", fmt.Sprintf("%016x", xxhash.Sum64(out)),
	)
	return out, nil
}
