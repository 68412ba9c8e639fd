// Package gpl parses GIMP colour palette (.gpl) files line by line.
//
// A .gpl file is UTF-8 text whose first line is conventionally the literal
// "GIMP Palette". Every other line is either a colour entry or ignorable
// (comments, blank lines, the Name/Columns metadata lines).
//
// A colour entry starts with three numeric fields of at most three
// characters each, separated by single whitespace characters. Palette
// editors vary wildly in how they pad these fields: leading zeros may be
// written as 0, as blanks, or omitted entirely, so each field may contain a
// mix of blanks and digits. Anything after the three fields is the colour's
// display name, which may be empty.
//
// Examples:
//
//	ParseLine("  0  0  0\tBlack")  => Entry{0, 0, 0, "Black"}, matched
//	ParseLine("255 128   0 Amber") => Entry{255, 128, 0, "Amber"}, matched
//	ParseLine("# comment")         => unmatched, nil error
//	ParseLine("300   0   0 Hot")   => matched, ErrChannelRange
package gpl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// HeaderLine is the literal first line of a well-formed .gpl file.
const HeaderLine = "GIMP Palette"

var (
	// ErrFieldCount is returned when a line's colour-code section does not
	// split into exactly three values.
	ErrFieldCount = errors.New("colour code does not contain three values")

	// ErrChannelRange is returned when a colour channel value does not fit
	// in a single byte.
	ErrChannelRange = errors.New("colour channel value outside 0-255")
)

// Entry is one parsed palette record: an 8-bit RGB triplet plus an optional
// display name.
type Entry struct {
	R, G, B uint8
	Name    string
}

// ParseLine classifies one line of a .gpl file.
//
// The second return value reports whether the line is a colour entry at all;
// false with a nil error means the line is something else (header, comment,
// blank) and should simply be skipped. A non-nil error means the line looked
// like a colour entry but its fields could not be decoded.
func ParseLine(line string) (Entry, bool, error) {
	prefixLen, ok := matchCodePrefix(line)
	if !ok {
		return Entry{}, false, nil
	}

	code := strings.TrimSpace(line[:prefixLen])
	fields := strings.Fields(code)
	if len(fields) != 3 {
		return Entry{}, true, fmt.Errorf("%w: %q", ErrFieldCount, code)
	}

	var channels [3]uint8
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return Entry{}, true, fmt.Errorf("parse channel %q: %w", field, err)
		}
		if v > 255 {
			return Entry{}, true, fmt.Errorf("%w: %d", ErrChannelRange, v)
		}
		channels[i] = uint8(v)
	}

	return Entry{
		R:    channels[0],
		G:    channels[1],
		B:    channels[2],
		Name: strings.TrimSpace(line[prefixLen:]),
	}, true, nil
}

// matchCodePrefix reports the length of the colour-code section at the start
// of line: three runs of 1-3 whitespace-or-digit characters, each pair
// separated by a single whitespace character. Matching is greedy, longer
// runs first, backing off when the following separator cannot match.
func matchCodePrefix(line string) (int, bool) {
	return matchFields(line, 0, 3)
}

func matchFields(line string, pos, remaining int) (int, bool) {
	avail := 0
	for avail < 3 && pos+avail < len(line) && isFieldChar(line[pos+avail]) {
		avail++
	}
	for take := avail; take >= 1; take-- {
		end := pos + take
		if remaining == 1 {
			return end, true
		}
		if end < len(line) && isSpace(line[end]) {
			if final, ok := matchFields(line, end+1, remaining-1); ok {
				return final, true
			}
		}
	}
	return 0, false
}

func isFieldChar(c byte) bool {
	return isSpace(c) || (c >= '0' && c <= '9')
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
