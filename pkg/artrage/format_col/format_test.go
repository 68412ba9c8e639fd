// Package format_col implements the ArtRage .col palette layout
// This file contains tests for the fixed header blocks and record encoders
package format_col

import (
	"bytes"
	"encoding/hex"
	"testing"
	"unicode/utf8"

	"github.com/mohogain/gpl2col/pkg/gpl"
)

// Interleaved magic blocks, spelled out byte for byte.
const (
	fileMagicHex = "410052003200200043004f004c004f00520020005000520045005300450054000d000a008f00"
	nameMagicHex = "41005200530077006100740063006800460069006c006500560065007200730069006f006e002d003300"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex fixture: %v", err)
	}
	return b
}

func TestFileHeader(t *testing.T) {
	tests := []struct {
		name  string
		count uint8
	}{
		{name: "empty palette", count: 0},
		{name: "single entry", count: 1},
		{name: "full palette", count: 255},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			header := FileHeader(tc.count)
			if len(header) != FileHeaderSize {
				t.Fatalf("header length = %d, want %d", len(header), FileHeaderSize)
			}

			want := mustHex(t, fileMagicHex)
			want = append(want, 0x30, 0x00, 0xFF)
			want = append(want, make([]byte, 8)...)
			want = append(want, tc.count)
			want = append(want, 0x00, 0x00, 0x00)
			if !bytes.Equal(header, want) {
				t.Errorf("header = %x, want %x", header, want)
			}
			if header[49] != tc.count {
				t.Errorf("count byte = 0x%02x, want 0x%02x", header[49], tc.count)
			}
		})
	}
}

func TestNamePreamble(t *testing.T) {
	preamble := NamePreamble()
	if len(preamble) != NamePreambleSize {
		t.Fatalf("preamble length = %d, want %d", len(preamble), NamePreambleSize)
	}
	if want := mustHex(t, nameMagicHex); !bytes.Equal(preamble, want) {
		t.Errorf("preamble = %x, want %x", preamble, want)
	}
}

func TestEncodeColor(t *testing.T) {
	tests := []struct {
		name  string
		entry gpl.Entry
		want  []byte
	}{
		{
			name:  "black",
			entry: gpl.Entry{},
			want:  []byte{0x00, 0x00, 0x00, 0xFF},
		},
		{
			name:  "channel order reversed",
			entry: gpl.Entry{R: 1, G: 2, B: 3},
			want:  []byte{0x03, 0x02, 0x01, 0xFF},
		},
		{
			name:  "white",
			entry: gpl.Entry{R: 255, G: 255, B: 255},
			want:  []byte{0xFF, 0xFF, 0xFF, 0xFF},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := EncodeColor(tc.entry)
			if !bytes.Equal(got, tc.want) {
				t.Errorf("EncodeColor(%+v) = %x, want %x", tc.entry, got, tc.want)
			}
		})
	}
}

func TestEncodeName(t *testing.T) {
	tests := []struct {
		name    string
		entry   gpl.Entry
		wantHex string
	}{
		{
			name:    "empty name",
			entry:   gpl.Entry{},
			wantHex: "",
		},
		{
			name:    "ascii",
			entry:   gpl.Entry{Name: "Black"},
			wantHex: "0042006c00610063006b",
		},
		{
			name:    "two-byte character",
			entry:   gpl.Entry{Name: "é"},
			wantHex: "00c3a9",
		},
		{
			name:    "three-byte character",
			entry:   gpl.Entry{Name: "日"},
			wantHex: "00e697a5",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := EncodeName(tc.entry)
			if want := mustHex(t, tc.wantHex); !bytes.Equal(got, want) {
				t.Errorf("EncodeName(%q) = %x, want %x", tc.entry.Name, got, want)
			}

			// One 0x00 per character, before that character's UTF-8 bytes.
			wantLen := utf8.RuneCountInString(tc.entry.Name) + len(tc.entry.Name)
			if len(got) != wantLen {
				t.Errorf("EncodeName(%q) length = %d, want %d", tc.entry.Name, len(got), wantLen)
			}
		})
	}
}

func TestBuilder_Empty(t *testing.T) {
	b := NewBuilder()
	out := b.Bytes()

	wantLen := FileHeaderSize + NamePreambleSize + NameTerminatorSize
	if len(out) != wantLen {
		t.Fatalf("empty palette length = %d, want %d", len(out), wantLen)
	}
	if out[49] != 0 {
		t.Errorf("count byte = 0x%02x, want 0x00", out[49])
	}
	if !bytes.Equal(out[len(out)-3:], []byte{0, 0, 0}) {
		t.Errorf("missing name table terminator: % x", out[len(out)-3:])
	}
}

func TestBuilder_EntryLimit(t *testing.T) {
	b := NewBuilder()
	for i := 0; i < MaxEntries; i++ {
		if err := b.Add(gpl.Entry{R: uint8(i)}); err != nil {
			t.Fatalf("Add entry %d: %v", i+1, err)
		}
	}
	if b.Count() != MaxEntries {
		t.Fatalf("Count = %d, want %d", b.Count(), MaxEntries)
	}
	if out := b.Bytes(); out[49] != 0xFF {
		t.Errorf("count byte = 0x%02x, want 0xff", out[49])
	}

	if err := b.Add(gpl.Entry{}); err != ErrTooManyEntries {
		t.Errorf("Add entry 256 error = %v, want %v", err, ErrTooManyEntries)
	}
	if b.Count() != MaxEntries {
		t.Errorf("Count after rejected Add = %d, want %d", b.Count(), MaxEntries)
	}
}

func TestBuilder_PositionalCorrespondence(t *testing.T) {
	entries := []gpl.Entry{
		{R: 10, G: 20, B: 30, Name: "first"},
		{R: 40, G: 50, B: 60},
		{R: 70, G: 80, B: 90, Name: "third"},
	}

	b := NewBuilder()
	for _, e := range entries {
		if err := b.Add(e); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	out := b.Bytes()

	// Colour table: records in input order directly after the header.
	colors := out[FileHeaderSize : FileHeaderSize+len(entries)*ColorRecordSize]
	for i, e := range entries {
		got := colors[i*ColorRecordSize : (i+1)*ColorRecordSize]
		if want := EncodeColor(e); !bytes.Equal(got, want) {
			t.Errorf("colour record %d = %x, want %x", i, got, want)
		}
	}

	// Name table: records in the same order after the preamble.
	var wantNames []byte
	for _, e := range entries {
		wantNames = append(wantNames, EncodeName(e)...)
	}
	nameStart := FileHeaderSize + len(entries)*ColorRecordSize + NamePreambleSize
	gotNames := out[nameStart : len(out)-NameTerminatorSize]
	if !bytes.Equal(gotNames, wantNames) {
		t.Errorf("name table = %x, want %x", gotNames, wantNames)
	}
}
