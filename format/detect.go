// Package format provides input classification for the salvage library.
package format

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a recognized input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PDF:
		return ".pdf"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return PDF
	default:
		return Unknown
	}
}

// pdfHeader is the container header marker every well-formed PDF starts with.
var pdfHeader = []byte("%PDF-")

// sniffWindow is how far into the data the header may legitimately appear;
// some producers prepend junk bytes before it.
const sniffWindow = 1024

// SniffPDF reports whether data carries a PDF header near its start. A
// missing header does not make the input unprocessable (the extraction ladder
// tolerates it), but callers may use the result to warn early.
func SniffPDF(data []byte) bool {
	window := data
	if len(window) > sniffWindow {
		window = window[:sniffWindow]
	}
	return bytes.Contains(window, pdfHeader)
}
