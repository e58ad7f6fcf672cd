package format

import (
	"bytes"
	"testing"
)

// TestDetect tests extension-based detection
func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"document.pdf", PDF},
		{"DOCUMENT.PDF", PDF},
		{"report.v2.pdf", PDF},
		{"document.docx", Unknown},
		{"notes.txt", Unknown},
		{"noextension", Unknown},
		{"", Unknown},
	}

	for _, tt := range tests {
		got := Detect(tt.filename)
		if got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

// TestFormatString tests string representations
func TestFormatString(t *testing.T) {
	if PDF.String() != "PDF" {
		t.Errorf("expected 'PDF', got %q", PDF.String())
	}
	if Unknown.String() != "Unknown" {
		t.Errorf("expected 'Unknown', got %q", Unknown.String())
	}
}

// TestFormatExtension tests extension lookup
func TestFormatExtension(t *testing.T) {
	if PDF.Extension() != ".pdf" {
		t.Errorf("expected '.pdf', got %q", PDF.Extension())
	}
	if Unknown.Extension() != "" {
		t.Errorf("expected empty extension, got %q", Unknown.Extension())
	}
}

// TestSniffPDF tests header sniffing
func TestSniffPDF(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"clean header", []byte("%PDF-1.7\nrest of file"), true},
		{"junk before header", append(bytes.Repeat([]byte{0x00}, 100), []byte("%PDF-1.4")...), true},
		{"no header", []byte("plain text content"), false},
		{"empty", nil, false},
		{"header beyond window", append(bytes.Repeat([]byte{'x'}, 2048), []byte("%PDF-1.4")...), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SniffPDF(tt.data)
			if got != tt.want {
				t.Errorf("SniffPDF = %v, want %v", got, tt.want)
			}
		})
	}
}
