package salvage

import (
	"fmt"
	"strings"
)

// WarningCode identifies the kind of non-fatal issue a Warning reports.
type WarningCode int

const (
	// WarnNoPDFHeader indicates the input carries no PDF header marker.
	WarnNoPDFHeader WarningCode = iota + 1
	// WarnPageDecodeFailed indicates a page was skipped over a decoder error.
	WarnPageDecodeFailed
	// WarnPageStructureLeak indicates a page was skipped because its text was
	// raw container syntax.
	WarnPageStructureLeak
	// WarnPrimaryRejected indicates the primary tier failed or was rejected
	// and extraction escalated.
	WarnPrimaryRejected
	// WarnAlternativeRejected indicates the alternative tier failed and
	// extraction escalated to the raw fallback.
	WarnAlternativeRejected
	// WarnRawFallbackUsed indicates the result came from the raw-bytes
	// fallback rather than a decode tier.
	WarnRawFallbackUsed
)

// String returns the string representation of the code.
func (c WarningCode) String() string {
	switch c {
	case WarnNoPDFHeader:
		return "NoPDFHeader"
	case WarnPageDecodeFailed:
		return "PageDecodeFailed"
	case WarnPageStructureLeak:
		return "PageStructureLeak"
	case WarnPrimaryRejected:
		return "PrimaryRejected"
	case WarnAlternativeRejected:
		return "AlternativeRejected"
	case WarnRawFallbackUsed:
		return "RawFallbackUsed"
	default:
		return "Unknown"
	}
}

// Warning describes a non-fatal issue encountered during extraction.
// Extraction succeeded, but the result may be degraded.
type Warning struct {
	Code    WarningCode
	Page    int // 1-indexed page the warning refers to; 0 for document-level
	Message string
}

// String returns a human-readable form of the warning.
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("%s (page %d): %s", w.Code, w.Page, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// FormatWarnings joins warnings into a single human-readable string.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
