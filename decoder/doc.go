// Package decoder adapts the external PDF decoding library
// (github.com/ledongthuc/pdf) to the narrow surface the extraction tiers
// need: open a document from a byte buffer, count pages, and fetch the
// positioned text runs of a page.
//
// # Opening Documents
//
// Use [Open] with a fresh byte buffer and an [Options] value:
//
//	doc, err := decoder.Open(data, decoder.DefaultOptions())
//	if err != nil {
//	    // escalate to the next extraction tier
//	}
//	runs, err := doc.PageRuns(1)
//
// A Document owns the buffer it was opened from. Buffers must not be shared
// across decode attempts; each attempt opens its own.
//
// # Options
//
// [DefaultOptions] enables streaming and range access and combines adjacent
// text items — the fast path. [ConservativeOptions] disables all of that:
// the document is decoded from a private copy of the buffer, the page tree is
// probed up front so broken cross-reference entries surface as per-page
// errors, and text items pass through uncombined.
//
// # Fault Containment
//
// The underlying library panics on many malformed inputs. Every call into it
// is recover-guarded here; faults surface as ordinary errors, never panics.
package decoder
