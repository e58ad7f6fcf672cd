// Package salvage extracts readable text from arbitrary, possibly malformed,
// PDF documents.
//
// Input documents are untrusted binary blobs of unknown internal quality:
// some decode cleanly into positioned text runs, some leak raw container
// syntax through a broken decoder path, some contain no extractable text at
// all, and some fail outright. Extraction runs a strict escalation ladder —
// a fast primary decode, a conservative alternative decode, and a raw-bytes
// fallback — so the caller always receives something displayable.
//
// Basic usage:
//
//	pages, warnings, err := salvage.Extract(ctx, data, "report.pdf")
//	if err != nil {
//	    // only invalid input or a timeout; every other failure degrades
//	    // internally to a lower tier
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", salvage.FormatWarnings(warnings))
//	}
//
// With an explicit service:
//
//	svc := salvage.New(salvage.Config{
//	    Options: salvage.ParseOptions{Timeout: 10 * time.Second},
//	    Logger:  slog.Default(),
//	})
//	pages, warnings, err := svc.Extract(ctx, data, "report.pdf")
//
// Warnings report non-fatal degradation: pages skipped over decode faults or
// structure leaks, and which tier ultimately produced the result.
package salvage

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/tsawler/salvage/decoder"
	"github.com/tsawler/salvage/model"
)

// Document is the decoder surface the extraction tiers consume. The bundled
// implementation wraps github.com/ledongthuc/pdf; tests substitute fakes.
type Document interface {
	// PageCount returns the number of pages, 0 if unreadable.
	PageCount() int
	// PageRuns returns the positioned text runs of page n (1-indexed).
	PageRuns(n int) ([]model.TextRun, error)
}

// OpenFunc opens a Document from a byte buffer. The buffer becomes owned by
// the returned Document; the caller must not reuse it for another attempt.
type OpenFunc func(data []byte, opts decoder.Options) (Document, error)

// Config configures a Service. The zero value is usable: defaults apply, the
// bundled decoder is used, and logging is disabled.
type Config struct {
	// Options bounds each extraction; zero fields fall back to defaults.
	Options ParseOptions

	// Logger receives per-page debug events. Nil disables logging; warnings
	// are still returned to the caller either way.
	Logger *slog.Logger

	// Open overrides the document decoder. Nil uses the bundled
	// ledongthuc-backed decoder.
	Open OpenFunc
}

// Service orchestrates the tiered extraction ladder. Services are immutable
// after construction and safe for concurrent use; concurrent extractions
// share no mutable state.
type Service struct {
	opts ParseOptions
	log  *slog.Logger
	open OpenFunc

	initOnce sync.Once
}

// New creates a Service from cfg.
func New(cfg Config) *Service {
	s := &Service{
		opts: cfg.Options.withDefaults(),
		log:  cfg.Logger,
		open: cfg.Open,
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.open == nil {
		s.open = func(data []byte, opts decoder.Options) (Document, error) {
			return decoder.Open(data, opts)
		}
	}
	return s
}

// ensureInitialized applies one-time global decoder configuration before
// first use.
func (s *Service) ensureInitialized() {
	s.initOnce.Do(decoder.Init)
}

// Extract extracts text from data using a Service with default configuration.
// See [Service.Extract].
func Extract(ctx context.Context, data []byte, filename string) ([]model.Page, []Warning, error) {
	return New(Config{}).Extract(ctx, data, filename)
}
