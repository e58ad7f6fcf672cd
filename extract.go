package salvage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/tsawler/salvage/format"
	"github.com/tsawler/salvage/model"
)

// Extract runs the full extraction ladder on data under the configured
// wall-clock budget and returns the ordered page sequence.
//
// The ladder escalates strictly: primary decode, then a conservative
// alternative decode, then a raw-bytes fallback that always succeeds. Success
// at any tier terminates the ladder, so a non-error result always contains at
// least one page — in the worst case a synthesized placeholder describing the
// failure. Page numbers are 1-indexed and strictly increasing.
//
// Only two failures surface as errors: a *ValidationError for input rejected
// before any tier runs, and ErrTimeout (matched with errors.Is) when the
// budget expires. On timeout, in-flight work is abandoned and partial pages
// are discarded.
func (s *Service) Extract(ctx context.Context, data []byte, filename string) ([]model.Page, []Warning, error) {
	s.ensureInitialized()

	if err := s.validate(data, filename); err != nil {
		return nil, nil, err
	}

	var warnings []Warning
	if !format.SniffPDF(data) {
		warnings = append(warnings, Warning{
			Code:    WarnNoPDFHeader,
			Message: "no PDF header marker found near start of input",
		})
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	type outcome struct {
		pages    []model.Page
		warnings []Warning
		err      error
	}

	// The ladder races a single timer. First completion wins; an expired
	// timer abandons the ladder goroutine, which unwinds on its own once it
	// observes the cancelled context.
	done := make(chan outcome, 1)
	go func() {
		pages, w, err := s.runLadder(ctx, data, filename)
		done <- outcome{pages: pages, warnings: w, err: err}
	}()

	select {
	case out := <-done:
		if out.err != nil {
			return nil, nil, s.abortError(out.err)
		}
		return out.pages, append(warnings, out.warnings...), nil
	case <-ctx.Done():
		return nil, nil, s.abortError(ctx.Err())
	}
}

// validate rejects unsupported or out-of-bounds input before any tier runs.
func (s *Service) validate(data []byte, filename string) error {
	if len(data) == 0 {
		return &ValidationError{Reason: "empty input"}
	}
	if int64(len(data)) > s.opts.MaxFileSize {
		return &ValidationError{
			Reason: fmt.Sprintf("input is %s, exceeds the %s limit",
				humanSize(int64(len(data))), humanSize(s.opts.MaxFileSize)),
		}
	}
	if ext := filepath.Ext(filename); ext != "" && format.Detect(filename) != format.PDF {
		return &ValidationError{Reason: fmt.Sprintf("unsupported file type %q", ext)}
	}
	return nil
}

// abortError converts a context failure into the caller-visible error.
func (s *Service) abortError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w after %s", ErrTimeout, s.opts.Timeout)
	}
	return err
}

// runLadder executes the strict escalation ladder. It returns an error only
// when the context is cancelled mid-tier or, defensively, if the fallback
// guarantee is ever violated; every tier-local failure becomes an escalation.
func (s *Service) runLadder(ctx context.Context, data []byte, filename string) ([]model.Page, []Warning, error) {
	var warnings []Warning

	pages, w, err := s.primaryTier(ctx, data)
	warnings = append(warnings, w...)
	if err == nil {
		return pages, warnings, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, nil, ctxErr
	}
	s.log.Debug("primary tier rejected", "file", filename, "reason", err)
	warnings = append(warnings, Warning{Code: WarnPrimaryRejected, Message: err.Error()})

	pages, w, err = s.alternativeTier(ctx, data)
	warnings = append(warnings, w...)
	if err == nil {
		return pages, warnings, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, nil, ctxErr
	}
	s.log.Debug("alternative tier rejected", "file", filename, "reason", err)
	warnings = append(warnings, Warning{Code: WarnAlternativeRejected, Message: err.Error()})

	pages = s.rawFallback(data, filename)
	warnings = append(warnings, Warning{Code: WarnRawFallbackUsed, Message: "decode tiers exhausted; result produced from raw bytes"})
	if len(pages) == 0 {
		return nil, nil, ErrParsingFailed
	}
	return pages, warnings, nil
}

// cloneBuffer hands a tier its own private copy of the source bytes. A decode
// attempt owns and may exhaust its buffer, so buffers are never shared across
// tiers.
func cloneBuffer(data []byte) []byte {
	return append([]byte(nil), data...)
}
