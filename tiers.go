package salvage

import (
	"context"
	"fmt"
	"strings"

	"github.com/tsawler/salvage/decoder"
	"github.com/tsawler/salvage/leak"
	"github.com/tsawler/salvage/model"
	"github.com/tsawler/salvage/text"
)

// Tier names used in decode errors and logs.
const (
	tierPrimary     = "primary"
	tierAlternative = "alternative"
)

// primaryTier decodes with default options and the full page ceiling. The
// result is accepted only if at least one page survives and the concatenated
// text both passes content validation and is not a document-level structure
// leak; otherwise the tier rejects and the orchestrator escalates.
func (s *Service) primaryTier(ctx context.Context, data []byte) ([]model.Page, []Warning, error) {
	doc, err := s.open(cloneBuffer(data), decoder.DefaultOptions())
	if err != nil {
		return nil, nil, &DecodeError{Tier: tierPrimary, Err: err}
	}

	limit := min(doc.PageCount(), s.opts.MaxPages)
	pages, warnings, err := s.collectPages(ctx, doc, limit, false)
	if err != nil {
		return nil, warnings, err
	}

	combined := joinPages(pages)
	if leak.IsStructureLeak(combined) {
		return nil, warnings, fmt.Errorf("%s tier document text: %w", tierPrimary, ErrStructureLeak)
	}
	if len(pages) == 0 || !leak.IsMeaningful(combined) {
		return nil, warnings, fmt.Errorf("%s tier: %w", tierPrimary, ErrExtractionEmpty)
	}
	return pages, warnings, nil
}

// alternativeTier re-decodes from a fresh buffer with conservative options:
// no streaming or range access, the page tree probed up front, text items
// uncombined, and the tighter page ceiling. Page text is assembled by
// simplified concatenation to reduce sensitivity to decoder quirks. Any
// non-empty page sequence is accepted as-is.
func (s *Service) alternativeTier(ctx context.Context, data []byte) ([]model.Page, []Warning, error) {
	doc, err := s.open(cloneBuffer(data), decoder.ConservativeOptions())
	if err != nil {
		return nil, nil, &DecodeError{Tier: tierAlternative, Err: err}
	}

	limit := min(doc.PageCount(), s.opts.AlternativePageLimit)
	pages, warnings, err := s.collectPages(ctx, doc, limit, true)
	if err != nil {
		return nil, warnings, err
	}

	if len(pages) == 0 {
		return nil, warnings, fmt.Errorf("%s tier: %w", tierAlternative, ErrExtractionEmpty)
	}
	return pages, warnings, nil
}

// collectPages walks pages 1..limit, fetching runs and assembling page text.
// Per-page decode errors and per-page structure leaks skip the page and
// continue; one bad page never aborts the document. With simplified set,
// runs are joined in encounter order instead of positionally reconstructed.
// The returned error is non-nil only when ctx is cancelled.
func (s *Service) collectPages(ctx context.Context, doc Document, limit int, simplified bool) ([]model.Page, []Warning, error) {
	var pages []model.Page
	var warnings []Warning

	for n := 1; n <= limit; n++ {
		if err := ctx.Err(); err != nil {
			return nil, warnings, err
		}

		runs, err := doc.PageRuns(n)
		if err != nil {
			s.log.Debug("page decode failed", "page", n, "err", err)
			warnings = append(warnings, Warning{Code: WarnPageDecodeFailed, Page: n, Message: err.Error()})
			continue
		}

		raw := text.Concatenate(runs)
		if leak.IsStructureLeak(raw) {
			s.log.Debug("page text is leaked structure", "page", n)
			warnings = append(warnings, Warning{Code: WarnPageStructureLeak, Page: n, Message: "page text is raw document structure"})
			continue
		}

		pageText := raw
		if !simplified {
			pageText = text.Reconstruct(runs)
		}
		pageText = strings.TrimSpace(pageText)
		if pageText == "" {
			continue
		}

		pages = append(pages, model.Page{Text: pageText, Number: n})
	}
	return pages, warnings, nil
}

// joinPages concatenates page texts for document-level classification.
func joinPages(pages []model.Page) string {
	var b strings.Builder
	for i, p := range pages {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(p.Text)
	}
	return b.String()
}
