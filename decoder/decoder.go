package decoder

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/salvage/model"
)

// Options control how a document is opened and how text runs are produced.
type Options struct {
	// EnableStreaming decodes directly from the caller's buffer instead of a
	// private copy.
	EnableStreaming bool

	// EnableRangeFetch allows the decoder random access into the buffer.
	// Disabling it (together with EnableStreaming) forces decoding from a
	// private full copy, which tolerates buffers the caller may detach.
	EnableRangeFetch bool

	// EnableAutoFetch resolves page objects lazily on first access. When
	// disabled, the page tree is probed at open time so that broken
	// cross-reference entries surface as per-page errors instead of faults
	// in the middle of iteration.
	EnableAutoFetch bool

	// DisableItemCombination passes text items through exactly as decoded.
	// When combination is on, adjacent items sharing a baseline are merged
	// into single runs.
	DisableItemCombination bool
}

// DefaultOptions returns the fast-path options used by the primary
// extraction tier.
func DefaultOptions() Options {
	return Options{
		EnableStreaming:  true,
		EnableRangeFetch: true,
		EnableAutoFetch:  true,
	}
}

// ConservativeOptions returns the slow, fault-tolerant options used by the
// alternative extraction tier: no streaming or range access, the page tree
// probed up front, and text items passed through uncombined.
func ConservativeOptions() Options {
	return Options{DisableItemCombination: true}
}

// Init performs one-time global decoder configuration. It is safe to call
// more than once; callers typically gate it behind a sync.Once.
func Init() {
	pdf.DebugOn = false
}

// Document is an open handle onto a decoded document. It is not safe for
// concurrent use; each extraction attempt owns its Document exclusively.
type Document struct {
	reader *pdf.Reader
	opts   Options

	// badPages records pages found broken during the open-time probe when
	// auto-fetch is disabled.
	badPages map[int]error
}

// Open decodes a document from data. The buffer becomes owned by the returned
// Document; callers must hand each decode attempt its own buffer.
func Open(data []byte, opts Options) (doc *Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("decoder fault: %v", r)
		}
	}()

	if len(data) == 0 {
		return nil, fmt.Errorf("empty buffer")
	}

	if !opts.EnableStreaming || !opts.EnableRangeFetch {
		data = append([]byte(nil), data...)
	}

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}

	doc = &Document{reader: r, opts: opts}
	if !opts.EnableAutoFetch {
		doc.probePages()
	}
	return doc, nil
}

// PageCount returns the number of pages in the document, 0 if the page tree
// is unreadable.
func (d *Document) PageCount() (n int) {
	defer func() {
		if recover() != nil {
			n = 0
		}
	}()
	return d.reader.NumPage()
}

// PageRuns returns the positioned text runs of page n (1-indexed). Decoder
// faults and missing page objects are reported as errors scoped to the page;
// the rest of the document stays usable.
func (d *Document) PageRuns(n int) (runs []model.TextRun, err error) {
	defer func() {
		if r := recover(); r != nil {
			runs = nil
			err = fmt.Errorf("page %d: decoder fault: %v", n, r)
		}
	}()

	if probeErr, ok := d.badPages[n]; ok {
		return nil, probeErr
	}

	page := d.reader.Page(n)
	if page.V.IsNull() {
		return nil, fmt.Errorf("page %d: missing page object", n)
	}

	content := page.Content()
	runs = make([]model.TextRun, 0, len(content.Text))
	for _, item := range content.Text {
		runs = append(runs, model.TextRun{Content: item.S, X: item.X, Y: item.Y})
	}

	if !d.opts.DisableItemCombination {
		runs = combineAdjacent(runs)
	}
	return runs, nil
}

// probePages touches every page object so that xref breakage is recorded up
// front rather than surfacing as faults during iteration.
func (d *Document) probePages() {
	d.badPages = make(map[int]error)
	total := d.PageCount()
	for n := 1; n <= total; n++ {
		if err := d.probePage(n); err != nil {
			d.badPages[n] = err
		}
	}
}

func (d *Document) probePage(n int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page %d: decoder fault: %v", n, r)
		}
	}()
	if d.reader.Page(n).V.IsNull() {
		return fmt.Errorf("page %d: missing page object", n)
	}
	return nil
}
