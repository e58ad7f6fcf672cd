package salvage

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/salvage/model"
)

// defaultBatchConcurrency bounds how many documents ExtractAll processes at
// once when the caller does not say.
const defaultBatchConcurrency = 4

// File pairs a document's bytes with its name for batch extraction.
type File struct {
	Name string
	Data []byte
}

// Result is the outcome of extracting one file in a batch.
type Result struct {
	Name     string
	Pages    []model.Page
	Warnings []Warning
	Err      error
}

// ExtractAll extracts every file concurrently, at most concurrency documents
// at a time (<= 0 selects a default). Extractions are independent: each owns
// its buffers and document handles, and one file's failure never affects
// another. Results are returned in input order, with per-file errors recorded
// rather than returned.
func (s *Service) ExtractAll(ctx context.Context, files []File, concurrency int) []Result {
	if concurrency <= 0 {
		concurrency = defaultBatchConcurrency
	}

	results := make([]Result, len(files))
	g := new(errgroup.Group)
	g.SetLimit(concurrency)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			pages, warnings, err := s.Extract(ctx, f.Data, f.Name)
			results[i] = Result{Name: f.Name, Pages: pages, Warnings: warnings, Err: err}
			return nil
		})
	}
	// Goroutines record errors per file and always return nil.
	_ = g.Wait()
	return results
}
