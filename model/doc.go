// Package model provides the data types shared across the salvage extraction
// pipeline.
//
// The two types here mirror the two ends of the pipeline:
//
//   - [TextRun] - a positioned fragment of decoded text as emitted by the
//     document decoder. The decoder makes no promise about the order in which
//     runs for a page are produced; reading order is imposed later by the
//     text package.
//   - [Page] - a single page of reconstructed, reading-ordered text as
//     returned to the caller. Pages are 1-indexed and only pages with
//     non-empty text are retained in a result.
package model
