// Package text reconstructs reading-ordered text from positioned text runs.
//
// The document decoder emits a page's runs in whatever order they appear in
// the content stream, which frequently has nothing to do with reading order.
// [Reconstruct] imposes top-to-bottom, left-to-right order by position and
// inserts line breaks at vertical jumps:
//
//	pageText := text.Reconstruct(runs)
//
// [Concatenate] is the simplified variant used by the conservative extraction
// tier: it joins run contents in encounter order without any positional
// reasoning, trading layout fidelity for insensitivity to broken transform
// data.
//
// Both functions are total: malformed positions (NaN or infinite coordinates)
// downgrade Reconstruct to plain concatenation rather than failing.
package text
