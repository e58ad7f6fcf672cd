package salvage

import "errors"

// Sentinel errors for tier-local failures. The orchestrator matches on these
// to decide escalation; only validation and timeout failures ever reach the
// caller as hard errors.
var (
	// ErrStructureLeak marks decoded text classified as raw container
	// syntax rather than content.
	ErrStructureLeak = errors.New("decoded text is raw document structure")

	// ErrExtractionEmpty marks a tier that produced zero usable pages.
	ErrExtractionEmpty = errors.New("no usable text extracted")

	// ErrTimeout marks exhaustion of the wall-clock budget. Fatal; no
	// further tier is attempted.
	ErrTimeout = errors.New("extraction timed out")

	// ErrParsingFailed marks exhaustion of every tier without usable pages.
	// The raw fallback guarantees output, so this is a defensive terminal
	// case only.
	ErrParsingFailed = errors.New("all extraction tiers failed")
)

// ValidationError reports input rejected before any extraction tier ran.
// Never retried.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + e.Reason
}

// DecodeError reports a decoder failure while opening or paging through a
// document in a named tier.
type DecodeError struct {
	Tier string
	Err  error
}

func (e *DecodeError) Error() string {
	return e.Tier + " tier decode failed: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
