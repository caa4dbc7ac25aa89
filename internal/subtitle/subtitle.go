package subtitle

// Entry represents a single subtitle cue.
//
// Start and End are offsets in seconds from the start of the media.
// The parser does not enforce End >= Start; callers must tolerate
// inverted timestamps.
type Entry struct {
	// Index is the cue number as declared in the source file. It is
	// informational only: duplicates and out-of-order values pass
	// through unchanged.
	Index int

	Start float64
	End   float64

	// Text holds the cue's display text with internal line breaks
	// preserved.
	Text string
}

// Parser is the interface for subtitle text parsing.
type Parser interface {
	Parse(text string) []Entry
}
