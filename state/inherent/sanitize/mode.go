// Package sanitize filters untrusted inherent data. Each filter runs in one
// of two modes: the block author filters leniently, dropping offending items
// and keeping the rest, while on-chain execution filters strictly, treating
// the first offending item as proof of a malicious author.
package sanitize

// Mode selects the failure behavior of the sanitizers.
type Mode uint8

const (
	// ModeLenient drops offending items and always succeeds.
	ModeLenient Mode = iota
	// ModeStrict aborts on the first offending item.
	ModeStrict
)

func (m Mode) String() string {
	switch m {
	case ModeLenient:
		return "lenient"
	case ModeStrict:
		return "strict"
	default:
		return "unknown"
	}
}
