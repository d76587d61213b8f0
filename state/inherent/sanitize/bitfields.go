package sanitize

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/filament-chain/filament/model/relay"
	"github.com/filament-chain/filament/module"
)

// SanitizeBitfields filters availability bitfields for well-formedness.
//
// Checks, applied per bitfield in input order:
//  1. the payload has exactly expectedBits bits and backing storage
//     consistent with that length
//  2. the validator index is strictly greater than the previous accepted
//     index, which enforces ordering and at most one bitfield per validator
//  3. the validator index is within the active validator set
//  4. (strict only) the signature verifies under a context built from the
//     parent hash and session
//
// The disputed bitfield's length is checked once, before the loop.
//
// In ModeStrict the first violation aborts the call with a non-nil filtered
// slice of nil. In ModeLenient the returned slice is always valid and the
// returned error is purely informational: it aggregates the reasons of all
// dropped bitfields and is nil when nothing was dropped. Lenient mode never
// verifies signatures; that is left to strict on-chain processing.
func SanitizeBitfields(
	bitfields []relay.UncheckedBitfield,
	disputed relay.DisputedBitfield,
	expectedBits int,
	parentHash relay.Hash,
	session relay.SessionIndex,
	validators module.ValidatorSet,
	verifier module.BitfieldVerifier,
	mode Mode,
) ([]relay.UncheckedBitfield, error) {

	if disputed.Len() != expectedBits {
		return nil, fmt.Errorf("disputed bitfield has %d bits, expected %d: %w",
			disputed.Len(), expectedBits, ErrWrongBitfieldSize)
	}

	filtered := make([]relay.UncheckedBitfield, 0, len(bitfields))

	var dropped *multierror.Error
	haveLast := false
	var lastIndex relay.ValidatorIndex

	for _, bitfield := range bitfields {

		// decoded payloads declare their length separately from the backing
		// bytes, so both must be checked before any bit is read
		if bitfield.Payload.Len() != expectedBits || !bitfield.Payload.Valid() {
			err := fmt.Errorf("bitfield of validator %d declares %d bits over %d bytes, expected %d bits: %w",
				bitfield.ValidatorIndex, bitfield.Payload.Len(), len(bitfield.Payload.Bits), expectedBits, ErrWrongBitfieldSize)
			if mode == ModeStrict {
				return nil, err
			}
			dropped = multierror.Append(dropped, err)
			continue
		}

		if haveLast && bitfield.ValidatorIndex <= lastIndex {
			err := fmt.Errorf("bitfield of validator %d follows index %d: %w",
				bitfield.ValidatorIndex, lastIndex, ErrBitfieldDuplicateOrUnordered)
			if mode == ModeStrict {
				return nil, err
			}
			dropped = multierror.Append(dropped, err)
			continue
		}

		if int(bitfield.ValidatorIndex) >= validators.Len() {
			err := fmt.Errorf("validator index %d exceeds active set size %d: %w",
				bitfield.ValidatorIndex, validators.Len(), ErrValidatorIndexOutOfBounds)
			if mode == ModeStrict {
				return nil, err
			}
			dropped = multierror.Append(dropped, err)
			continue
		}

		// only strict processing pays for signature verification
		if mode == ModeStrict {
			err := verifier.Verify(bitfield, parentHash, session)
			if err != nil {
				return nil, NewInvalidBitfieldSignatureErrorf(
					"invalid signature on bitfield of validator %d: %w", bitfield.ValidatorIndex, err)
			}
		}

		filtered = append(filtered, bitfield)
		lastIndex = bitfield.ValidatorIndex
		haveLast = true
	}

	return filtered, dropped.ErrorOrNil()
}
