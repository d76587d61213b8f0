package sanitize_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/filament-chain/filament/model/relay"
	modulemock "github.com/filament-chain/filament/module/mock"
	"github.com/filament-chain/filament/state/inherent/sanitize"
	"github.com/filament-chain/filament/utils/unittest"
)

const expectedBits = 5

var parentHash = unittest.HashFixture()

func validatorSet(t *testing.T, size int) *modulemock.ValidatorSet {
	validators := modulemock.NewValidatorSet(t)
	validators.On("Len").Return(size).Maybe()
	return validators
}

// A sorted, duplicate-free, correctly sized input passes lenient
// sanitization unchanged.
func TestSanitizeBitfieldsCleanInputUnchanged(t *testing.T) {
	bitfields := unittest.OrderedBitfieldsFixture(4, expectedBits)

	filtered, dropped := sanitize.SanitizeBitfields(
		bitfields, relay.ZeroDisputed(expectedBits), expectedBits,
		unittest.HashFixture(), 1, validatorSet(t, 10), nil, sanitize.ModeLenient)

	require.NoError(t, dropped)
	require.Equal(t, bitfields, filtered)
}

func TestSanitizeBitfieldsWrongSizeDropped(t *testing.T) {
	bitfields := unittest.OrderedBitfieldsFixture(4, expectedBits)
	bitfields[2].Payload = relay.NewBitfield(expectedBits + 1)

	filtered, dropped := sanitize.SanitizeBitfields(
		bitfields, relay.ZeroDisputed(expectedBits), expectedBits,
		unittest.HashFixture(), 1, validatorSet(t, 10), nil, sanitize.ModeLenient)

	require.ErrorIs(t, dropped, sanitize.ErrWrongBitfieldSize)
	require.Len(t, filtered, 3)
	for _, bitfield := range filtered {
		require.Equal(t, expectedBits, bitfield.Payload.Len())
	}
}

// A payload declaring the right bit length over missing or short backing
// bytes is dropped before anything reads its bits.
func TestSanitizeBitfieldsInconsistentStorageDropped(t *testing.T) {
	bitfields := unittest.OrderedBitfieldsFixture(3, expectedBits)
	bitfields[1].Payload = relay.AvailabilityBitfield{Bits: nil, BitLen: expectedBits}

	filtered, dropped := sanitize.SanitizeBitfields(
		bitfields, relay.ZeroDisputed(expectedBits), expectedBits,
		unittest.HashFixture(), 1, validatorSet(t, 10), nil, sanitize.ModeLenient)

	require.ErrorIs(t, dropped, sanitize.ErrWrongBitfieldSize)
	require.Len(t, filtered, 2)
	for _, bitfield := range filtered {
		require.NotPanics(t, func() {
			bitfield.Payload.CountSet()
		})
	}

	verifier := modulemock.NewBitfieldVerifier(t)
	verifier.On("Verify", bitfields[0], parentHash, relay.SessionIndex(1)).Return(nil).Once()

	filtered, err := sanitize.SanitizeBitfields(
		bitfields, relay.ZeroDisputed(expectedBits), expectedBits,
		parentHash, 1, validatorSet(t, 10), verifier, sanitize.ModeStrict)

	require.ErrorIs(t, err, sanitize.ErrWrongBitfieldSize)
	require.Nil(t, filtered)
}

func TestSanitizeBitfieldsDuplicateDropped(t *testing.T) {
	bitfields := []relay.UncheckedBitfield{
		unittest.BitfieldFixture(0, expectedBits),
		unittest.BitfieldFixture(3, expectedBits),
		unittest.BitfieldFixture(3, expectedBits),
		unittest.BitfieldFixture(2, expectedBits),
		unittest.BitfieldFixture(4, expectedBits),
	}

	filtered, dropped := sanitize.SanitizeBitfields(
		bitfields, relay.ZeroDisputed(expectedBits), expectedBits,
		unittest.HashFixture(), 1, validatorSet(t, 10), nil, sanitize.ModeLenient)

	require.ErrorIs(t, dropped, sanitize.ErrBitfieldDuplicateOrUnordered)
	indices := []relay.ValidatorIndex{}
	for _, bitfield := range filtered {
		indices = append(indices, bitfield.ValidatorIndex)
	}
	require.Equal(t, []relay.ValidatorIndex{0, 3, 4}, indices)
}

func TestSanitizeBitfieldsOutOfBoundsDropped(t *testing.T) {
	bitfields := []relay.UncheckedBitfield{
		unittest.BitfieldFixture(0, expectedBits),
		unittest.BitfieldFixture(9, expectedBits),
	}

	filtered, dropped := sanitize.SanitizeBitfields(
		bitfields, relay.ZeroDisputed(expectedBits), expectedBits,
		unittest.HashFixture(), 1, validatorSet(t, 5), nil, sanitize.ModeLenient)

	require.ErrorIs(t, dropped, sanitize.ErrValidatorIndexOutOfBounds)
	require.Len(t, filtered, 1)
}

// Lenient output is strictly increasing by validator index and no longer
// than its input, for arbitrary garbage.
func TestSanitizeBitfieldsLenientMonotonic(t *testing.T) {
	bitfields := []relay.UncheckedBitfield{
		unittest.BitfieldFixture(2, expectedBits),
		unittest.BitfieldFixture(2, expectedBits),
		unittest.BitfieldFixture(1, expectedBits+3),
		unittest.BitfieldFixture(0, expectedBits),
		unittest.BitfieldFixture(7, expectedBits),
		unittest.BitfieldFixture(6, expectedBits),
		unittest.BitfieldFixture(8, expectedBits),
	}

	filtered, _ := sanitize.SanitizeBitfields(
		bitfields, relay.ZeroDisputed(expectedBits), expectedBits,
		unittest.HashFixture(), 1, validatorSet(t, 8), nil, sanitize.ModeLenient)

	require.LessOrEqual(t, len(filtered), len(bitfields))
	for i := 1; i < len(filtered); i++ {
		require.Greater(t, filtered[i].ValidatorIndex, filtered[i-1].ValidatorIndex)
	}
}

func TestSanitizeBitfieldsStrictAbortsOnFirstViolation(t *testing.T) {
	bitfields := unittest.OrderedBitfieldsFixture(3, expectedBits)
	bitfields[1].Payload = relay.NewBitfield(expectedBits - 1)

	verifier := modulemock.NewBitfieldVerifier(t)
	verifier.On("Verify", bitfields[0], parentHash, relay.SessionIndex(1)).Return(nil).Maybe()

	filtered, err := sanitize.SanitizeBitfields(
		bitfields, relay.ZeroDisputed(expectedBits), expectedBits,
		parentHash, 1, validatorSet(t, 10), verifier, sanitize.ModeStrict)

	require.ErrorIs(t, err, sanitize.ErrWrongBitfieldSize)
	require.Nil(t, filtered)
}

func TestSanitizeBitfieldsStrictVerifiesSignatures(t *testing.T) {
	bitfields := unittest.OrderedBitfieldsFixture(2, expectedBits)

	verifier := modulemock.NewBitfieldVerifier(t)
	verifier.On("Verify", bitfields[0], parentHash, relay.SessionIndex(1)).Return(nil).Once()
	verifier.On("Verify", bitfields[1], parentHash, relay.SessionIndex(1)).
		Return(errors.New("bad signature")).Once()

	filtered, err := sanitize.SanitizeBitfields(
		bitfields, relay.ZeroDisputed(expectedBits), expectedBits,
		parentHash, 1, validatorSet(t, 10), verifier, sanitize.ModeStrict)

	require.True(t, sanitize.IsInvalidBitfieldSignatureError(err))
	require.Nil(t, filtered)
}

func TestSanitizeBitfieldsDisputedSizeMismatch(t *testing.T) {
	bitfields := unittest.OrderedBitfieldsFixture(2, expectedBits)

	// the disputed bitfield length is checked in both modes
	for _, mode := range []sanitize.Mode{sanitize.ModeLenient, sanitize.ModeStrict} {
		filtered, err := sanitize.SanitizeBitfields(
			bitfields, relay.ZeroDisputed(expectedBits+1), expectedBits,
			parentHash, 1, validatorSet(t, 10), nil, mode)

		require.ErrorIs(t, err, sanitize.ErrWrongBitfieldSize)
		require.Nil(t, filtered)
	}
}
