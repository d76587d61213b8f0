package relay_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/filament-chain/filament/model/relay"
)

func TestBitfieldSetAndGet(t *testing.T) {
	bitfield := relay.NewBitfield(10)
	require.Equal(t, 10, bitfield.Len())
	require.Zero(t, bitfield.CountSet())

	require.NoError(t, bitfield.SetBit(0, true))
	require.NoError(t, bitfield.SetBit(7, true))
	require.NoError(t, bitfield.SetBit(8, true))
	require.True(t, bitfield.Bit(0))
	require.True(t, bitfield.Bit(7))
	require.True(t, bitfield.Bit(8))
	require.False(t, bitfield.Bit(1))
	require.Equal(t, 3, bitfield.CountSet())

	require.NoError(t, bitfield.SetBit(7, false))
	require.False(t, bitfield.Bit(7))
	require.Equal(t, 2, bitfield.CountSet())
}

func TestBitfieldBounds(t *testing.T) {
	bitfield := relay.NewBitfield(3)
	require.Error(t, bitfield.SetBit(3, true))
	require.Error(t, bitfield.SetBit(-1, true))

	// out-of-range reads are unset rather than a panic
	require.False(t, bitfield.Bit(3))
	require.False(t, bitfield.Bit(-1))
}

func TestBitfieldValid(t *testing.T) {
	require.True(t, relay.NewBitfield(0).Valid())
	require.True(t, relay.NewBitfield(5).Valid())
	require.True(t, relay.NewBitfield(8).Valid())

	// a decoded payload may declare a length its storage does not back
	require.False(t, relay.AvailabilityBitfield{Bits: nil, BitLen: 5}.Valid())
	require.False(t, relay.AvailabilityBitfield{Bits: make([]byte, 1), BitLen: 9}.Valid())
	require.False(t, relay.AvailabilityBitfield{Bits: make([]byte, 2), BitLen: 5}.Valid())
	require.False(t, relay.AvailabilityBitfield{Bits: nil, BitLen: -1}.Valid())
}

func TestDisputedFromCores(t *testing.T) {
	disputed := relay.DisputedFromCores([]relay.CoreIndex{0, 2, 9}, 5)
	require.Equal(t, 5, disputed.Len())
	require.True(t, disputed.Bit(0))
	require.True(t, disputed.Bit(2))
	// core 9 is beyond the bitfield and ignored
	require.Equal(t, 2, disputed.CountSet())

	require.Zero(t, relay.ZeroDisputed(5).CountSet())
}
