package limit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/filament-chain/filament/model/relay"
	"github.com/filament-chain/filament/state/inherent/limit"
	"github.com/filament-chain/filament/utils/unittest"
)

func TestBackedCandidateWeight(t *testing.T) {
	candidate := unittest.BackedCandidateFixture(unittest.CandidateWithVotes(3))
	require.Equal(t, 3*limit.ValidityVoteWeight, limit.BackedCandidateWeight(&candidate))

	upgrading := unittest.BackedCandidateFixture(
		unittest.CandidateWithVotes(3), unittest.CandidateWithCodeUpgrade())
	require.Equal(t, 3*limit.ValidityVoteWeight+limit.CodeUpgradeWeight,
		limit.BackedCandidateWeight(&upgrading))
}

// Everything fits: the input is returned unchanged, in order.
func TestApplyWeightLimitAllFit(t *testing.T) {
	candidates := []relay.BackedCandidate{
		unittest.BackedCandidateFixture(unittest.CandidateWithVotes(2)),
		unittest.BackedCandidateFixture(unittest.CandidateWithVotes(3)),
	}
	bitfields := unittest.OrderedBitfieldsFixture(3, 5)

	total := 3*limit.BitfieldWeightFixed + 5*limit.ValidityVoteWeight

	weight, keptCandidates, keptBitfields, err := limit.ApplyWeightLimit(
		candidates, bitfields, unittest.EntropyFixture(), total)
	require.NoError(t, err)
	require.Equal(t, total, weight)
	require.Equal(t, candidates, keptCandidates)
	require.Equal(t, bitfields, keptBitfields)
}

// Bitfields fit on their own: all bitfields survive and a sampled subset of
// candidates fills the rest of the budget, in original order.
func TestApplyWeightLimitSamplesCandidates(t *testing.T) {
	candidates := make([]relay.BackedCandidate, 0, 10)
	for i := 0; i < 10; i++ {
		candidates = append(candidates,
			unittest.BackedCandidateFixture(unittest.CandidateWithVotes(4)))
	}
	bitfields := unittest.OrderedBitfieldsFixture(2, 5)

	bitfieldsWeight := 2 * limit.BitfieldWeightFixed
	maxWeight := bitfieldsWeight + 10*limit.ValidityVoteWeight // room for ~2.5 candidates

	weight, keptCandidates, keptBitfields, err := limit.ApplyWeightLimit(
		candidates, bitfields, unittest.EntropyFixture(), maxWeight)
	require.NoError(t, err)
	require.Equal(t, bitfields, keptBitfields)
	require.NotEmpty(t, keptCandidates)
	require.Less(t, len(keptCandidates), len(candidates))

	// sampling stops at the first pick reaching the budget, overshooting by
	// at most one candidate
	require.GreaterOrEqual(t, weight, maxWeight)
	require.Less(t, weight, maxWeight+4*limit.ValidityVoteWeight)

	// kept candidates appear in their original relative order
	positions := indexPositions(candidates, keptCandidates)
	for i := 1; i < len(positions); i++ {
		require.Greater(t, positions[i], positions[i-1])
	}
}

// Four bitfields of 7000 each against a budget of 10000: candidates are
// dropped entirely and bitfields are sampled until the budget is reached.
func TestApplyWeightLimitBitfieldsOverBudget(t *testing.T) {
	candidates := []relay.BackedCandidate{
		unittest.BackedCandidateFixture(unittest.CandidateWithVotes(2)),
	}
	bitfields := unittest.OrderedBitfieldsFixture(4, 5)
	maxWeight := relay.Weight(10_000)

	weight, keptCandidates, keptBitfields, err := limit.ApplyWeightLimit(
		candidates, bitfields, unittest.EntropyFixture(), maxWeight)
	require.NoError(t, err)
	require.Empty(t, keptCandidates)

	// two bitfields reach 14000 >= 10000, the third pick never happens
	require.Len(t, keptBitfields, 2)
	require.Equal(t, 2*limit.BitfieldWeightFixed, weight)

	// original order is preserved
	require.Less(t, keptBitfields[0].ValidatorIndex, keptBitfields[1].ValidatorIndex)
}

// Identical seeds yield identical selections; a different seed is free to
// differ.
func TestApplyWeightLimitDeterministic(t *testing.T) {
	candidates := make([]relay.BackedCandidate, 0, 20)
	for i := 0; i < 20; i++ {
		candidates = append(candidates,
			unittest.BackedCandidateFixture(unittest.CandidateWithVotes(i%5+1)))
	}
	bitfields := unittest.OrderedBitfieldsFixture(4, 5)
	seed := unittest.EntropyFixture()
	maxWeight := 4*limit.BitfieldWeightFixed + 20*limit.ValidityVoteWeight

	for run := 0; run < 10; run++ {
		weightA, candidatesA, bitfieldsA, err := limit.ApplyWeightLimit(
			candidates, bitfields, seed, maxWeight)
		require.NoError(t, err)
		weightB, candidatesB, bitfieldsB, err := limit.ApplyWeightLimit(
			candidates, bitfields, seed, maxWeight)
		require.NoError(t, err)

		require.Equal(t, weightA, weightB)
		require.Equal(t, candidatesA, candidatesB)
		require.Equal(t, bitfieldsA, bitfieldsB)
	}
}

// The accepted weight never exceeds the budget by more than the heaviest
// single item, across many random inputs.
func TestApplyWeightLimitBounded(t *testing.T) {
	for run := 0; run < 50; run++ {
		candidates := make([]relay.BackedCandidate, 0, 8)
		var heaviest relay.Weight
		for i := 0; i < 8; i++ {
			candidate := unittest.BackedCandidateFixture(unittest.CandidateWithVotes(run%7 + 1))
			if w := limit.BackedCandidateWeight(&candidate); w > heaviest {
				heaviest = w
			}
			candidates = append(candidates, candidate)
		}
		bitfields := unittest.OrderedBitfieldsFixture(run%5, 5)
		if limit.BitfieldWeightFixed > heaviest {
			heaviest = limit.BitfieldWeightFixed
		}
		maxWeight := relay.Weight(run * 3_000)

		weight, _, _, err := limit.ApplyWeightLimit(
			candidates, bitfields, unittest.EntropyFixture(), maxWeight)
		require.NoError(t, err)
		require.LessOrEqual(t, weight, maxWeight+heaviest)
	}
}

func TestApplyWeightLimitZeroBudget(t *testing.T) {
	candidates := []relay.BackedCandidate{
		unittest.BackedCandidateFixture(unittest.CandidateWithVotes(2)),
	}
	bitfields := unittest.OrderedBitfieldsFixture(1, 5)

	weight, keptCandidates, keptBitfields, err := limit.ApplyWeightLimit(
		candidates, bitfields, unittest.EntropyFixture(), 0)
	require.NoError(t, err)
	require.Zero(t, weight)
	require.Empty(t, keptCandidates)
	require.Empty(t, keptBitfields)
}

func indexPositions(all []relay.BackedCandidate, kept []relay.BackedCandidate) []int {
	byHash := make(map[relay.CandidateHash]int, len(all))
	for i := range all {
		byHash[all[i].Hash()] = i
	}
	positions := make([]int, 0, len(kept))
	for i := range kept {
		positions = append(positions, byHash[kept[i].Hash()])
	}
	return positions
}
