// Package limit confines accepted inherent data to the block's weight
// budget. Selection under pressure is randomized but reproducible: it is
// seeded exclusively from block-derived entropy, so the author's dry run and
// every re-execution agree on the accepted subset.
package limit

import (
	"fmt"
	"sort"

	"github.com/onflow/flow-go/crypto/random"

	"github.com/filament-chain/filament/model/relay"
	"github.com/filament-chain/filament/state/inherent/entropy"
)

const (
	// BitfieldWeightFixed is the processing cost of one availability
	// bitfield.
	BitfieldWeightFixed relay.Weight = 7_000

	// ValidityVoteWeight is the verification cost of one backing vote.
	ValidityVoteWeight relay.Weight = 1_000

	// CodeUpgradeWeight is the surcharge for a candidate carrying a runtime
	// code upgrade.
	CodeUpgradeWeight relay.Weight = 10_000
)

// selection customizer for the weight-limiting PRG, at most 12 bytes
var selectionCustomizer = []byte("inherent-sel")

// BackedCandidateWeight returns the processing cost of one backed candidate.
func BackedCandidateWeight(candidate *relay.BackedCandidate) relay.Weight {
	weight := relay.Weight(len(candidate.ValidityVotes)) * ValidityVoteWeight
	if candidate.HasCodeUpgrade() {
		weight += CodeUpgradeWeight
	}
	return weight
}

// BitfieldWeight returns the processing cost of one bitfield.
func BitfieldWeight(_ *relay.UncheckedBitfield) relay.Weight {
	return BitfieldWeightFixed
}

// ApplyWeightLimit confines candidates and bitfields to maxWeight.
//
// If everything fits, everything is returned unchanged. Otherwise bitfields
// take priority: if they fit on their own, all bitfields are kept and a
// random subset of candidates fills the remaining budget; if even the
// bitfields exceed the budget, all candidates are dropped and a random
// subset of bitfields is kept.
//
// Sampling is without replacement and stops once the accumulated weight
// first reaches or exceeds the applicable budget, so a fallback subset may
// overshoot the budget by at most one item. Selected items are returned in
// their original input order.
func ApplyWeightLimit(
	candidates []relay.BackedCandidate,
	bitfields []relay.UncheckedBitfield,
	seed [32]byte,
	maxWeight relay.Weight,
) (relay.Weight, []relay.BackedCandidate, []relay.UncheckedBitfield, error) {

	var totalBitfieldsWeight relay.Weight
	for i := range bitfields {
		totalBitfieldsWeight += BitfieldWeight(&bitfields[i])
	}
	var totalCandidatesWeight relay.Weight
	for i := range candidates {
		totalCandidatesWeight += BackedCandidateWeight(&candidates[i])
	}

	total := totalBitfieldsWeight + totalCandidatesWeight
	if total <= maxWeight {
		return total, candidates, bitfields, nil
	}

	rng, err := entropy.PRG(seed, selectionCustomizer)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("could not seed selection PRG: %w", err)
	}

	// bitfields fit: keep them all, fill the remainder with candidates
	if totalBitfieldsWeight <= maxWeight {
		remaining := maxWeight - totalBitfieldsWeight
		pickedWeight, picked := randomSelect(rng, len(candidates), func(i int) relay.Weight {
			return BackedCandidateWeight(&candidates[i])
		}, remaining)

		selected := make([]relay.BackedCandidate, 0, len(picked))
		for _, idx := range picked {
			selected = append(selected, candidates[idx])
		}
		return totalBitfieldsWeight + pickedWeight, selected, bitfields, nil
	}

	// even the bitfields alone are over budget: drop all candidates and keep
	// a sampled subset of bitfields
	pickedWeight, picked := randomSelect(rng, len(bitfields), func(i int) relay.Weight {
		return BitfieldWeight(&bitfields[i])
	}, maxWeight)

	selected := make([]relay.UncheckedBitfield, 0, len(picked))
	for _, idx := range picked {
		selected = append(selected, bitfields[idx])
	}
	return pickedWeight, nil, selected, nil
}

// randomSelect samples indices of [0,n) without replacement until the
// accumulated weight reaches or exceeds the limit, or all indices are
// picked. The picked indices are returned sorted, so selected items retain
// their original order.
func randomSelect(rng random.Rand, n int, weightOf func(int) relay.Weight, limit relay.Weight) (relay.Weight, []int) {
	indices := make([]int, n)
	for i := 0; i < n; i++ {
		indices[i] = i
	}

	picked := make([]int, 0, n)
	var accumulated relay.Weight
	for accumulated < limit && len(indices) > 0 {
		pick := int(rng.UintN(uint64(len(indices))))
		idx := indices[pick]
		indices[pick] = indices[len(indices)-1]
		indices = indices[:len(indices)-1]

		picked = append(picked, idx)
		accumulated += weightOf(idx)
	}

	sort.Ints(picked)
	return accumulated, picked
}
