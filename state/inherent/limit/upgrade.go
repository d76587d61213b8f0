package limit

import (
	"github.com/filament-chain/filament/model/relay"
)

// MaxCodeUpgrades caps the number of runtime code upgrades per block. This
// is a practical execution concern, not a scheduling rule.
const MaxCodeUpgrades = 1

// LimitBackedCandidates keeps at most MaxCodeUpgrades upgrade-carrying
// candidates, scanning in order and dropping subsequent ones. If the block
// has already consumed more than its maximum weight through unrelated work,
// all candidates are dropped: skipping them all is fairer than trusting the
// author's ordering to decide which ones fit.
func LimitBackedCandidates(
	candidates []relay.BackedCandidate,
	consumedWeight relay.Weight,
	maxBlockWeight relay.Weight,
) []relay.BackedCandidate {

	capped := make([]relay.BackedCandidate, 0, len(candidates))
	codeUpgrades := 0
	for i := range candidates {
		if candidates[i].HasCodeUpgrade() {
			if codeUpgrades >= MaxCodeUpgrades {
				continue
			}
			codeUpgrades++
		}
		capped = append(capped, candidates[i])
	}

	if consumedWeight > maxBlockWeight {
		return nil
	}
	return capped
}
