// Package entropy derives the per-block randomness used for deterministic
// selection of inherent data. The entropy is a pure function of on-chain
// state as of the parent block, so the block author and every re-executor
// compute the identical value.
package entropy

import (
	"fmt"

	"github.com/onflow/flow-go/crypto/hash"
	"github.com/onflow/flow-go/crypto/random"

	"github.com/filament-chain/filament/model/relay"
	"github.com/filament-chain/filament/module"
)

// CandidateSeedSubject is the domain tag under which block randomness is
// requested for candidate and bitfield selection. Exactly 32 bytes.
const CandidateSeedSubject = "candidate-seed-selection-subject"

// BlockEntropy returns 32 bytes of entropy for the current block: the
// verifiable beacon output for the candidate-selection domain when present,
// else the parent block hash. The domain tag itself is the fallback of last
// resort and is only visible if the beacon output is shorter than 32 bytes.
func BlockEntropy(beacon module.RandomBeacon, parentHash relay.Hash) [32]byte {
	var entropy [32]byte
	copy(entropy[:], CandidateSeedSubject)

	vrfRandom, ok := beacon.Random([]byte(CandidateSeedSubject))
	if ok {
		copy(entropy[:], vrfRandom)
		return entropy
	}

	// without verifiable randomness the parent hash is the best available
	// block-derived seed
	copy(entropy[:], parentHash[:])
	return entropy
}

// PRG returns a deterministic random generator seeded from the given block
// entropy. The customizer diversifies generators for distinct tasks drawing
// from the same entropy.
//
// The entropy is hashed before seeding to uniformize it, since the fallback
// path feeds in a block hash rather than a beacon output.
func PRG(entropy [32]byte, customizer []byte) (random.Rand, error) {
	var seed [hash.HashLenSHA3_256]byte
	hash.ComputeSHA3_256(&seed, entropy[:])

	rng, err := random.NewChacha20PRG(seed[:], customizer)
	if err != nil {
		return nil, fmt.Errorf("could not create ChaCha20 PRG: %w", err)
	}
	return rng, nil
}
