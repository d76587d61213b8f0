package relay

// Header is a relay-chain block header.
type Header struct {
	// ParentHash is the hash of the parent block.
	ParentHash Hash `cbor:"1,keyasint"`
	// Number is the height of the block.
	Number BlockNumber `cbor:"2,keyasint"`
	// StateRoot is the root of the state trie after executing the block.
	StateRoot Hash `cbor:"3,keyasint"`
	// ExtrinsicsRoot is the root of the block body trie.
	ExtrinsicsRoot Hash `cbor:"4,keyasint"`
}

// Hash returns the header hash.
func (h *Header) Hash() Hash {
	return MakeHash(h)
}
