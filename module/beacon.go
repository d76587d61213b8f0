package module

// RandomBeacon provides verifiable per-block randomness. The randomness is a
// pure function of on-chain state as of this block, so every re-executor
// observes the same output.
type RandomBeacon interface {

	// Random returns the block randomness for the given domain tag. The
	// second return value is false when no verifiable randomness is
	// available for this block.
	Random(domainTag []byte) ([]byte, bool)
}

// MessageRelay dispatches cross-chain messages queued by parachains. The
// orchestrator grants it a bounded slice of work at the end of inherent
// processing.
type MessageRelay interface {

	// ProcessPendingUpwardMessages dispatches pending upward messages up to
	// the relay's internal budget.
	ProcessPendingUpwardMessages()
}
