package relay

// CoreAssignment maps an availability core to the parachain scheduled on it
// for the current block, along with the backing group responsible for it.
type CoreAssignment struct {
	Core  CoreIndex
	Para  ParaID
	Group GroupIndex
}

// FreedReason explains why an availability core was vacated.
type FreedReason uint8

const (
	// FreedConcluded means the core's candidate gathered enough availability
	// votes, or its dispute concluded.
	FreedConcluded FreedReason = iota
	// FreedTimedOut means the core's candidate timed out waiting for
	// availability.
	FreedTimedOut
)

// FreedCore pairs a vacated core with the reason it was vacated, consumed by
// the scheduler when rescheduling.
type FreedCore struct {
	Core   CoreIndex
	Reason FreedReason
}
