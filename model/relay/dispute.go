package relay

// DisputeStatementKind distinguishes votes for and against the validity of a
// disputed candidate.
type DisputeStatementKind uint8

const (
	// DisputeStatementValid is a vote asserting the candidate is valid.
	DisputeStatementValid DisputeStatementKind = iota
	// DisputeStatementInvalid is a vote asserting the candidate is invalid.
	DisputeStatementInvalid
)

// DisputeStatement is a single validator's vote within a dispute.
type DisputeStatement struct {
	Kind           DisputeStatementKind `cbor:"1,keyasint"`
	ValidatorIndex ValidatorIndex       `cbor:"2,keyasint"`
	Signature      []byte               `cbor:"3,keyasint"`
}

// DisputeStatementSet is a set of dispute votes for one candidate within one
// session.
type DisputeStatementSet struct {
	Session       SessionIndex       `cbor:"1,keyasint"`
	CandidateHash CandidateHash      `cbor:"2,keyasint"`
	Statements    []DisputeStatement `cbor:"3,keyasint"`
}
