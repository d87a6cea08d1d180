package types

// ProofStatus is the state of a proof submission
type ProofStatus string

const (
	StatusSubmitted            ProofStatus = "submitted"
	StatusAwaitingVerification ProofStatus = "awaiting_verification"
	StatusVerified             ProofStatus = "verified"
	StatusCredited             ProofStatus = "credited"
	StatusRejected             ProofStatus = "rejected"
	StatusReplayRejected       ProofStatus = "replay_rejected"
	// StatusCreditFailed is set on a recorded proof whose ledger call failed
	StatusCreditFailed ProofStatus = "credit_failed"
)

func (s ProofStatus) String() string {
	return string(s)
}

// IsTerminal reports whether no further transition can happen from the status
func (s ProofStatus) IsTerminal() bool {
	switch s {
	case StatusCredited, StatusRejected, StatusReplayRejected:
		return true
	default:
		return false
	}
}

// ProofKind is the bridge path a proof was submitted through
type ProofKind string

const (
	KindDeposit ProofKind = "deposit"
	KindUnlock  ProofKind = "unlock"
)
