package types

// AccessGate holds the operator controlled switches read by every ledger
// operation.
type AccessGate struct {
	Initialized bool `json:"initialized"`
	Claimable   bool `json:"claimable"`
}

// DefaultAccessGate keeps staking closed until an operator opens it.
func DefaultAccessGate() AccessGate {
	return AccessGate{}
}
