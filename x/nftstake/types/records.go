package types

import (
	"cosmossdk.io/math"
)

// UniqueStakeRecord is the live custody record of one unique asset. At most
// one record exists per asset id.
type UniqueStakeRecord struct {
	Owner    string `json:"owner"`
	AssetID  string `json:"asset_id"`
	StakedAt int64  `json:"staked_at"`
}

// StakeInfo answers "has owner staked this asset". Amount is 1 while the
// owner's record is live and 0 otherwise.
type StakeInfo struct {
	Owner    string `json:"owner"`
	AssetID  string `json:"asset_id"`
	Amount   uint64 `json:"amount"`
	StakedAt int64  `json:"staked_at,omitempty"`
}

// FungibleStakeEntry is one stake action of a fungible asset type. Index is
// the entry's stable position within its owner/type arena.
type FungibleStakeEntry struct {
	Index    uint64   `json:"index"`
	Amount   math.Int `json:"amount"`
	StakedAt int64    `json:"staked_at"`
}

// FungibleStake groups the live entries an owner holds for one type.
type FungibleStake struct {
	TypeID  uint64               `json:"type_id"`
	Entries []FungibleStakeEntry `json:"entries"`
}

// TotalAmount sums the entries of the group.
func (s FungibleStake) TotalAmount() math.Int {
	total := math.ZeroInt()
	for _, e := range s.Entries {
		total = total.Add(e.Amount)
	}
	return total
}
