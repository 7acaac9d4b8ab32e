package types

const (
	EventStakeUnique     = "nftstake.stake_unique"
	EventUnstakeUnique   = "nftstake.unstake_unique"
	EventStakeFungible   = "nftstake.stake_fungible"
	EventUnstakeFungible = "nftstake.unstake_fungible"
	EventRewardMinted    = "nftstake.reward_minted"
	EventGateUpdated     = "nftstake.gate_updated"
)

const (
	AttrOwner       = "owner"
	AttrAssetID     = "asset_id"
	AttrTypeID      = "type_id"
	AttrEntryIndex  = "entry_index"
	AttrAmount      = "amount"
	AttrReward      = "reward"
	AttrInitialized = "initialized"
	AttrClaimable   = "claimable"
)
