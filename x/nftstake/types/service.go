package types

import "context"

// MsgServer handles every state-changing message of the module.
type MsgServer interface {
	InitStaking(context.Context, *MsgInitStaking) (*MsgInitStakingResponse, error)
	SetClaimable(context.Context, *MsgSetClaimable) (*MsgSetClaimableResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
	StakeUnique(context.Context, *MsgStakeUnique) (*MsgStakeUniqueResponse, error)
	UnstakeUnique(context.Context, *MsgUnstakeUnique) (*MsgUnstakeUniqueResponse, error)
	BatchStakeUnique(context.Context, *MsgBatchStakeUnique) (*MsgBatchStakeUniqueResponse, error)
	BatchUnstakeUnique(context.Context, *MsgBatchUnstakeUnique) (*MsgBatchUnstakeUniqueResponse, error)
	StakeFungible(context.Context, *MsgStakeFungible) (*MsgStakeFungibleResponse, error)
	UnstakeFungible(context.Context, *MsgUnstakeFungible) (*MsgUnstakeFungibleResponse, error)
	BatchStakeFungible(context.Context, *MsgBatchStakeFungible) (*MsgBatchStakeFungibleResponse, error)
	BatchUnstakeFungible(context.Context, *MsgBatchUnstakeFungible) (*MsgBatchUnstakeFungibleResponse, error)
}

// QueryServer answers read-only requests against the ledger.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Gate(context.Context, *QueryGateRequest) (*QueryGateResponse, error)
	Staked(context.Context, *QueryStakedRequest) (*QueryStakedResponse, error)
	StakedFungible(context.Context, *QueryStakedFungibleRequest) (*QueryStakedFungibleResponse, error)
	OwnerStakes(context.Context, *QueryOwnerStakesRequest) (*QueryOwnerStakesResponse, error)
}
