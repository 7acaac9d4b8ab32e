package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"nftstake/x/nftstake/types"
)

type msgServer struct {
	Keeper
}

var _ types.MsgServer = msgServer{}

func NewMsgServerImpl(k Keeper) types.MsgServer {
	return &msgServer{Keeper: k}
}

func (m msgServer) owner(addr string) (sdk.AccAddress, error) {
	bz, err := m.addressCodec.StringToBytes(addr)
	if err != nil {
		return nil, errorsmod.Wrapf(types.ErrInvalidRequest, "invalid owner address: %s", err)
	}
	return bz, nil
}

func (m msgServer) InitStaking(ctx context.Context, req *types.MsgInitStaking) (*types.MsgInitStakingResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest
	}
	if err := req.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := m.Keeper.InitStaking(ctx, req.Authority); err != nil {
		return nil, err
	}
	return &types.MsgInitStakingResponse{}, nil
}

func (m msgServer) SetClaimable(ctx context.Context, req *types.MsgSetClaimable) (*types.MsgSetClaimableResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest
	}
	if err := req.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := m.Keeper.SetClaimable(ctx, req.Authority, req.Claimable); err != nil {
		return nil, err
	}
	return &types.MsgSetClaimableResponse{}, nil
}

func (m msgServer) UpdateParams(ctx context.Context, req *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest
	}
	if err := req.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := m.Keeper.UpdateParams(ctx, req.Authority, req.Params); err != nil {
		return nil, err
	}
	return &types.MsgUpdateParamsResponse{}, nil
}

func (m msgServer) StakeUnique(ctx context.Context, req *types.MsgStakeUnique) (*types.MsgStakeUniqueResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest
	}
	if err := req.ValidateBasic(); err != nil {
		return nil, err
	}
	owner, err := m.owner(req.Owner)
	if err != nil {
		return nil, err
	}
	if err := m.Keeper.StakeUnique(ctx, owner, req.AssetID); err != nil {
		return nil, err
	}
	return &types.MsgStakeUniqueResponse{}, nil
}

func (m msgServer) UnstakeUnique(ctx context.Context, req *types.MsgUnstakeUnique) (*types.MsgUnstakeUniqueResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest
	}
	if err := req.ValidateBasic(); err != nil {
		return nil, err
	}
	owner, err := m.owner(req.Owner)
	if err != nil {
		return nil, err
	}
	reward, err := m.Keeper.UnstakeUnique(ctx, owner, req.AssetID)
	if err != nil {
		return nil, err
	}
	return &types.MsgUnstakeUniqueResponse{Reward: reward}, nil
}

func (m msgServer) BatchStakeUnique(ctx context.Context, req *types.MsgBatchStakeUnique) (*types.MsgBatchStakeUniqueResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest
	}
	if err := req.ValidateBasic(); err != nil {
		return nil, err
	}
	owner, err := m.owner(req.Owner)
	if err != nil {
		return nil, err
	}
	if err := m.Keeper.BatchStakeUnique(ctx, owner, req.AssetIDs); err != nil {
		return nil, err
	}
	return &types.MsgBatchStakeUniqueResponse{}, nil
}

func (m msgServer) BatchUnstakeUnique(ctx context.Context, req *types.MsgBatchUnstakeUnique) (*types.MsgBatchUnstakeUniqueResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest
	}
	if err := req.ValidateBasic(); err != nil {
		return nil, err
	}
	owner, err := m.owner(req.Owner)
	if err != nil {
		return nil, err
	}
	reward, err := m.Keeper.BatchUnstakeUnique(ctx, owner, req.AssetIDs)
	if err != nil {
		return nil, err
	}
	return &types.MsgBatchUnstakeUniqueResponse{Reward: reward}, nil
}

func (m msgServer) StakeFungible(ctx context.Context, req *types.MsgStakeFungible) (*types.MsgStakeFungibleResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest
	}
	if err := req.ValidateBasic(); err != nil {
		return nil, err
	}
	owner, err := m.owner(req.Owner)
	if err != nil {
		return nil, err
	}
	idx, err := m.Keeper.StakeFungible(ctx, owner, req.TypeID, req.Amount)
	if err != nil {
		return nil, err
	}
	return &types.MsgStakeFungibleResponse{Index: idx}, nil
}

func (m msgServer) UnstakeFungible(ctx context.Context, req *types.MsgUnstakeFungible) (*types.MsgUnstakeFungibleResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest
	}
	if err := req.ValidateBasic(); err != nil {
		return nil, err
	}
	owner, err := m.owner(req.Owner)
	if err != nil {
		return nil, err
	}
	reward, err := m.Keeper.UnstakeFungible(ctx, owner, req.TypeID, req.Index)
	if err != nil {
		return nil, err
	}
	return &types.MsgUnstakeFungibleResponse{Reward: reward}, nil
}

func (m msgServer) BatchStakeFungible(ctx context.Context, req *types.MsgBatchStakeFungible) (*types.MsgBatchStakeFungibleResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest
	}
	if err := req.ValidateBasic(); err != nil {
		return nil, err
	}
	owner, err := m.owner(req.Owner)
	if err != nil {
		return nil, err
	}
	indices, err := m.Keeper.BatchStakeFungible(ctx, owner, req.TypeIDs, req.Amounts)
	if err != nil {
		return nil, err
	}
	return &types.MsgBatchStakeFungibleResponse{Indices: indices}, nil
}

func (m msgServer) BatchUnstakeFungible(ctx context.Context, req *types.MsgBatchUnstakeFungible) (*types.MsgBatchUnstakeFungibleResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest
	}
	if err := req.ValidateBasic(); err != nil {
		return nil, err
	}
	owner, err := m.owner(req.Owner)
	if err != nil {
		return nil, err
	}
	reward, err := m.Keeper.BatchUnstakeFungible(ctx, owner, req.TypeIDs, req.Indices)
	if err != nil {
		return nil, err
	}
	return &types.MsgBatchUnstakeFungibleResponse{Reward: reward}, nil
}
