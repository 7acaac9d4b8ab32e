package keeper

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"nftstake/x/nftstake/types"
)

type queryServer struct {
	k Keeper
}

var _ types.QueryServer = queryServer{}

func NewQueryServerImpl(k Keeper) types.QueryServer {
	return queryServer{k: k}
}

func (q queryServer) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	p, err := q.k.GetParams(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryParamsResponse{Params: p}, nil
}

func (q queryServer) Gate(ctx context.Context, req *types.QueryGateRequest) (*types.QueryGateResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	g, err := q.k.GetGate(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryGateResponse{Gate: g}, nil
}

func (q queryServer) Staked(ctx context.Context, req *types.QueryStakedRequest) (*types.QueryStakedResponse, error) {
	if req == nil || strings.TrimSpace(req.AssetID) == "" {
		return nil, status.Error(codes.InvalidArgument, "asset_id required")
	}
	owner, err := q.k.addressCodec.StringToBytes(req.Owner)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid owner address")
	}
	info, err := q.k.GetStaked(ctx, owner, req.AssetID)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryStakedResponse{Stake: info}, nil
}

func (q queryServer) StakedFungible(ctx context.Context, req *types.QueryStakedFungibleRequest) (*types.QueryStakedFungibleResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	owner, err := q.k.addressCodec.StringToBytes(req.Owner)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid owner address")
	}
	entries, err := q.k.GetStakedFungible(ctx, owner, req.TypeID)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryStakedFungibleResponse{Entries: entries}, nil
}

func (q queryServer) OwnerStakes(ctx context.Context, req *types.QueryOwnerStakesRequest) (*types.QueryOwnerStakesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	owner, err := q.k.addressCodec.StringToBytes(req.Owner)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid owner address")
	}
	unique, err := q.k.GetAllStakedUnique(ctx, owner)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	fungible, err := q.k.GetAllStakedFungible(ctx, owner)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryOwnerStakesResponse{Unique: unique, Fungible: fungible}, nil
}
