package keeper

import (
	"context"
	"strings"

	"cosmossdk.io/collections"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"nftstake/x/rewardtoken/types"
)

type queryServer struct {
	k Keeper
}

var _ types.QueryServer = queryServer{}

func NewQueryServerImpl(k Keeper) types.QueryServer {
	return queryServer{k: k}
}

func (q queryServer) Minter(ctx context.Context, req *types.QueryMinterRequest) (*types.QueryMinterResponse, error) {
	if req == nil || strings.TrimSpace(req.Denom) == "" {
		return nil, status.Error(codes.InvalidArgument, "denom required")
	}
	minter, err := q.k.GetMinter(ctx, req.Denom)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}
	return &types.QueryMinterResponse{Minter: minter}, nil
}

func (q queryServer) DenomsByMinter(ctx context.Context, req *types.QueryDenomsByMinterRequest) (*types.QueryDenomsByMinterResponse, error) {
	if req == nil || strings.TrimSpace(req.Minter) == "" {
		return nil, status.Error(codes.InvalidArgument, "minter required")
	}

	denoms := make([]string, 0)
	rng := collections.NewPrefixedPairRange[string, string](req.Minter)
	err := q.k.MinterDenoms.Walk(ctx, rng, func(key collections.Pair[string, string]) (bool, error) {
		denoms = append(denoms, key.K2())
		return false, nil
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryDenomsByMinterResponse{Denoms: denoms}, nil
}
