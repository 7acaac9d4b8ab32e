package keeper

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"nftstake/x/rewardtoken/types"
)

type msgServer struct {
	k Keeper
}

var _ types.MsgServer = msgServer{}

func NewMsgServerImpl(k Keeper) types.MsgServer {
	return msgServer{k: k}
}

func (m msgServer) GrantMinter(ctx context.Context, msg *types.MsgGrantMinter) (*types.MsgGrantMinterResponse, error) {
	if msg == nil || strings.TrimSpace(msg.Authority) == "" {
		return nil, status.Error(codes.InvalidArgument, "authority required")
	}
	if strings.TrimSpace(msg.Minter) == "" {
		return nil, status.Error(codes.InvalidArgument, "minter required")
	}
	if err := m.k.GrantMinter(ctx, msg.Authority, msg.Denom, msg.Minter); err != nil {
		return nil, err
	}
	return &types.MsgGrantMinterResponse{}, nil
}

func (m msgServer) RevokeMinter(ctx context.Context, msg *types.MsgRevokeMinter) (*types.MsgRevokeMinterResponse, error) {
	if msg == nil || strings.TrimSpace(msg.Authority) == "" {
		return nil, status.Error(codes.InvalidArgument, "authority required")
	}
	if strings.TrimSpace(msg.Denom) == "" {
		return nil, status.Error(codes.InvalidArgument, "denom required")
	}
	if err := m.k.RevokeMinter(ctx, msg.Authority, msg.Denom); err != nil {
		return nil, err
	}
	return &types.MsgRevokeMinterResponse{}, nil
}
