package keeper

import (
	"bytes"
	"context"
	"errors"
	"strconv"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"nftstake/x/nftstake/types"
)

// GetGate returns the access gate, closed when never set.
func (k Keeper) GetGate(ctx context.Context) (types.AccessGate, error) {
	g, err := k.Gate.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.DefaultAccessGate(), nil
		}
		return types.AccessGate{}, err
	}
	return g, nil
}

// InitStaking permits stake operations. Calling it again is a no-op.
func (k Keeper) InitStaking(ctx context.Context, authority string) error {
	if err := k.requireAuthority(authority); err != nil {
		return err
	}
	return k.updateGate(ctx, func(g *types.AccessGate) { g.Initialized = true })
}

// SetClaimable enables or disables reward issuance on unstake.
func (k Keeper) SetClaimable(ctx context.Context, authority string, claimable bool) error {
	if err := k.requireAuthority(authority); err != nil {
		return err
	}
	return k.updateGate(ctx, func(g *types.AccessGate) { g.Claimable = claimable })
}

func (k Keeper) updateGate(ctx context.Context, apply func(*types.AccessGate)) error {
	g, err := k.GetGate(ctx)
	if err != nil {
		return err
	}
	apply(&g)
	if err := k.Gate.Set(ctx, g); err != nil {
		return err
	}

	k.Logger(ctx).Info("access gate updated", "initialized", g.Initialized, "claimable", g.Claimable)
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventGateUpdated,
			sdk.NewAttribute(types.AttrInitialized, strconv.FormatBool(g.Initialized)),
			sdk.NewAttribute(types.AttrClaimable, strconv.FormatBool(g.Claimable)),
		),
	)
	return nil
}

func (k Keeper) requireAuthority(authority string) error {
	addr, err := k.addressCodec.StringToBytes(authority)
	if err != nil {
		return errorsmod.Wrapf(types.ErrUnauthorized, "invalid authority address %q", authority)
	}
	if !bytes.Equal(addr, k.authority) {
		expected, _ := k.addressCodec.BytesToString(k.authority)
		return errorsmod.Wrapf(types.ErrUnauthorized, "expected %s, got %s", expected, authority)
	}
	return nil
}

// openGate loads the gate and fails unless staking has been initialized.
func (k Keeper) openGate(ctx context.Context) (types.AccessGate, error) {
	g, err := k.GetGate(ctx)
	if err != nil {
		return types.AccessGate{}, err
	}
	if !g.Initialized {
		return types.AccessGate{}, types.ErrStakingNotInitialized
	}
	return g, nil
}
