package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"nftstake/x/nftstake/types"
)

// GetStaked reports whether owner currently has assetID staked. Absence is
// not an error.
func (k Keeper) GetStaked(ctx context.Context, owner sdk.AccAddress, assetID string) (types.StakeInfo, error) {
	ownerStr, err := k.ownerString(owner)
	if err != nil {
		return types.StakeInfo{}, err
	}
	info := types.StakeInfo{Owner: ownerStr, AssetID: assetID}

	rec, err := k.UniqueStakes.Get(ctx, assetID)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return info, nil
		}
		return types.StakeInfo{}, err
	}
	if rec.Owner != ownerStr {
		return info, nil
	}
	info.Amount = 1
	info.StakedAt = rec.StakedAt
	return info, nil
}

// GetStakedFungible lists the live entries owner holds for typeID in index
// order.
func (k Keeper) GetStakedFungible(ctx context.Context, owner sdk.AccAddress, typeID uint64) ([]types.FungibleStakeEntry, error) {
	ownerStr, err := k.ownerString(owner)
	if err != nil {
		return nil, err
	}
	entries := []types.FungibleStakeEntry{}
	rng := collections.NewSuperPrefixedTripleRange[string, uint64, uint64](ownerStr, typeID)
	err = k.FungibleEntries.Walk(ctx, rng, func(_ collections.Triple[string, uint64, uint64], e types.FungibleStakeEntry) (bool, error) {
		entries = append(entries, e)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// GetAllStakedUnique lists every unique asset owner has staked.
func (k Keeper) GetAllStakedUnique(ctx context.Context, owner sdk.AccAddress) ([]types.UniqueStakeRecord, error) {
	ownerStr, err := k.ownerString(owner)
	if err != nil {
		return nil, err
	}
	out := []types.UniqueStakeRecord{}
	rng := collections.NewPrefixedPairRange[string, string](ownerStr)
	err = k.OwnerUniqueStakes.Walk(ctx, rng, func(key collections.Pair[string, string]) (bool, error) {
		rec, err := k.UniqueStakes.Get(ctx, key.K2())
		if err != nil {
			return true, err
		}
		out = append(out, rec)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetAllStakedFungible groups owner's live entries by type.
func (k Keeper) GetAllStakedFungible(ctx context.Context, owner sdk.AccAddress) ([]types.FungibleStake, error) {
	ownerStr, err := k.ownerString(owner)
	if err != nil {
		return nil, err
	}
	out := []types.FungibleStake{}
	rng := collections.NewPrefixedTripleRange[string, uint64, uint64](ownerStr)
	err = k.FungibleEntries.Walk(ctx, rng, func(key collections.Triple[string, uint64, uint64], e types.FungibleStakeEntry) (bool, error) {
		if n := len(out); n == 0 || out[n-1].TypeID != key.K2() {
			out = append(out, types.FungibleStake{TypeID: key.K2()})
		}
		last := &out[len(out)-1]
		last.Entries = append(last.Entries, e)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
