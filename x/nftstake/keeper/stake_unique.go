package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"nftstake/x/nftstake/types"
)

// StakeUnique moves one unique asset from owner into custody.
func (k Keeper) StakeUnique(ctx context.Context, owner sdk.AccAddress, assetID string) error {
	return k.BatchStakeUnique(ctx, owner, []string{assetID})
}

// UnstakeUnique returns one unique asset to the owner that staked it and pays
// the reward when claimable.
func (k Keeper) UnstakeUnique(ctx context.Context, owner sdk.AccAddress, assetID string) (sdk.Coin, error) {
	return k.BatchUnstakeUnique(ctx, owner, []string{assetID})
}

// BatchStakeUnique stakes every asset in order. Either all assets are staked
// or none are.
func (k Keeper) BatchStakeUnique(ctx context.Context, owner sdk.AccAddress, assetIDs []string) error {
	err := k.atomically(ctx, func(ctx sdk.Context) (sdk.Events, error) {
		if _, err := k.openGate(ctx); err != nil {
			return nil, err
		}
		params, err := k.GetParams(ctx)
		if err != nil {
			return nil, err
		}
		if err := checkBatchSize(params, len(assetIDs)); err != nil {
			return nil, err
		}
		ownerStr, err := k.ownerString(owner)
		if err != nil {
			return nil, err
		}

		seen := make(map[string]struct{}, len(assetIDs))
		for _, id := range assetIDs {
			holder, err := k.uniqueRegistry.OwnerOf(ctx, params.UniqueClassID, id)
			if err != nil {
				return nil, err
			}
			if !holder.Equals(owner) {
				return nil, types.ErrNotAssetOwner
			}
			if _, dup := seen[id]; dup {
				return nil, types.ErrAlreadyStaked
			}
			staked, err := k.UniqueStakes.Has(ctx, id)
			if err != nil {
				return nil, err
			}
			if staked {
				return nil, types.ErrAlreadyStaked
			}
			seen[id] = struct{}{}
		}

		now := ctx.BlockTime().Unix()
		for _, id := range assetIDs {
			rec := types.UniqueStakeRecord{Owner: ownerStr, AssetID: id, StakedAt: now}
			if err := k.UniqueStakes.Set(ctx, id, rec); err != nil {
				return nil, err
			}
			if err := k.OwnerUniqueStakes.Set(ctx, collections.Join(ownerStr, id)); err != nil {
				return nil, err
			}
		}

		custodian := k.ModuleAddress()
		events := make(sdk.Events, 0, len(assetIDs))
		for _, id := range assetIDs {
			if err := k.uniqueRegistry.TransferCustody(ctx, params.UniqueClassID, id, owner, custodian); err != nil {
				return nil, errorsmod.Wrapf(types.ErrCustodyTransferFailure, "asset %s: %s", id, err)
			}
			k.Logger(ctx).Debug("unique asset staked", "owner", ownerStr, "asset_id", id)
			events = append(events, sdk.NewEvent(
				types.EventStakeUnique,
				sdk.NewAttribute(types.AttrOwner, ownerStr),
				sdk.NewAttribute(types.AttrAssetID, id),
			))
		}
		return events, nil
	})
	if err != nil {
		return err
	}

	telemetry.IncrCounter(float32(len(assetIDs)), types.ModuleName, "stake_unique")
	return nil
}

// BatchUnstakeUnique returns every asset to owner and mints the summed reward
// once. Either all assets are returned or none are.
func (k Keeper) BatchUnstakeUnique(ctx context.Context, owner sdk.AccAddress, assetIDs []string) (sdk.Coin, error) {
	var reward sdk.Coin
	err := k.atomically(ctx, func(ctx sdk.Context) (sdk.Events, error) {
		gate, err := k.openGate(ctx)
		if err != nil {
			return nil, err
		}
		params, err := k.GetParams(ctx)
		if err != nil {
			return nil, err
		}
		if err := checkBatchSize(params, len(assetIDs)); err != nil {
			return nil, err
		}
		ownerStr, err := k.ownerString(owner)
		if err != nil {
			return nil, err
		}

		records := make([]types.UniqueStakeRecord, 0, len(assetIDs))
		seen := make(map[string]struct{}, len(assetIDs))
		for _, id := range assetIDs {
			if _, dup := seen[id]; dup {
				return nil, types.ErrNotStaker
			}
			rec, err := k.UniqueStakes.Get(ctx, id)
			if err != nil {
				if errors.Is(err, collections.ErrNotFound) {
					return nil, types.ErrNotStaker
				}
				return nil, err
			}
			if rec.Owner != ownerStr {
				return nil, types.ErrNotStaker
			}
			seen[id] = struct{}{}
			records = append(records, rec)
		}

		tally := k.newRewardTally(ctx, gate, params)
		for _, rec := range records {
			if err := k.UniqueStakes.Remove(ctx, rec.AssetID); err != nil {
				return nil, err
			}
			if err := k.OwnerUniqueStakes.Remove(ctx, collections.Join(ownerStr, rec.AssetID)); err != nil {
				return nil, err
			}
			tally.add(oneUnit, rec.StakedAt)
		}

		custodian := k.ModuleAddress()
		events := make(sdk.Events, 0, len(records)+1)
		for _, rec := range records {
			if err := k.uniqueRegistry.TransferCustody(ctx, params.UniqueClassID, rec.AssetID, custodian, owner); err != nil {
				return nil, errorsmod.Wrapf(types.ErrCustodyTransferFailure, "asset %s: %s", rec.AssetID, err)
			}
			k.Logger(ctx).Debug("unique asset unstaked", "owner", ownerStr, "asset_id", rec.AssetID)
			events = append(events, sdk.NewEvent(
				types.EventUnstakeUnique,
				sdk.NewAttribute(types.AttrOwner, ownerStr),
				sdk.NewAttribute(types.AttrAssetID, rec.AssetID),
			))
		}

		coin, mintEvents, err := k.issueReward(ctx, owner, ownerStr, params.RewardDenom, tally)
		if err != nil {
			return nil, err
		}
		reward = coin
		return append(events, mintEvents...), nil
	})
	if err != nil {
		return sdk.Coin{}, err
	}

	telemetry.IncrCounter(float32(len(assetIDs)), types.ModuleName, "unstake_unique")
	return reward, nil
}

func checkBatchSize(params types.Params, n int) error {
	if uint64(n) > uint64(params.MaxBatchSize) {
		return errorsmod.Wrapf(types.ErrBatchTooLarge, "%d items, max %d", n, params.MaxBatchSize)
	}
	return nil
}
