package keeper

import (
	"context"
	"errors"
	"strconv"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"nftstake/x/nftstake/types"
)

// StakeFungible moves quantity units of typeID from owner into custody as a
// new entry and returns the entry's index.
func (k Keeper) StakeFungible(ctx context.Context, owner sdk.AccAddress, typeID uint64, quantity math.Int) (uint64, error) {
	indices, err := k.BatchStakeFungible(ctx, owner, []uint64{typeID}, []math.Int{quantity})
	if err != nil {
		return 0, err
	}
	return indices[0], nil
}

// UnstakeFungible returns the entry at index to its owner and pays the reward
// when claimable.
func (k Keeper) UnstakeFungible(ctx context.Context, owner sdk.AccAddress, typeID, index uint64) (sdk.Coin, error) {
	return k.BatchUnstakeFungible(ctx, owner, []uint64{typeID}, []uint64{index})
}

// BatchStakeFungible stakes quantities[i] of typeIDs[i] for every i. Balance
// checks are cumulative per type across the batch.
func (k Keeper) BatchStakeFungible(ctx context.Context, owner sdk.AccAddress, typeIDs []uint64, quantities []math.Int) ([]uint64, error) {
	var indices []uint64
	err := k.atomically(ctx, func(ctx sdk.Context) (sdk.Events, error) {
		if _, err := k.openGate(ctx); err != nil {
			return nil, err
		}
		if len(typeIDs) != len(quantities) {
			return nil, types.ErrArityMismatch
		}
		params, err := k.GetParams(ctx)
		if err != nil {
			return nil, err
		}
		if err := checkBatchSize(params, len(typeIDs)); err != nil {
			return nil, err
		}
		ownerStr, err := k.ownerString(owner)
		if err != nil {
			return nil, err
		}

		pending := make(map[uint64]math.Int, len(typeIDs))
		for i, typeID := range typeIDs {
			qty := quantities[i]
			if qty.IsNil() || !qty.IsPositive() {
				return nil, types.ErrInvalidQuantity
			}
			want := qty
			if prev, ok := pending[typeID]; ok {
				want = prev.Add(qty)
			}
			if k.fungibleRegistry.BalanceOf(ctx, owner, params.FungibleDenom(typeID)).LT(want) {
				return nil, types.ErrInsufficientBalance
			}
			pending[typeID] = want
		}

		now := ctx.BlockTime().Unix()
		indices = make([]uint64, len(typeIDs))
		for i, typeID := range typeIDs {
			idx, err := k.nextEntryIndex(ctx, ownerStr, typeID)
			if err != nil {
				return nil, err
			}
			entry := types.FungibleStakeEntry{Index: idx, Amount: quantities[i], StakedAt: now}
			if err := k.FungibleEntries.Set(ctx, collections.Join3(ownerStr, typeID, idx), entry); err != nil {
				return nil, err
			}
			indices[i] = idx
		}

		custodian := k.ModuleAddress()
		events := make(sdk.Events, 0, len(typeIDs))
		for i, typeID := range typeIDs {
			denom := params.FungibleDenom(typeID)
			if err := k.fungibleRegistry.TransferCustody(ctx, owner, custodian, denom, quantities[i]); err != nil {
				return nil, errorsmod.Wrapf(types.ErrCustodyTransferFailure, "%s%s: %s", quantities[i], denom, err)
			}
			k.Logger(ctx).Debug("fungible asset staked", "owner", ownerStr, "type_id", typeID, "index", indices[i], "amount", quantities[i].String())
			events = append(events, fungibleEvent(types.EventStakeFungible, ownerStr, typeID, indices[i], quantities[i]))
		}
		return events, nil
	})
	if err != nil {
		return nil, err
	}

	telemetry.IncrCounter(float32(len(typeIDs)), types.ModuleName, "stake_fungible")
	return indices, nil
}

// BatchUnstakeFungible returns the entries addressed by (typeIDs[i],
// indices[i]) to owner and mints the summed reward once.
func (k Keeper) BatchUnstakeFungible(ctx context.Context, owner sdk.AccAddress, typeIDs, indices []uint64) (sdk.Coin, error) {
	var reward sdk.Coin
	err := k.atomically(ctx, func(ctx sdk.Context) (sdk.Events, error) {
		gate, err := k.openGate(ctx)
		if err != nil {
			return nil, err
		}
		if len(typeIDs) != len(indices) {
			return nil, types.ErrArityMismatch
		}
		params, err := k.GetParams(ctx)
		if err != nil {
			return nil, err
		}
		if err := checkBatchSize(params, len(typeIDs)); err != nil {
			return nil, err
		}
		ownerStr, err := k.ownerString(owner)
		if err != nil {
			return nil, err
		}

		type target struct {
			key   collections.Triple[string, uint64, uint64]
			entry types.FungibleStakeEntry
		}
		targets := make([]target, 0, len(typeIDs))
		seen := make(map[[2]uint64]struct{}, len(typeIDs))
		for i, typeID := range typeIDs {
			if _, dup := seen[[2]uint64{typeID, indices[i]}]; dup {
				return nil, types.ErrNoStakeEntry
			}
			key := collections.Join3(ownerStr, typeID, indices[i])
			entry, err := k.FungibleEntries.Get(ctx, key)
			if err != nil {
				if errors.Is(err, collections.ErrNotFound) {
					return nil, types.ErrNoStakeEntry
				}
				return nil, err
			}
			seen[[2]uint64{typeID, indices[i]}] = struct{}{}
			targets = append(targets, target{key: key, entry: entry})
		}

		tally := k.newRewardTally(ctx, gate, params)
		var touched []uint64
		touchedSet := make(map[uint64]struct{})
		for _, t := range targets {
			if err := k.FungibleEntries.Remove(ctx, t.key); err != nil {
				return nil, err
			}
			tally.add(t.entry.Amount, t.entry.StakedAt)
			if _, ok := touchedSet[t.key.K2()]; !ok {
				touchedSet[t.key.K2()] = struct{}{}
				touched = append(touched, t.key.K2())
			}
		}
		for _, typeID := range touched {
			if err := k.compactArena(ctx, ownerStr, typeID); err != nil {
				return nil, err
			}
		}

		custodian := k.ModuleAddress()
		events := make(sdk.Events, 0, len(targets)+1)
		for _, t := range targets {
			typeID := t.key.K2()
			denom := params.FungibleDenom(typeID)
			if err := k.fungibleRegistry.TransferCustody(ctx, custodian, owner, denom, t.entry.Amount); err != nil {
				return nil, errorsmod.Wrapf(types.ErrCustodyTransferFailure, "%s%s: %s", t.entry.Amount, denom, err)
			}
			k.Logger(ctx).Debug("fungible asset unstaked", "owner", ownerStr, "type_id", typeID, "index", t.entry.Index, "amount", t.entry.Amount.String())
			events = append(events, fungibleEvent(types.EventUnstakeFungible, ownerStr, typeID, t.entry.Index, t.entry.Amount))
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

	telemetry.IncrCounter(float32(len(typeIDs)), types.ModuleName, "unstake_fungible")
	return reward, nil
}

// nextEntryIndex hands out the next index of the owner/type arena.
func (k Keeper) nextEntryIndex(ctx context.Context, owner string, typeID uint64) (uint64, error) {
	key := collections.Join(owner, typeID)
	next, err := k.FungibleCursor.Get(ctx, key)
	if err != nil && !errors.Is(err, collections.ErrNotFound) {
		return 0, err
	}
	if err := k.FungibleCursor.Set(ctx, key, next+1); err != nil {
		return 0, err
	}
	return next, nil
}

// compactArena resets the arena cursor once no live entry is left in it, so
// an emptied arena starts again at index 0.
func (k Keeper) compactArena(ctx context.Context, owner string, typeID uint64) error {
	iter, err := k.FungibleEntries.Iterate(ctx, collections.NewSuperPrefixedTripleRange[string, uint64, uint64](owner, typeID))
	if err != nil {
		return err
	}
	live := iter.Valid()
	iter.Close()
	if live {
		return nil
	}
	return k.FungibleCursor.Remove(ctx, collections.Join(owner, typeID))
}

func fungibleEvent(eventType, owner string, typeID, index uint64, amount math.Int) sdk.Event {
	return sdk.NewEvent(
		eventType,
		sdk.NewAttribute(types.AttrOwner, owner),
		sdk.NewAttribute(types.AttrTypeID, strconv.FormatUint(typeID, 10)),
		sdk.NewAttribute(types.AttrEntryIndex, strconv.FormatUint(index, 10)),
		sdk.NewAttribute(types.AttrAmount, amount.String()),
	)
}
