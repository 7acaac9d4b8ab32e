package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	"nftstake/x/nftstake/types"
)

// UpdateParams replaces the module params. The unique class and the fungible
// denom prefix are frozen while any stake of that kind is live.
func (k Keeper) UpdateParams(ctx context.Context, authority string, p types.Params) error {
	if err := k.requireAuthority(authority); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}
	cur, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	if p.UniqueClassID != cur.UniqueClassID {
		iter, err := k.UniqueStakes.Iterate(ctx, nil)
		if err != nil {
			return err
		}
		live := iter.Valid()
		iter.Close()
		if live {
			return errorsmod.Wrap(types.ErrInvalidParams, "unique_class_id cannot change while unique assets are staked")
		}
	}
	if p.FungibleDenomPrefix != cur.FungibleDenomPrefix {
		iter, err := k.FungibleEntries.Iterate(ctx, nil)
		if err != nil {
			return err
		}
		live := iter.Valid()
		iter.Close()
		if live {
			return errorsmod.Wrap(types.ErrInvalidParams, "fungible_denom_prefix cannot change while fungible assets are staked")
		}
	}

	if ci, ok := k.uniqueRegistry.(classInitializer); ok && p.UniqueClassID != cur.UniqueClassID {
		if err := ci.EnsureClass(ctx, p.UniqueClassID, "Stakeable assets"); err != nil {
			return err
		}
	}
	if err := k.Params.Set(ctx, p); err != nil {
		return err
	}
	k.Logger(ctx).Info("params updated", "unique_class_id", p.UniqueClassID, "reward_rate", p.RewardRate.String())
	return nil
}
