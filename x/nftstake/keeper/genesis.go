package keeper

import (
	"context"

	"cosmossdk.io/collections"

	"nftstake/x/nftstake/types"
)

// classInitializer is implemented by registries that can create the staking
// class on demand.
type classInitializer interface {
	EnsureClass(ctx context.Context, classID, name string) error
}

func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}

	if err := k.Params.Set(ctx, gs.Params); err != nil {
		return err
	}
	if ci, ok := k.uniqueRegistry.(classInitializer); ok {
		if err := ci.EnsureClass(ctx, gs.Params.UniqueClassID, "Stakeable assets"); err != nil {
			return err
		}
	}
	if err := k.Gate.Set(ctx, gs.Gate); err != nil {
		return err
	}

	for _, rec := range gs.UniqueStakes {
		if err := k.UniqueStakes.Set(ctx, rec.AssetID, rec); err != nil {
			return err
		}
		if err := k.OwnerUniqueStakes.Set(ctx, collections.Join(rec.Owner, rec.AssetID)); err != nil {
			return err
		}
	}

	for _, e := range gs.FungibleEntries {
		entry := types.FungibleStakeEntry{Index: e.Index, Amount: e.Amount, StakedAt: e.StakedAt}
		if err := k.FungibleEntries.Set(ctx, collections.Join3(e.Owner, e.TypeID, e.Index), entry); err != nil {
			return err
		}
		// The cursor resumes after the highest imported index.
		arena := collections.Join(e.Owner, e.TypeID)
		known, err := k.FungibleCursor.Has(ctx, arena)
		if err != nil {
			return err
		}
		cur := uint64(0)
		if known {
			if cur, err = k.FungibleCursor.Get(ctx, arena); err != nil {
				return err
			}
		}
		if e.Index+1 > cur {
			if err := k.FungibleCursor.Set(ctx, arena, e.Index+1); err != nil {
				return err
			}
		}
	}

	return nil
}

func (k Keeper) ExportGenesis(ctx context.Context) (types.GenesisState, error) {
	gen := *types.DefaultGenesis()

	var err error
	if gen.Params, err = k.GetParams(ctx); err != nil {
		return types.GenesisState{}, err
	}
	if gen.Gate, err = k.GetGate(ctx); err != nil {
		return types.GenesisState{}, err
	}

	err = k.UniqueStakes.Walk(ctx, nil, func(_ string, rec types.UniqueStakeRecord) (bool, error) {
		gen.UniqueStakes = append(gen.UniqueStakes, rec)
		return false, nil
	})
	if err != nil {
		return types.GenesisState{}, err
	}

	err = k.FungibleEntries.Walk(ctx, nil, func(key collections.Triple[string, uint64, uint64], e types.FungibleStakeEntry) (bool, error) {
		gen.FungibleEntries = append(gen.FungibleEntries, types.FungibleEntryRecord{
			Owner:    key.K1(),
			TypeID:   key.K2(),
			Index:    key.K3(),
			Amount:   e.Amount,
			StakedAt: e.StakedAt,
		})
		return false, nil
	})
	if err != nil {
		return types.GenesisState{}, err
	}

	return gen, nil
}
